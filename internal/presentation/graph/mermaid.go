package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/switchyard/pkg/domain"
	"github.com/aretw0/switchyard/pkg/fsm"
)

// Overlay contains session data to visualize on the graph.
type Overlay struct {
	Visited []domain.StateID
	Current domain.StateID
}

// OverlayFromCursor builds an overlay from a session cursor.
func OverlayFromCursor(c *domain.Cursor) *Overlay {
	return &Overlay{Visited: c.History, Current: c.State}
}

// GenerateMermaid produces a Mermaid flowchart from a spec.
// Shapes:
// - Initial: ((Circle))
// - Terminal: ([Stadium])
// - Default: [Rectangle]
// Edges are written in rule order, labelled with their trigger.
func GenerateMermaid(spec *fsm.Spec, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, id := range spec.Table.States() {
		safeID := sanitizeMermaidID(string(id))

		opener, closer := "[", "]"
		switch {
		case id == spec.Initial:
			opener, closer = "((", "))"
		case spec.IsTerminal(id):
			opener, closer = "([", "])"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, id, closer)

		for _, r := range spec.Table.RulesFor(id) {
			label := strings.ReplaceAll(string(r.Trigger), "\"", "'")
			fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", safeID, label, sanitizeMermaidID(string(r.To)))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for contrast on light fills regardless of theme.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, id := range overlay.Visited {
			safeID := sanitizeMermaidID(string(id))
			if safeID == "" || seen[safeID] {
				continue
			}
			seen[safeID] = true
			fmt.Fprintf(&sb, "    class %s visited;\n", safeID)
		}

		if overlay.Current != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(string(overlay.Current)))
		}
	}

	return sb.String()
}

var mermaidReplacer = strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_")

func sanitizeMermaidID(id string) string {
	return mermaidReplacer.Replace(id)
}
