package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/switchyard/pkg/fsm"
)

// DescribeMarkdown renders a spec as a markdown document: one table row per rule.
// labels is optional and maps identifiers to display phrases.
func DescribeMarkdown(spec *fsm.Spec, labels map[string]string) string {
	label := func(id string) string {
		if l, ok := labels[id]; ok && l != "" {
			return fmt.Sprintf("%s (`%s`)", l, id)
		}
		return "`" + id + "`"
	}

	var sb strings.Builder
	name := spec.Name
	if name == "" {
		name = "state machine"
	}
	fmt.Fprintf(&sb, "# %s\n\n", name)
	fmt.Fprintf(&sb, "- **Initial:** %s\n", label(string(spec.Initial)))
	if terms := spec.TerminalStates(); len(terms) > 0 {
		parts := make([]string, 0, len(terms))
		for _, id := range terms {
			parts = append(parts, label(string(id)))
		}
		fmt.Fprintf(&sb, "- **Terminal:** %s\n", strings.Join(parts, ", "))
	}
	sb.WriteString("\n| State | Trigger | Target |\n|---|---|---|\n")

	for _, id := range spec.Table.States() {
		rules := spec.Table.RulesFor(id)
		if len(rules) == 0 {
			fmt.Fprintf(&sb, "| %s | | |\n", label(string(id)))
			continue
		}
		for _, r := range rules {
			fmt.Fprintf(&sb, "| %s | %s | %s |\n", label(string(id)), label(string(r.Trigger)), label(string(r.To)))
		}
	}
	return sb.String()
}
