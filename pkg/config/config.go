// Package config loads machine definitions from YAML or JSON files.
//
// States and rules are lists, so the file order is the presentation order:
//
//	name: call
//	initial: idle
//	terminal: [done]
//	states:
//	  - name: idle
//	    rules:
//	      - {trigger: dial, to: connecting}
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/switchyard/pkg/domain"
	"github.com/aretw0/switchyard/pkg/fsm"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// File is the on-disk representation of a machine.
type File struct {
	Name     string            `yaml:"name,omitempty" json:"name,omitempty" mapstructure:"name"`
	Initial  domain.StateID    `yaml:"initial" json:"initial" mapstructure:"initial"`
	Terminal []domain.StateID  `yaml:"terminal,omitempty" json:"terminal,omitempty" mapstructure:"terminal"`
	Labels   map[string]string `yaml:"labels,omitempty" json:"labels,omitempty" mapstructure:"labels"`
	States   []StateConfig     `yaml:"states" json:"states" mapstructure:"states"`
}

// StateConfig lists the ordered rules of one state.
type StateConfig struct {
	Name  domain.StateID `yaml:"name" json:"name" mapstructure:"name"`
	Rules []domain.Rule  `yaml:"rules,omitempty" json:"rules,omitempty" mapstructure:"rules"`
}

// Load reads a definition file. JSON is selected by the .json extension, YAML otherwise.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}

	format := "yaml"
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		format = "json"
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if f.Name == "" {
		f.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return f, nil
}

// Parse decodes a definition. Unknown fields are rejected in both formats.
func Parse(data []byte, format string) (*File, error) {
	switch format {
	case "json":
		var raw map[string]any
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse json: %w", err)
		}
		return FromMap(raw)
	case "yaml", "yml", "":
		var f File
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
		return &f, nil
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

// FromMap decodes a loosely typed map, such as a decoded JSON request body.
func FromMap(raw map[string]any) (*File, error) {
	var f File
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &f,
		ErrorUnused: true,
		TagName:     "mapstructure",
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode definition: %w", err)
	}
	return &f, nil
}

// Definition converts the file into an fsm builder.
func (f *File) Definition() *fsm.Definition {
	def := fsm.NewDefinition().Name(f.Name).Initial(f.Initial)
	for _, s := range f.States {
		def.State(s.Name, s.Rules...)
	}
	return def.Terminal(f.Terminal...)
}

// Build validates the file and returns the Spec.
func (f *File) Build() (*fsm.Spec, error) {
	return f.Definition().Build()
}

// Label returns the configured label of a state or trigger, or the identifier itself.
func (f *File) Label(id string) string {
	if l, ok := f.Labels[id]; ok && l != "" {
		return l
	}
	return id
}

// FromSpec exports a Spec back to its file form.
func FromSpec(spec *fsm.Spec, labels map[string]string) *File {
	f := &File{
		Name:     spec.Name,
		Initial:  spec.Initial,
		Terminal: spec.TerminalStates(),
		Labels:   labels,
	}
	for _, id := range spec.Table.States() {
		if spec.IsTerminal(id) {
			continue
		}
		f.States = append(f.States, StateConfig{Name: id, Rules: spec.Table.RulesFor(id)})
	}
	return f
}

// Marshal encodes the file as YAML.
func (f *File) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
