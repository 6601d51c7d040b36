package switchyard

import (
	"fmt"

	"github.com/aretw0/switchyard/pkg/config"
	"github.com/aretw0/switchyard/pkg/fsm"
)

// Version is the release of the module. Overridden at build time with -ldflags.
var Version = "0.1.0"

// Load reads a machine definition (YAML or JSON) and builds it.
func Load(path string) (*fsm.Spec, error) {
	f, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	spec, err := f.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// Open loads a definition and returns a machine positioned at its initial state.
func Open(path string, opts ...fsm.MachineOption) (*fsm.Machine, error) {
	spec, err := Load(path)
	if err != nil {
		return nil, err
	}
	return fsm.NewMachine(spec, opts...), nil
}
