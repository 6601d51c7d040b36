package main

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/switchyard/internal/logging"
	"github.com/aretw0/switchyard/pkg/config"
	"github.com/aretw0/switchyard/pkg/fsm"
	"github.com/aretw0/switchyard/pkg/lock"
	"github.com/aretw0/switchyard/pkg/phone"
	"github.com/spf13/cobra"
)

// loadMachine resolves the machine from a definition file argument or the --preset flag.
func loadMachine(cmd *cobra.Command, args []string) (*config.File, error) {
	if len(args) > 0 {
		return config.Load(args[0])
	}

	preset, _ := cmd.Flags().GetString("preset")
	switch preset {
	case "phone":
		return fromDefinition(phone.Definition(), phone.Labels)
	case "call":
		return fromDefinition(phone.Simple(), nil)
	case "lock":
		return fromDefinition(lock.Definition(), nil)
	default:
		return nil, fmt.Errorf("unknown preset %q", preset)
	}
}

func fromDefinition(d *fsm.Definition, labels map[string]string) (*config.File, error) {
	spec, err := d.Build()
	if err != nil {
		return nil, err
	}
	return config.FromSpec(spec, labels), nil
}

func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	raw, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(raw)
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Options{Level: level, Writer: cmd.ErrOrStderr()}), nil
}
