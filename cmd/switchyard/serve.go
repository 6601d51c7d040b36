package main

import (
	"net"

	"github.com/aretw0/switchyard"
	"github.com/aretw0/switchyard/internal/cli"
	"github.com/aretw0/switchyard/internal/logging"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [definition]",
		Short: "Start the session HTTP server",
		Long: `Serves sessions of the machine over a JSON API. Settings come from SWITCHYARD_* environment
variables; flags override them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.LoadServeConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr, _ = cmd.Flags().GetString("addr")
			}
			if cmd.Flags().Changed("store") {
				cfg.Store, _ = cmd.Flags().GetString("store")
			}

			level, err := logging.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			logger := logging.New(logging.Options{Level: level, JSON: cfg.LogJSON, Writer: cmd.ErrOrStderr()})

			f, err := loadMachine(cmd, args)
			if err != nil {
				return err
			}
			spec, err := f.Build()
			if err != nil {
				return err
			}

			backend, err := cli.OpenBackend(cfg)
			if err != nil {
				return err
			}
			defer backend.Close()

			handler, err := cli.NewServerHandler(spec, backend, cfg, logger, switchyard.Version)
			if err != nil {
				return err
			}

			ln, err := net.Listen("tcp", cfg.Addr)
			if err != nil {
				return err
			}

			sigCtx := cli.NewSignalContext(cmd.Context())
			defer sigCtx.Cancel()

			logger.Info("serving machine", "machine", spec.Name, "store", cfg.Store)
			return cli.Serve(sigCtx, ln, handler, logger)
		},
	}
	cmd.Flags().String("addr", "", "Listen address (default $SWITCHYARD_ADDR or :8080)")
	cmd.Flags().String("store", "", "Session store: memory, file, bolt or redis (default $SWITCHYARD_STORE)")
	return cmd
}
