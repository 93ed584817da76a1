package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hyperifyio/newsscraper/internal/app"
)

func newMCPCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the news tools over JSON-RPC at /mcp/",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(opts.cfg)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Serve(ctx, "mcp", opts.cfg.MCPAddr, a.MCPHandler(), opts.cfg.ToolTimeout+5*time.Second)
		},
	}
}

func newAPICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "api",
		Short: "Serve the JSON HTTP API backed by the tool server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Serve(ctx, "api", opts.cfg.APIAddr, app.APIHandler(opts.cfg), opts.cfg.EffectiveRPCTimeout()+5*time.Second)
		},
	}
}
