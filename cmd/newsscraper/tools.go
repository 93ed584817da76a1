package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyperifyio/newsscraper/internal/app"
	"github.com/hyperifyio/newsscraper/internal/llmtools"
)

func newToolsCmd(opts *options) *cobra.Command {
	var openAI bool
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the tools served by the mcp command",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(opts.cfg)
			if err != nil {
				return err
			}
			if openAI {
				return writeJSON(cmd.OutOrStdout(), llmtools.EncodeTools(a.Tools.Specs()))
			}
			return writeJSON(cmd.OutOrStdout(), a.Tools.Catalog())
		},
	}
	cmd.Flags().BoolVar(&openAI, "openai", false, "Print OpenAI function-tool definitions")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), app.VersionString())
			return err
		},
	}
}
