package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hyperifyio/newsscraper/internal/app"
	"github.com/hyperifyio/newsscraper/internal/extract"
	"github.com/hyperifyio/newsscraper/internal/render"
)

func newHeadlineCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "headline",
		Short: "Print the latest lead headline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(opts.cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.Source.Headline(cmd.Context()))
			return err
		},
	}
}

func newHeadlinesCmd(opts *options) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "headlines",
		Short: "Print every homepage headline, card and timeline event as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var items []extract.Item
			if file != "" {
				sel, err := opts.cfg.ExtractSelectors()
				if err != nil {
					return err
				}
				b, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				if items, err = extract.New(sel).HeadlinesFromHTML(b); err != nil {
					return err
				}
			} else {
				a, err := app.New(opts.cfg)
				if err != nil {
					return err
				}
				items = a.Source.Headlines(cmd.Context())
			}
			return writeJSON(cmd.OutOrStdout(), items)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Extract from a saved homepage instead of fetching it")
	return cmd
}

func newArticleCmd(opts *options) *cobra.Command {
	var (
		file     string
		markdown bool
		pdfPath  string
	)
	cmd := &cobra.Command{
		Use:   "article [url]",
		Short: "Fetch an article and print it as JSON or Markdown",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var url string
			if len(args) == 1 {
				url = args[0]
			}
			if url == "" && file == "" {
				return errors.New("article requires a url or --file")
			}

			var a extract.ArticleContent
			if file != "" {
				sel, err := opts.cfg.ExtractSelectors()
				if err != nil {
					return err
				}
				b, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				a = extract.New(sel).ArticleFromHTML(b)
			} else {
				ap, err := app.New(opts.cfg)
				if err != nil {
					return err
				}
				a = ap.Source.Article(cmd.Context(), url)
			}

			md := render.Markdown(a, url)
			if pdfPath != "" {
				f, err := os.Create(pdfPath)
				if err != nil {
					return err
				}
				if err := render.PDF(f, md); err != nil {
					_ = f.Close()
					return fmt.Errorf("write pdf: %w", err)
				}
				if err := f.Close(); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			if markdown {
				if _, err := io.WriteString(out, md); err != nil {
					return err
				}
			} else if err := writeJSON(out, a); err != nil {
				return err
			}
			if a.Failed() {
				return fmt.Errorf("article: %s", *a.Error)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Extract from a saved article page instead of fetching it")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Print Markdown instead of JSON")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Also write the article as a PDF to this path")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
