package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hyperifyio/newsscraper/internal/app"
)

// options collects the persistent flags. Only flags the user actually set
// override the file and environment layers.
type options struct {
	configFile string
	envFile    string

	verbose        bool
	logJSON        bool
	homepage       string
	userAgent      string
	listingTimeout time.Duration
	articleTimeout time.Duration
	maxAttempts    int
	mcpAddr        string
	toolTimeout    time.Duration
	apiAddr        string
	mcpURL         string
	rpcTimeout     time.Duration

	cfg app.Config
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(&options{})
}

func buildRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:           "newsscraper",
		Short:         "Khaleej Times headline and article scraper",
		Long:          `Scrapes Khaleej Times headlines and articles and serves them as JSON-RPC tools and a JSON HTTP API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	d := app.DefaultConfig()
	pf := root.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "Path to a YAML or JSON config file")
	pf.StringVar(&opts.envFile, "env-file", ".env", "Path to a dotenv file loaded before reading the environment")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose logging")
	pf.BoolVar(&opts.logJSON, "log-json", false, "Log JSON lines instead of console output")
	pf.StringVar(&opts.homepage, "homepage", d.HomepageURL, "Homepage URL to scrape headlines from")
	pf.StringVar(&opts.userAgent, "user-agent", "", "User-Agent header for page fetches (default: desktop browser)")
	pf.DurationVar(&opts.listingTimeout, "listing-timeout", d.ListingTimeout, "Timeout for the homepage fetch")
	pf.DurationVar(&opts.articleTimeout, "article-timeout", d.ArticleTimeout, "Timeout for an article fetch")
	pf.IntVar(&opts.maxAttempts, "max-attempts", d.MaxAttempts, "Fetch attempts including the first; values above 1 retry transient failures")
	pf.StringVar(&opts.mcpAddr, "mcp-addr", d.MCPAddr, "Listen address of the tool server")
	pf.DurationVar(&opts.toolTimeout, "tool-timeout", d.ToolTimeout, "Upper bound for a single tool call")
	pf.StringVar(&opts.apiAddr, "api-addr", d.APIAddr, "Listen address of the HTTP API")
	pf.StringVar(&opts.mcpURL, "mcp-url", d.MCPServerURL, "Tool server URL used by the HTTP API")
	pf.DurationVar(&opts.rpcTimeout, "rpc-timeout", d.RPCTimeout, "Timeout for HTTP API calls to the tool server (0 derives it from the fetch timeouts)")

	root.AddCommand(
		newMCPCmd(opts),
		newAPICmd(opts),
		newHeadlineCmd(opts),
		newHeadlinesCmd(opts),
		newArticleCmd(opts),
		newToolsCmd(opts),
		newVersionCmd(),
	)
	return root
}

// load builds the effective config: defaults, then the config file, then the
// environment, then explicitly set flags.
func (o *options) load(cmd *cobra.Command) error {
	if err := app.LoadEnvFiles(o.envFile); err != nil {
		return err
	}
	cfg := app.DefaultConfig()
	if o.configFile != "" {
		fc, err := app.LoadConfigFile(o.configFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	app.ApplyEnvToConfig(&cfg)

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = o.verbose
	}
	if flags.Changed("log-json") {
		cfg.LogJSON = o.logJSON
	}
	if flags.Changed("homepage") {
		cfg.HomepageURL = o.homepage
	}
	if flags.Changed("user-agent") {
		cfg.UserAgent = o.userAgent
	}
	if flags.Changed("listing-timeout") {
		cfg.ListingTimeout = o.listingTimeout
	}
	if flags.Changed("article-timeout") {
		cfg.ArticleTimeout = o.articleTimeout
	}
	if flags.Changed("max-attempts") {
		cfg.MaxAttempts = o.maxAttempts
	}
	if flags.Changed("mcp-addr") {
		cfg.MCPAddr = o.mcpAddr
	}
	if flags.Changed("tool-timeout") {
		cfg.ToolTimeout = o.toolTimeout
	}
	if flags.Changed("api-addr") {
		cfg.APIAddr = o.apiAddr
	}
	if flags.Changed("mcp-url") {
		cfg.MCPServerURL = o.mcpURL
	}
	if flags.Changed("rpc-timeout") {
		cfg.RPCTimeout = o.rpcTimeout
	}

	app.SetupLogging(cmd.ErrOrStderr(), cfg.Verbose, cfg.LogJSON)
	if err := app.ValidateConfig(cfg); err != nil {
		return err
	}
	o.cfg = cfg
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
