// Command beyond-mcp-server runs the Beyond MCP server: an MCP gateway to
// social platform content (Farcaster via Neynar, with Twitter and Telegram
// placeholders).
//
// By default the server speaks MCP over stdio.  Pass -http to serve
// Streamable HTTP instead.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rusq/osenv/v2"

	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/config"
	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/farcaster"
	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/mcp"
	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/social"
	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/telegram"
	"github.com/Beyond-Network-AI/beyond-mcp-server/internal/twitter"
)

var build = "dev"

// secrets lists the files loadSecrets tries in order.  Windows users editing
// with notepad end up with a stray txt extension, so accept that too.
var secrets = []string{".env", ".env.txt", "secrets.txt"}

type params struct {
	httpMode     bool
	addr         string
	envFile      string
	configFile   string
	neynarAPIKey string
	verbose      bool
	printVersion bool
}

func main() {
	loadSecrets(secrets)

	p, err := parseCmdLine(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if p.printVersion {
		fmt.Println(build)
		return
	}

	// Logs go to stderr: in stdio mode stdout carries the MCP stream.
	lvl := slog.LevelInfo
	if p.verbose {
		lvl = slog.LevelDebug
	}
	lg := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(lg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, lg, p); err != nil {
		lg.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, lg *slog.Logger, p params) error {
	if p.envFile != "" {
		if err := godotenv.Load(p.envFile); err != nil {
			return fmt.Errorf("loading %s: %w", p.envFile, err)
		}
	}
	cfg := config.FromEnv()
	if p.configFile != "" {
		if err := cfg.LoadFile(p.configFile); err != nil {
			return fmt.Errorf("loading %s: %w", p.configFile, err)
		}
	}
	if p.neynarAPIKey != "" {
		cfg.Providers.Farcaster.NeynarAPIKey = p.neynarAPIKey
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	reg := social.NewRegistry(lg, providers(cfg, lg)...)
	for _, pr := range reg.AllProviders() {
		lg.Info("provider registered", "name", pr.Name(), "platform", pr.Platform())
	}
	if avail := reg.AvailableProviders(ctx); len(avail) == 0 {
		lg.Warn("no providers are currently available; check credentials")
	} else {
		for _, pr := range avail {
			lg.Info("provider available", "name", pr.Name())
		}
	}

	srv := mcp.New(reg, lg)
	if p.httpMode {
		addr := p.addr
		if addr == "" {
			addr = net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
		}
		return srv.ServeHTTP(ctx, addr)
	}
	return srv.ServeStdio(ctx)
}

// providers constructs the enabled provider set from the configuration.
func providers(cfg *config.Config, lg *slog.Logger) []social.Provider {
	var pp []social.Provider
	if cfg.Providers.Farcaster.Enabled {
		pp = append(pp, farcaster.New(cfg.Providers.Farcaster.NeynarAPIKey,
			farcaster.WithLogger(lg),
			farcaster.WithDevelopmentMode(cfg.IsDevelopment()),
		))
	}
	if cfg.Providers.Twitter.Enabled {
		pp = append(pp, twitter.New(cfg.Providers.Twitter.APIKey))
	}
	if cfg.Providers.Telegram.Enabled {
		pp = append(pp, telegram.New(cfg.Providers.Telegram.BotToken))
	}
	return pp
}

// loadSecrets loads environment variables from the first files that exist.
// A missing file is not an error.
func loadSecrets(files []string) {
	for _, f := range files {
		godotenv.Load(f)
	}
}

func parseCmdLine(args []string) (params, error) {
	fs := flag.NewFlagSet("beyond-mcp-server", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			"Beyond MCP Server, %s\n"+
				"Exposes social platform content (Farcaster, and stubs for Twitter and\n"+
				"Telegram) to MCP clients over stdio or Streamable HTTP.\n\n"+
				"Usage:  %s [flags]\n\n",
			build, filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}

	var p params
	fs.BoolVar(&p.httpMode, "http", osenv.Value("USE_HTTP", false), "serve Streamable HTTP instead of stdio")
	fs.StringVar(&p.addr, "addr", "", "HTTP listen `address` (default taken from HOST and PORT)")
	fs.StringVar(&p.envFile, "env", "", "load environment variables from `file` in addition to the default .env lookup")
	fs.StringVar(&p.configFile, "config", osenv.Value("CONFIG_FILE", ""), "optional TOML configuration `file` overlaid on the environment")
	fs.StringVar(&p.neynarAPIKey, "neynar-api-key", osenv.Secret("NEYNAR_API_KEY", ""), "Neynar API `key` for the Farcaster provider")
	fs.BoolVar(&p.verbose, "v", osenv.Value("DEBUG", false), "verbose messages")
	fs.BoolVar(&p.printVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return p, err
	}
	return p, nil
}
