// Package main provides the CLI entry point for mouthsync, a dialogue
// text→viseme conversion toolkit.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/normanking/mouthsync"
	"github.com/normanking/mouthsync/internal/assets"
	"github.com/normanking/mouthsync/internal/bus"
	"github.com/normanking/mouthsync/internal/config"
	"github.com/normanking/mouthsync/internal/logging"
	"github.com/normanking/mouthsync/internal/server"
	"github.com/normanking/mouthsync/internal/viseme"
)

var version = "dev"

var cfg *config.Config

// CLI defines the command-line interface using Kong
var CLI struct {
	Config  string `name:"config" short:"c" help:"Config file (default: ~/.mouthsync/config.yaml)" type:"path"`
	Verbose bool   `name:"verbose" short:"v" help:"Verbose output"`

	// Subcommands
	Speak   SpeakCmd   `cmd:"" help:"Convert a dialogue line to viseme events"`
	Serve   ServeCmd   `cmd:"" help:"Serve the pipeline over WebSocket"`
	Tables  TablesCmd  `cmd:"" help:"Validate a viseme table asset file"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// SpeakCmd converts one line and prints the events as JSON
type SpeakCmd struct {
	CPS  float64  `name:"cps" help:"Reveal rate override in characters per second"`
	Raw  bool     `name:"raw" help:"Skip post-processing (no trim/merge)"`
	Text []string `arg:"" required:"" help:"Dialogue line, markup included"`
}

func (s *SpeakCmd) Run() error {
	pipe, logger, err := buildPipeline()
	if err != nil {
		return err
	}
	defer logger.Close()

	events := pipe.ProcessAt(strings.Join(s.Text, " "), s.CPS)
	if !s.Raw {
		events = viseme.Finalize(events)
	}

	out, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// ServeCmd runs the WebSocket server
type ServeCmd struct {
	Listen string `name:"listen" short:"l" help:"Listen address (overrides config)"`
}

func (s *ServeCmd) Run() error {
	logger, err := logging.New(logging.Config{
		Dir:     cfg.Log.Dir,
		Level:   cfg.Log.Level,
		Console: cfg.Log.Console,
	})
	if err != nil {
		return err
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b := bus.NewEventBus()
	store, err := assets.NewStore(cfg.Speech.TablesPath, logger.Zerolog())
	if err != nil {
		return err
	}
	if cfg.Speech.WatchAsset {
		if err := store.Watch(ctx, b); err != nil {
			return err
		}
	}

	pipe := mouthsync.New(store, cfg.Speech.DefaultCPS, logger.Zerolog())

	srvCfg := cfg.Server
	if s.Listen != "" {
		srvCfg.ListenAddr = s.Listen
	}
	return server.New(pipe, b, srvCfg, logger.Zerolog()).Run(ctx)
}

// TablesCmd validates a table asset file and prints a summary
type TablesCmd struct {
	Path string `arg:"" required:"" help:"Path to the YAML table asset" type:"path"`
}

func (t *TablesCmd) Run() error {
	logger, err := logging.New(cliLogConfig())
	if err != nil {
		return err
	}
	defer logger.Close()
	log := logger.Zerolog()

	log.Debug().Str("path", t.Path).Msg("loading table asset")
	tables, err := assets.Load(t.Path)
	if err != nil {
		return err
	}
	// Smoke-map a pangram so obviously broken assets fail loudly.
	codes := tables.Map("thuh kwihk brawn fahks jhahmps owver thuh leyziy daag")
	fmt.Printf("%s: ok (%d codes for smoke line)\n", t.Path, len(codes))
	return nil
}

// VersionCmd prints version information
type VersionCmd struct{}

func (v *VersionCmd) Run() error {
	fmt.Printf("mouthsync %s\n", version)
	return nil
}

// cliLogConfig derives the logger setup for one-shot commands: console only
// (stdout stays clean JSON), level from config with --verbose forcing debug.
func cliLogConfig() logging.Config {
	lc := logging.Config{Level: cfg.Log.Level, Console: CLI.Verbose}
	if CLI.Verbose {
		lc.Level = "debug"
	}
	return lc
}

// buildPipeline wires tables and config for the one-shot commands.
func buildPipeline() (*mouthsync.Pipeline, *logging.Logger, error) {
	logger, err := logging.New(cliLogConfig())
	if err != nil {
		return nil, nil, err
	}
	store, err := assets.NewStore(cfg.Speech.TablesPath, logger.Zerolog())
	if err != nil {
		logger.Close()
		return nil, nil, err
	}
	return mouthsync.New(store, cfg.Speech.DefaultCPS, logger.Zerolog()), logger, nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("mouthsync"),
		kong.Description("Convert timed dialogue text into viseme event sequences for lip-sync."),
		kong.UsageOnError(),
	)

	var err error
	cfg, err = config.Load(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if CLI.Verbose {
		cfg.Log.Level = "debug"
	}

	ctx.FatalIfErrorf(ctx.Run())
}
