// gotodo keeps a session-scoped task list in memory and exposes it either
// as MCP tools on stdio (default) or as an interactive terminal UI (--tui).
//
// Nothing is persisted: the list lives exactly as long as the process.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/pflag"
)

const version = "0.1.0"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the parsed command line.
type options struct {
	configPath string
	tui        bool
	logLevel   string
	logFile    string
	version    bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	flagSet := pflag.NewFlagSet("gotodo", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.configPath, "config", "", "path to YAML config (default: $"+configEnvVar+")")
	flagSet.BoolVar(&opts.tui, "tui", false, "run the interactive terminal UI instead of the MCP server")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "override log_level from config (debug, info, warn, error)")
	flagSet.StringVar(&opts.logFile, "log-file", "", "write JSON log records to this file")
	flagSet.BoolVar(&opts.version, "version", false, "print version and exit")

	if err := flagSet.Parse(args); err != nil {
		return options{}, err
	}
	if flagSet.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected argument %q", flagSet.Arg(0))
	}
	return opts, nil
}

func run(args []string) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if opts.version {
		fmt.Println("gotodo", version)
		return nil
	}

	cfg, err := LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	level, err := parseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(opts, level)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := NewSessionStore(cfg.Seed)

	if opts.tui {
		filter, err := ParseStatus(cfg.DefaultFilter)
		if err != nil {
			return err
		}
		logger.Info("starting terminal UI")
		return runTUI(ctx, store, filter)
	}

	logger.Info("serving MCP on stdio", "version", version)
	server := newServer(store, logger)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}

// newLogger picks the log destination. stdout is the MCP protocol channel
// and the TUI owns the terminal, so logs go to --log-file when set,
// otherwise to stderr for the MCP server and nowhere for the TUI.
func newLogger(opts options, level slog.Level) (*slog.Logger, func(), error) {
	handlerOptions := &slog.HandlerOptions{Level: level}
	if opts.logFile != "" {
		file, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		return slog.New(slog.NewJSONHandler(file, handlerOptions)), func() { file.Close() }, nil
	}
	if opts.tui {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, handlerOptions)), func() {}, nil
}
