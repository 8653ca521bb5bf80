package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/altdrag/internal/bindings"
	"github.com/1broseidon/altdrag/internal/config"
	"github.com/1broseidon/altdrag/internal/daemon"
	"github.com/1broseidon/altdrag/internal/drag"
	"github.com/1broseidon/altdrag/internal/platform"
	"github.com/1broseidon/altdrag/internal/x11"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "run":
		os.Exit(runDaemon(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: altdrag <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Move windows with Alt+Button1 and resize them with Alt+Button3.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run                 Grab the drag buttons and handle drags (foreground)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "  config explain      Explain a config value")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'altdrag <command> --help' for command-specific options.")
}

func runDaemon(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: altdrag run [--path PATH] [--display NAME] [--log-level LEVEL]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Register the move/resize button grabs and process drags until the")
		fmt.Fprintln(os.Stderr, "display connection closes or the process is interrupted.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	path := fs.String("path", "", "Config file path (default: ~/.config/altdrag/config.yaml)")
	display := fs.String("display", "", "X display to connect to (default: $DISPLAY)")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warning, error")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "run takes no arguments")
		fs.Usage()
		return 2
	}

	var overrides config.RawConfig
	if *display != "" {
		overrides.Display = display
	}
	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}

	res, err := loadConfig(*path, overrides)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg := res.Config
	logger := newLogger(os.Stderr, cfg)
	log.Printf("Configuration loaded (move: %s, resize: %s)", cfg.MoveBinding, cfg.ResizeBinding)

	// Connect to display server
	backend, err := platform.NewLinuxBackendFromDisplay(x11.Options{
		Display:    cfg.Display,
		XAuthority: cfg.XAuthority,
	})
	if err != nil {
		log.Fatalf("Failed to connect to display: %v", err)
	}
	defer backend.Disconnect()

	registrar := bindings.NewRegistrar(backend.XUtil(), backend.Connection(), cfg.IgnoreLockModifiers)
	move, err := registrar.Parse("move", cfg.MoveBinding)
	if err != nil {
		log.Fatalf("Failed to parse binding: %v", err)
	}
	resize, err := registrar.Parse("resize", cfg.ResizeBinding)
	if err != nil {
		log.Fatalf("Failed to parse binding: %v", err)
	}
	if err := registrar.Register(move, resize); err != nil {
		log.Fatalf("Failed to register button grabs: %v", err)
	}
	log.Printf("Button grabs registered: %s, %s", move, resize)

	machine := drag.NewMachine(drag.Options{
		Geometry:   backend,
		Mover:      backend,
		MoveMask:   move.StateMask(),
		ResizeMask: resize.StateMask(),
		Logger:     logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := daemon.NewLoop(daemon.LoopConfig{
		Close:  backend.Disconnect,
		Logger: logger,
	}, backend, machine)

	log.Println("Entering event loop...")
	if err := loop.Run(ctx); err != nil {
		log.Printf("Event loop failed: %v", err)
		return 1
	}
	log.Println("altdrag stopped")
	return 0
}

func loadConfig(path string, overrides config.RawConfig) (*config.LoadResult, error) {
	if path == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}
	return config.LoadFromPathWithOverrides(path, overrides)
}
