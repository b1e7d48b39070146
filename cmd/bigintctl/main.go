// Command bigintctl is the arbitrary-precision calculator CLI: a REPL
// (plain or full-screen TUI), a batch script runner, and an HTTP+WebSocket
// API server for remote sessions, all sharing one bigint.Int core.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/lookbusy1344/bigint/api"
	"github.com/lookbusy1344/bigint/config"
	"github.com/lookbusy1344/bigint/loader"
	"github.com/lookbusy1344/bigint/repl"
)

// Version information, overridable at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		tuiMode     = flag.Bool("tui", false, "Use the full-screen TUI console")
		apiServer   = flag.Bool("api-server", false, "Start the HTTP/WebSocket API server")
		port        = flag.Int("port", 0, "API server port (overrides config, used with -api-server)")
		configPath  = flag.String("config", "", "Path to a TOML config file (default: platform config dir)")
		base        = flag.String("base", "", "Display base for the REPL/script (bin, dec, hex; overrides config)")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("bigintctl %s (commit %s, built %s)\n", Version, Commit, Date)
		os.Exit(0)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	if *base != "" {
		cfg.Calculator.DefaultBase = *base
	}
	if *port != 0 {
		cfg.API.Port = *port
	}

	if *apiServer {
		runAPIServer(cfg)
		return
	}

	session := repl.NewSession(cfg)

	if script := flag.Arg(0); script != "" {
		if err := loader.RunScript(script, session, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	if *tuiMode {
		if err := repl.RunTUI(session); err != nil {
			fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := repl.RunCLI(session); err != nil {
		fmt.Fprintf(os.Stderr, "REPL error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}

func runAPIServer(cfg *config.Config) {
	server := api.NewServer(cfg)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	var shutdownOnce sync.Once
	performShutdown := func() {
		shutdownOnce.Do(func() {
			fmt.Println("\nShutting down API server...")

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "error during shutdown: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("API server stopped")
			os.Exit(0)
		})
	}

	monitor := api.NewProcessMonitor(performShutdown)
	monitor.Start()

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "API server error: %v\n", err)
			os.Exit(1)
		}
	}()

	<-sigChan
	performShutdown()
}
