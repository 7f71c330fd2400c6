// Package main provides the semtags binary entry point.
// semtags resolves, compares and exports the constraint tags that drive
// procedural scene generation.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/semtags/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "semtags"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		app        *App
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Scene constraint tag algebra",
		Long: `semtags works with the tags that describe and constrain nodes of a
procedural scene generator.

It provides:
- Resolution of tag names, negations and generator references
- Contradiction, implication, satisfaction and difference checks
- Natural-language room, object and placement mapping (English and Korean)
- RDF export of node tag sets (Turtle, N-Triples, JSON-LD)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.DisableFlagParsing {
				if err := parseTagFlags(cmd, args); err != nil {
					return err
				}
			}
			if cmd.Name() == "version" {
				return nil
			}
			var err error
			app, err = setup(cmd.ErrOrStderr(), configPath, logLevel)
			return err
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides config")

	current := func() *App { return app }
	cmd.AddCommand(
		resolveCmd(current),
		checkCmd(current),
		relationCmd(current, "implies", "Report whether LHS implies RHS", (*App).Implies),
		relationCmd(current, "satisfies", "Report whether LHS satisfies RHS", (*App).Satisfies),
		diffCmd(current),
		listCmd(current),
		mapCmd(current),
		exportCmd(current),
		configCmd(current),
	)

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// setup configures logging, loads configuration and builds the App.
func setup(stderr io.Writer, configPath, logLevel string) (*App, error) {
	logger := newLogger(stderr, logLevel)
	slog.SetDefault(logger)

	cfg, err := config.NewLoader(logger).Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Config decides the level unless the flag did
	if logLevel == "" {
		logger = newLogger(stderr, cfg.Log.Level)
		slog.SetDefault(logger)
	}

	return NewApp(cfg, logger)
}

func newLogger(w io.Writer, logLevel string) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
