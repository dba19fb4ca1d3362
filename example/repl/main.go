// Package main is a small REPL front-end built on the readline package: it
// echoes every line, keeps a persistent history and completes keywords.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/shayne/yargs"

	"github.com/nao1215/readline"
)

const usage = "Usage: readline-repl [--config path] [--history path] [--backend auto|basic|interactive] [--theme name] [--verbose]"

type replFlags struct {
	Config  string `flag:"config" help:"config file (default: $XDG_CONFIG_HOME/readline-repl/config.toml)"`
	History string `flag:"history" help:"history file (default: $XDG_CONFIG_HOME/readline-repl/history)"`
	Backend string `flag:"backend" help:"line input backend: auto, basic or interactive"`
	Theme   string `flag:"theme" help:"color theme of the interactive backend"`
	Verbose bool   `flag:"verbose" short:"v" help:"enable debug logging"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if hasHelpFlag(args) {
		fmt.Fprintln(stderr, usage)
		return 0
	}
	result, err := yargs.ParseFlags[replFlags](args)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		fmt.Fprintln(stderr, usage)
		return 2
	}
	if len(result.Args) > 0 {
		fmt.Fprintln(stderr, usage)
		return 2
	}
	flags := result.Flags

	level := slog.LevelInfo
	if flags.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfgPath := strings.TrimSpace(flags.Config)
	if cfgPath == "" {
		cfgPath, err = configPath()
		if err != nil {
			logger.Warn("locating config", "error", err)
		}
	}
	cfg := defaultConfig()
	if cfgPath != "" {
		cfg, err = loadConfig(cfgPath)
		if err != nil {
			logger.Error("loading config", "path", cfgPath, "error", err)
			return 1
		}
		logger.Debug("config loaded", "path", cfgPath)
	}

	backendName := firstNonEmpty(flags.Backend, cfg.Backend, "auto")
	theme := firstNonEmpty(flags.Theme, cfg.Theme)
	historyPath := firstNonEmpty(flags.History, cfg.History, readline.DefaultHistoryFile(appName))

	helper := newReplHelper(cfg.Keywords)
	backend, err := newBackend(backendName, helper, stdin, stdout, theme, cfg.MaxHistory)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 2
	}
	logger.Debug("backend selected", "backend", backendName, "persistent", backend.Persistent())

	rl := readline.NewWithBackend(helper, backend)
	defer func() {
		if err := rl.Close(); err != nil {
			logger.Warn("closing readline", "error", err)
		}
	}()

	if historyPath != "" {
		if err := rl.LoadHistory(historyPath); err != nil {
			logger.Warn("loading history", "path", historyPath, "error", err)
		}
	}

	status := loop(rl, stdout, logger)

	if historyPath != "" {
		if err := rl.SaveHistory(historyPath); err != nil {
			logger.Warn("saving history", "path", historyPath, "error", err)
		}
	}
	return status
}

// loop reads lines until the input ends or fails and returns the exit status.
func loop(rl *readline.Readline[replHelper], stdout io.Writer, logger *slog.Logger) int {
	for {
		res := rl.Readline(">>> ")
		switch res.Kind() {
		case readline.KindLine:
			line, _ := res.Text()
			if err := rl.AddHistoryEntry(line); err != nil {
				logger.Warn("adding history entry", "error", err)
			}
			fmt.Fprintln(stdout, line)
		case readline.KindInterrupted:
			fmt.Fprintln(stdout, "KeyboardInterrupt")
		case readline.KindEncoding:
			logger.Debug("discarding undecodable input")
		case readline.KindEOF:
			return 0
		default:
			logger.Error("reading input", "result", res.Kind().String(), "error", res.Err())
			return 1
		}
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func hasHelpFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}
