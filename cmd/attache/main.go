package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"attache/internal/book"
	"attache/internal/chat"
	"attache/internal/command"
	"attache/internal/config"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for attache.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Chat    ChatCmd          `cmd:"" default:"1" help:"Start an interactive assistant session."`
}

// ChatCmd starts an interactive session over a fresh in-memory book.
type ChatCmd struct {
	Plain  bool   `help:"Force plain line output even if stdout is a TTY." default:"false"`
	Config string `help:"Extra config file, applied after the default layers." type:"path"`
}

// sessionRunner abstracts chat.Session for testing.
type sessionRunner interface {
	Run() error
}

// Run builds real dependencies and starts the session.
func (c *ChatCmd) Run() error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return fmt.Errorf("chat: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("chat: %w", err)
	}

	// The TUI owns stdout, so debug traces go to a file.
	if os.Getenv("ATTACHE_DEBUG") != "" {
		f, err := tea.LogToFile("attache-debug.log", "attache")
		if err == nil {
			defer func() { _ = f.Close() }()
		}
	}

	bk := book.New()
	reg := command.New(bk, command.WithWindow(cfg.WindowOptions()))

	session := chat.NewSession(chat.Options{
		Dispatch:   dispatchFunc(reg),
		Greeting:   cfg.Chat.Greeting,
		Prompt:     cfg.Chat.Prompt,
		ForcePlain: c.Plain,
	})
	return c.run(session)
}

// run executes the session, enabling testable wiring.
func (c *ChatCmd) run(s sessionRunner) error {
	return s.Run()
}

// dispatchFunc bridges a command Registry to the session's dispatch signature.
func dispatchFunc(reg *command.Registry) chat.DispatchFunc {
	return func(line string) (string, bool, bool) {
		rep := reg.Dispatch(line)
		return rep.Text, rep.IsError, rep.Quit
	}
}

// loadConfig loads layered config from user and project paths with env
// overrides. An extra path, when given, is the highest-priority file layer.
func loadConfig(extra string) (*config.Config, error) {
	paths := []string{
		os.ExpandEnv("$HOME/.config/attache/config.yaml"),
		".attache.yaml",
	}
	if extra != "" {
		paths = append(paths, extra)
	}

	cfg, err := config.LoadLayered(paths...)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Exit codes.
const (
	exitSuccess = 0
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Vars{"version": version + " " + commit + " " + date})
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
