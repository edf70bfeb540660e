// Package chat implements the interactive assistant session: a Bubble Tea
// model when the terminal allows it, and a plain line loop for pipes and
// scripts. Both run the same dispatch function and speak the same wording.
package chat

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// DispatchFunc executes one command line. It returns the printable reply,
// whether the reply reports a failure, and whether the session should end.
type DispatchFunc func(line string) (reply string, isErr, quit bool)

// Session runs an assistant conversation to completion.
type Session interface {
	Run() error
}

// Options configures session creation.
type Options struct {
	Input      io.Reader // Command source (default: os.Stdin).
	Output     io.Writer // Reply destination (default: os.Stdout).
	Dispatch   DispatchFunc
	Greeting   string
	Prompt     string
	ForcePlain bool // Force the plain line loop even on a TTY.
}

// NewSession returns a TUI session when output is a TTY, or a plain line
// session otherwise. ForcePlain overrides TTY detection.
func NewSession(opts Options) Session {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	if opts.ForcePlain || !isTTY(opts.Output) {
		return &PlainSession{
			r:        opts.Input,
			w:        opts.Output,
			dispatch: opts.Dispatch,
			greeting: opts.Greeting,
			prompt:   opts.Prompt,
		}
	}

	return &TUISession{opts: opts}
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// TUISession runs the conversation as a Bubble Tea program.
// Falls back to the plain line loop if the program fails to start.
type TUISession struct {
	opts Options
}

// Run starts the Bubble Tea program and blocks until the session ends.
func (s *TUISession) Run() error {
	m := NewModel(s.opts.Dispatch, ModelOptions{
		Greeting: s.opts.Greeting,
		Prompt:   s.opts.Prompt,
	})
	p := tea.NewProgram(m, tea.WithInput(s.opts.Input), tea.WithOutput(s.opts.Output))

	if _, err := p.Run(); err != nil {
		plain := &PlainSession{
			r:        s.opts.Input,
			w:        s.opts.Output,
			dispatch: s.opts.Dispatch,
			greeting: s.opts.Greeting,
			prompt:   s.opts.Prompt,
		}
		return plain.Run()
	}
	return nil
}
