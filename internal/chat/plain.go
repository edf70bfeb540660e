package chat

import (
	"bufio"
	"fmt"
	"io"
)

// PlainSession runs the conversation as a prompt/read/reply line loop.
// Used when output is not a terminal, and as the TUI fallback.
type PlainSession struct {
	r        io.Reader
	w        io.Writer
	dispatch DispatchFunc
	greeting string
	prompt   string
}

// NewPlainSession creates a plain line session over r and w.
func NewPlainSession(r io.Reader, w io.Writer, dispatch DispatchFunc, greeting, prompt string) *PlainSession {
	return &PlainSession{r: r, w: w, dispatch: dispatch, greeting: greeting, prompt: prompt}
}

// Run loops until the dispatcher signals quit or input reaches EOF.
// Replies and failures print through the same channel; a scanner error is
// the only way the session itself can fail.
func (s *PlainSession) Run() error {
	_, _ = fmt.Fprintln(s.w, s.greeting)

	scanner := bufio.NewScanner(s.r)
	for {
		_, _ = fmt.Fprint(s.w, s.prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("chat: reading input: %w", err)
			}
			// EOF: end the session as politely as an explicit exit.
			_, _ = fmt.Fprintln(s.w)
			return nil
		}

		reply, _, quit := s.dispatch(scanner.Text())
		if reply != "" {
			_, _ = fmt.Fprintln(s.w, reply)
		}
		if quit {
			return nil
		}
	}
}
