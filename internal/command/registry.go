// Package command implements the assistant's use-case layer: named
// commands executed against a shared contact book, each producing a
// display string. Failures are tagged Errors that the session boundary
// renders through the same string channel as success, so no command ever
// escapes its call.
package command

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"attache/internal/book"
)

// Farewell is printed when the session ends.
const Farewell = "Good bye!"

// handler executes one command's already-split arguments.
type handler func(args []string) (string, error)

// entry describes a registered command for dispatch and help rendering.
type entry struct {
	name  string
	usage string // argument placeholders, e.g. "<name> <phone>"
	desc  string
	argc  int // exact argument count; zero-arg commands ignore extras
	run   handler
}

// Registry owns the command table and the Book it operates on.
type Registry struct {
	book     *book.Book
	now      func() time.Time
	window   book.WindowOptions
	commands map[string]*entry
	order    []string
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock overrides the clock used by the birthdays command.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// WithWindow overrides the birthday-window query options.
func WithWindow(opts book.WindowOptions) Option {
	return func(r *Registry) { r.window = opts }
}

// New creates a Registry over bk with the full command table registered.
func New(bk *book.Book, opts ...Option) *Registry {
	r := &Registry{
		book: bk,
		now:  time.Now,
		window: book.WindowOptions{
			Days:            book.DefaultWindowDays,
			WeekendToMonday: true,
		},
		commands: make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.register("hello", "", "Greet the assistant", 0, r.hello)
	r.register("add", "<name> <phone>", "Add a new contact", 2, r.addContact)
	r.register("change", "<name> <phone>", "Replace a contact's phone", 2, r.changeContact)
	r.register("phone", "<name>", "Show a contact's phone", 1, r.getPhone)
	r.register("all", "", "List every contact", 0, r.showAll)
	r.register("add-birthday", "<name> <DD.MM.YYYY>", "Record a contact's birthday", 2, r.addBirthday)
	r.register("show-birthday", "<name>", "Show a contact's birthday", 1, r.showBirthday)
	r.register("birthdays", "", "Upcoming birthdays by weekday", 0, r.birthdays)
	r.register("delete", "<name>", "Remove a contact", 1, r.deleteContact)
	r.register("help", "", "Show this summary", 0, r.help)

	return r
}

func (r *Registry) register(name, usage, desc string, argc int, run handler) {
	r.commands[name] = &entry{name: name, usage: usage, desc: desc, argc: argc, run: run}
	r.order = append(r.order, name)
}

// Reply is the rendered outcome of one dispatched line. Failures arrive
// through the same Text channel as success, with IsError set so the
// session can style them; Quit reports that the session should end.
type Reply struct {
	Text    string
	IsError bool
	Quit    bool
}

// Dispatch parses one input line and executes it. The reply is always
// printable; no failure escapes the call.
func (r *Registry) Dispatch(line string) Reply {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Reply{}
	}

	name := strings.ToLower(fields[0])
	if name == "close" || name == "exit" {
		return Reply{Text: Farewell, Quit: true}
	}

	out, err := r.Execute(name, fields[1:])
	if err != nil {
		return Reply{Text: renderError(err), IsError: true}
	}
	return Reply{Text: out}
}

// Execute runs the named command with args, returning a tagged *Error on
// any failure.
func (r *Registry) Execute(name string, args []string) (string, error) {
	sp, ok := r.commands[name]
	if !ok {
		return "", &Error{Kind: KindUnknown, Message: "Invalid command."}
	}
	if sp.argc > 0 && len(args) != sp.argc {
		return "", &Error{
			Kind:    KindMissingArgument,
			Message: fmt.Sprintf("Usage: %s", usageLine(sp)),
		}
	}
	return sp.run(args)
}

// renderError converts a command failure to its display string.
func renderError(err error) string {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Message
	}
	return err.Error()
}

func usageLine(sp *entry) string {
	if sp.usage == "" {
		return sp.name
	}
	return sp.name + " " + sp.usage
}
