package command

import (
	"fmt"
	"strings"

	"attache/internal/book"
)

func (r *Registry) hello([]string) (string, error) {
	return "How can I help you?", nil
}

// addContact creates a record with one phone. Duplicate names are rejected
// before any mutation, so a failed add leaves the book untouched.
func (r *Registry) addContact(args []string) (string, error) {
	name, phone := args[0], args[1]

	if _, ok := r.book.Find(name); ok {
		return "", &Error{Kind: KindDuplicate, Message: "Contact already exists."}
	}

	rec, err := book.NewRecord(name)
	if err != nil {
		return "", wrap(err)
	}
	if err := rec.AddPhone(phone); err != nil {
		return "", wrap(err)
	}
	r.book.Add(rec)
	return "Contact added.", nil
}

// changeContact replaces the first stored phone. The replacement goes
// through the same validation as add.
func (r *Registry) changeContact(args []string) (string, error) {
	name, phone := args[0], args[1]

	rec, ok := r.book.Find(name)
	if !ok {
		return "", errNotFound()
	}
	if err := rec.SetFirstPhone(phone); err != nil {
		return "", wrap(err)
	}
	return "Contact updated.", nil
}

func (r *Registry) getPhone(args []string) (string, error) {
	rec, ok := r.book.Find(args[0])
	if !ok {
		return "", errNotFound()
	}
	phone, err := rec.FirstPhone()
	if err != nil {
		return "", wrap(err)
	}
	return phone.String(), nil
}

func (r *Registry) showAll([]string) (string, error) {
	if r.book.Len() == 0 {
		return "No contacts stored.", nil
	}

	var lines []string
	for _, rec := range r.book.Records() {
		phone, err := rec.FirstPhone()
		if err != nil {
			// A phoneless record is listed rather than failing the listing.
			lines = append(lines, fmt.Sprintf("%s: (no phone)", rec.Name()))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", rec.Name(), phone))
	}
	return strings.Join(lines, "\n"), nil
}

func (r *Registry) addBirthday(args []string) (string, error) {
	name, date := args[0], args[1]

	rec, ok := r.book.Find(name)
	if !ok {
		return "", errNotFound()
	}
	if err := rec.SetBirthday(date); err != nil {
		return "", wrap(err)
	}
	return "Birthday added.", nil
}

func (r *Registry) showBirthday(args []string) (string, error) {
	rec, ok := r.book.Find(args[0])
	if !ok {
		return "", &Error{Kind: KindNotFound, Message: "Contact or birthday not found."}
	}
	bd, ok := rec.Birthday()
	if !ok {
		return "", &Error{Kind: KindNotFound, Message: "Contact or birthday not found."}
	}
	return bd.String(), nil
}

func (r *Registry) birthdays([]string) (string, error) {
	groups, err := r.book.UpcomingBirthdays(r.now(), r.window)
	if err != nil {
		return "", wrap(err)
	}
	if len(groups) == 0 {
		return "No birthdays next week.", nil
	}

	lines := make([]string, len(groups))
	for i, g := range groups {
		lines[i] = fmt.Sprintf("%s: %s", g.Label, strings.Join(g.Names, ", "))
	}
	return strings.Join(lines, "\n"), nil
}

func (r *Registry) deleteContact(args []string) (string, error) {
	name := args[0]
	if _, ok := r.book.Find(name); !ok {
		return "", errNotFound()
	}
	r.book.Delete(name)
	return "Contact deleted.", nil
}

func (r *Registry) help([]string) (string, error) {
	width := 0
	for _, name := range r.order {
		if l := len(usageLine(r.commands[name])); l > width {
			width = l
		}
	}

	lines := make([]string, 0, len(r.order)+1)
	for _, name := range r.order {
		sp := r.commands[name]
		lines = append(lines, fmt.Sprintf("%-*s  %s", width, usageLine(sp), sp.desc))
	}
	lines = append(lines, fmt.Sprintf("%-*s  %s", width, "close | exit", "End the session"))
	return strings.Join(lines, "\n"), nil
}
