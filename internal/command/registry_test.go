package command

import (
	"errors"
	"strings"
	"testing"
	"time"

	"attache/internal/book"
)

// fixedClock pins the birthdays command to Wednesday, January 10 2024.
func fixedClock() time.Time {
	return time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
}

func newRegistry(t *testing.T) (*Registry, *book.Book) {
	t.Helper()
	bk := book.New()
	return New(bk, WithClock(fixedClock)), bk
}

func mustExecute(t *testing.T, r *Registry, name string, args ...string) string {
	t.Helper()
	out, err := r.Execute(name, args)
	if err != nil {
		t.Fatalf("%s %v error = %v", name, args, err)
	}
	return out
}

func wantKind(t *testing.T, err error, kind Kind) *Error {
	t.Helper()
	var ce *Error
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T (%v), want *Error", err, err)
	}
	if ce.Kind != kind {
		t.Fatalf("kind = %q, want %q", ce.Kind, kind)
	}
	return ce
}

func TestHello(t *testing.T) {
	r, _ := newRegistry(t)
	if out := mustExecute(t, r, "hello"); out != "How can I help you?" {
		t.Errorf("reply = %q", out)
	}
}

func TestAdd_CreatesContact(t *testing.T) {
	r, bk := newRegistry(t)

	out := mustExecute(t, r, "add", "Alice", "1234567890")
	if out != "Contact added." {
		t.Errorf("reply = %q, want %q", out, "Contact added.")
	}

	rec, ok := bk.Find("Alice")
	if !ok {
		t.Fatal("contact should be in the book")
	}
	phones := rec.Phones()
	if len(phones) != 1 || phones[0] != "1234567890" {
		t.Errorf("phones = %v, want exactly the added phone", phones)
	}
}

func TestAdd_DuplicateLeavesExistingUnmodified(t *testing.T) {
	r, bk := newRegistry(t)
	mustExecute(t, r, "add", "Alice", "1234567890")

	_, err := r.Execute("add", []string{"Alice", "0987654321"})
	ce := wantKind(t, err, KindDuplicate)
	if ce.Message != "Contact already exists." {
		t.Errorf("message = %q", ce.Message)
	}

	rec, _ := bk.Find("Alice")
	if first, _ := rec.FirstPhone(); first != "1234567890" {
		t.Errorf("existing phone = %q, want unmodified %q", first, "1234567890")
	}
}

func TestAdd_InvalidPhone(t *testing.T) {
	r, bk := newRegistry(t)

	_, err := r.Execute("add", []string{"Alice", "12345"})
	ce := wantKind(t, err, KindValidation)
	if ce.Message != "Invalid phone format." {
		t.Errorf("message = %q", ce.Message)
	}
	if _, ok := bk.Find("Alice"); ok {
		t.Error("failed add should not insert a record")
	}

	var ve *book.ValidationError
	if !errors.As(err, &ve) || ve.Input != "12345" {
		t.Errorf("wrapped cause = %v, want *book.ValidationError carrying the input", err)
	}
}

func TestChange_ReplacesFirstPhone(t *testing.T) {
	r, bk := newRegistry(t)
	mustExecute(t, r, "add", "Alice", "1234567890")

	out := mustExecute(t, r, "change", "Alice", "0987654321")
	if out != "Contact updated." {
		t.Errorf("reply = %q, want %q", out, "Contact updated.")
	}

	rec, _ := bk.Find("Alice")
	if first, _ := rec.FirstPhone(); first != "0987654321" {
		t.Errorf("phone = %q, want replaced", first)
	}
}

func TestChange_NotFound(t *testing.T) {
	r, _ := newRegistry(t)

	_, err := r.Execute("change", []string{"Alice", "0987654321"})
	ce := wantKind(t, err, KindNotFound)
	if ce.Message != "Contact not found." {
		t.Errorf("message = %q", ce.Message)
	}
}

func TestChange_RevalidatesReplacement(t *testing.T) {
	r, bk := newRegistry(t)
	mustExecute(t, r, "add", "Alice", "1234567890")

	_, err := r.Execute("change", []string{"Alice", "bogus"})
	wantKind(t, err, KindValidation)

	rec, _ := bk.Find("Alice")
	if first, _ := rec.FirstPhone(); first != "1234567890" {
		t.Errorf("phone = %q, want original kept after rejected change", first)
	}
}

func TestPhone(t *testing.T) {
	r, _ := newRegistry(t)
	mustExecute(t, r, "add", "Alice", "1234567890")

	if out := mustExecute(t, r, "phone", "Alice"); out != "1234567890" {
		t.Errorf("reply = %q, want the stored phone", out)
	}
}

func TestPhone_NotFound(t *testing.T) {
	r, _ := newRegistry(t)
	_, err := r.Execute("phone", []string{"Alice"})
	wantKind(t, err, KindNotFound)
}

func TestPhone_NoPhoneOnRecord(t *testing.T) {
	r, bk := newRegistry(t)
	rec, _ := book.NewRecord("Alice")
	bk.Add(rec)

	_, err := r.Execute("phone", []string{"Alice"})
	ce := wantKind(t, err, KindNoPhone)
	if ce.Message != "No phone on record." {
		t.Errorf("message = %q", ce.Message)
	}
}

func TestAll_Empty(t *testing.T) {
	r, _ := newRegistry(t)
	if out := mustExecute(t, r, "all"); out != "No contacts stored." {
		t.Errorf("reply = %q", out)
	}
}

func TestAll_ListsInInsertionOrder(t *testing.T) {
	r, _ := newRegistry(t)
	mustExecute(t, r, "add", "Carol", "1111111111")
	mustExecute(t, r, "add", "Alice", "2222222222")

	out := mustExecute(t, r, "all")
	want := "Carol: 1111111111\nAlice: 2222222222"
	if out != want {
		t.Errorf("reply = %q, want %q", out, want)
	}
}

func TestAll_PhonelessRecordListed(t *testing.T) {
	r, bk := newRegistry(t)
	rec, _ := book.NewRecord("Alice")
	bk.Add(rec)

	out := mustExecute(t, r, "all")
	if !strings.Contains(out, "Alice") || !strings.Contains(out, "(no phone)") {
		t.Errorf("reply = %q, want placeholder listing for phoneless record", out)
	}
}

func TestAddBirthday(t *testing.T) {
	r, bk := newRegistry(t)
	mustExecute(t, r, "add", "Alice", "1234567890")

	out := mustExecute(t, r, "add-birthday", "Alice", "12.01.1990")
	if out != "Birthday added." {
		t.Errorf("reply = %q", out)
	}

	rec, _ := bk.Find("Alice")
	if bd, ok := rec.Birthday(); !ok || bd.String() != "12.01.1990" {
		t.Errorf("birthday = %v (set=%v), want 12.01.1990", bd, ok)
	}
}

func TestAddBirthday_NotFound(t *testing.T) {
	r, _ := newRegistry(t)
	_, err := r.Execute("add-birthday", []string{"Alice", "12.01.1990"})
	wantKind(t, err, KindNotFound)
}

func TestAddBirthday_InvalidDate(t *testing.T) {
	r, _ := newRegistry(t)
	mustExecute(t, r, "add", "Alice", "1234567890")

	_, err := r.Execute("add-birthday", []string{"Alice", "31.02.2021"})
	ce := wantKind(t, err, KindValidation)
	if ce.Message != "Invalid birthday format." {
		t.Errorf("message = %q", ce.Message)
	}
}

func TestShowBirthday_RoundTrips(t *testing.T) {
	r, _ := newRegistry(t)
	mustExecute(t, r, "add", "Alice", "1234567890")
	mustExecute(t, r, "add-birthday", "Alice", "12.01.1990")

	if out := mustExecute(t, r, "show-birthday", "Alice"); out != "12.01.1990" {
		t.Errorf("reply = %q, want %q", out, "12.01.1990")
	}
}

func TestShowBirthday_CombinedNotFound(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, r *Registry)
	}{
		{name: "absent contact", setup: func(*testing.T, *Registry) {}},
		{name: "contact without birthday", setup: func(t *testing.T, r *Registry) {
			mustExecute(t, r, "add", "Alice", "1234567890")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newRegistry(t)
			tt.setup(t, r)

			_, err := r.Execute("show-birthday", []string{"Alice"})
			ce := wantKind(t, err, KindNotFound)
			if ce.Message != "Contact or birthday not found." {
				t.Errorf("message = %q", ce.Message)
			}
		})
	}
}

func TestBirthdays_GroupsByWeekday(t *testing.T) {
	r, _ := newRegistry(t)
	mustExecute(t, r, "add", "Alice", "1234567890")
	mustExecute(t, r, "add-birthday", "Alice", "12.01.1990") // Friday
	mustExecute(t, r, "add", "Bob", "0987654321")
	mustExecute(t, r, "add-birthday", "Bob", "13.01.1991") // Saturday → Monday

	out := mustExecute(t, r, "birthdays")
	want := "Friday: Alice\nMonday: Bob"
	if out != want {
		t.Errorf("reply = %q, want %q", out, want)
	}
}

func TestBirthdays_Empty(t *testing.T) {
	r, _ := newRegistry(t)
	mustExecute(t, r, "add", "Alice", "1234567890")

	if out := mustExecute(t, r, "birthdays"); out != "No birthdays next week." {
		t.Errorf("reply = %q", out)
	}
}

func TestBirthdays_LeapDaySurfacesError(t *testing.T) {
	bk := book.New()
	r := New(bk, WithClock(func() time.Time {
		return time.Date(2025, time.February, 24, 0, 0, 0, 0, time.UTC)
	}))
	mustExecute(t, r, "add", "Alice", "1234567890")
	mustExecute(t, r, "add-birthday", "Alice", "29.02.2000")

	_, err := r.Execute("birthdays", nil)
	ce := wantKind(t, err, KindValidation)
	if !strings.Contains(ce.Message, "February 29") {
		t.Errorf("message = %q, want February 29 mention", ce.Message)
	}
}

func TestDelete(t *testing.T) {
	r, bk := newRegistry(t)
	mustExecute(t, r, "add", "Alice", "1234567890")

	if out := mustExecute(t, r, "delete", "Alice"); out != "Contact deleted." {
		t.Errorf("reply = %q", out)
	}
	if bk.Len() != 0 {
		t.Error("record should be gone")
	}
}

func TestDelete_NotFound(t *testing.T) {
	r, _ := newRegistry(t)
	_, err := r.Execute("delete", []string{"Alice"})
	wantKind(t, err, KindNotFound)
}

func TestHelp_ListsEveryCommand(t *testing.T) {
	r, _ := newRegistry(t)
	out := mustExecute(t, r, "help")

	for _, name := range []string{"hello", "add", "change", "phone", "all", "add-birthday", "show-birthday", "birthdays", "delete", "close"} {
		if !strings.Contains(out, name) {
			t.Errorf("help should mention %q:\n%s", name, out)
		}
	}
}

func TestExecute_UnknownCommand(t *testing.T) {
	r, _ := newRegistry(t)
	_, err := r.Execute("frobnicate", nil)
	ce := wantKind(t, err, KindUnknown)
	if ce.Message != "Invalid command." {
		t.Errorf("message = %q", ce.Message)
	}
}

func TestExecute_ArgumentCount(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		args []string
	}{
		{name: "add too few", cmd: "add", args: []string{"Alice"}},
		{name: "add too many", cmd: "add", args: []string{"Alice", "1234567890", "extra"}},
		{name: "phone none", cmd: "phone", args: nil},
		{name: "change too few", cmd: "change", args: []string{"Alice"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newRegistry(t)
			_, err := r.Execute(tt.cmd, tt.args)
			ce := wantKind(t, err, KindMissingArgument)
			if !strings.Contains(ce.Message, "Usage:") {
				t.Errorf("message = %q, want usage hint", ce.Message)
			}
		})
	}
}

func TestDispatch_ParsesAndRenders(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantText string
		wantErr  bool
		wantQuit bool
	}{
		{name: "blank line", line: "   ", wantText: ""},
		{name: "hello", line: "hello", wantText: "How can I help you?"},
		{name: "uppercase command", line: "HELLO", wantText: "How can I help you?"},
		{name: "add", line: "add Alice 1234567890", wantText: "Contact added."},
		{name: "unknown", line: "dance", wantText: "Invalid command.", wantErr: true},
		{name: "bad phone rendered", line: "add Bob 123", wantText: "Invalid phone format.", wantErr: true},
		{name: "missing args rendered", line: "add Bob", wantText: "Usage: add <name> <phone>", wantErr: true},
		{name: "close quits", line: "close", wantText: Farewell, wantQuit: true},
		{name: "exit quits", line: "exit", wantText: Farewell, wantQuit: true},
		{name: "exit uppercase", line: "EXIT", wantText: Farewell, wantQuit: true},
	}

	r, _ := newRegistry(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := r.Dispatch(tt.line)
			if rep.Text != tt.wantText {
				t.Errorf("text = %q, want %q", rep.Text, tt.wantText)
			}
			if rep.IsError != tt.wantErr {
				t.Errorf("isError = %v, want %v", rep.IsError, tt.wantErr)
			}
			if rep.Quit != tt.wantQuit {
				t.Errorf("quit = %v, want %v", rep.Quit, tt.wantQuit)
			}
		})
	}
}

func TestDispatch_ExtraWhitespace(t *testing.T) {
	r, _ := newRegistry(t)
	rep := r.Dispatch("  add   Alice   1234567890  ")
	if rep.Text != "Contact added." {
		t.Errorf("text = %q, want whitespace-tolerant parse", rep.Text)
	}
}
