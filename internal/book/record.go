package book

import "errors"

// ErrNoPhone reports a record whose phone list is empty where a first
// phone is required.
var ErrNoPhone = errors.New("book: record has no phone numbers")

// Record is one contact: a name, its phone numbers in the order they were
// added, and an optional birthday.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a Record for the given raw name. The name becomes the
// record's Book key and cannot be changed afterwards.
func NewRecord(raw string) (*Record, error) {
	name, err := NewName(raw)
	if err != nil {
		return nil, err
	}
	return &Record{name: name}, nil
}

// Name returns the contact's name.
func (r *Record) Name() Name { return r.name }

// AddPhone validates raw and appends it to the phone list. Numbers are not
// deduplicated; adding the same number twice stores it twice.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// SetFirstPhone validates raw and overwrites the first stored phone.
// Returns ErrNoPhone if the record has no phones to overwrite.
func (r *Record) SetFirstPhone(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	if len(r.phones) == 0 {
		return ErrNoPhone
	}
	r.phones[0] = p
	return nil
}

// FirstPhone returns the first stored phone, or ErrNoPhone when the list
// is empty.
func (r *Record) FirstPhone() (Phone, error) {
	if len(r.phones) == 0 {
		return "", ErrNoPhone
	}
	return r.phones[0], nil
}

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// SetBirthday validates raw and replaces any existing birthday.
// Last write wins.
func (r *Record) SetBirthday(raw string) error {
	b, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// Birthday returns the stored birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}
