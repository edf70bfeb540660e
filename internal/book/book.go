package book

// Book is the contact directory: a map of Records keyed by contact name,
// iterated in insertion order so rendered listings are stable.
type Book struct {
	records map[Name]*Record
	order   []Name
}

// New creates an empty Book.
func New() *Book {
	return &Book{records: make(map[Name]*Record)}
}

// Add inserts rec keyed by its own name, overwriting any existing entry.
// An overwritten entry keeps its original position in iteration order.
// Duplicate prevention is the caller's concern.
func (b *Book) Add(rec *Record) {
	if _, ok := b.records[rec.Name()]; !ok {
		b.order = append(b.order, rec.Name())
	}
	b.records[rec.Name()] = rec
}

// Find returns the record for name, or ok=false when absent.
func (b *Book) Find(name string) (*Record, bool) {
	rec, ok := b.records[Name(name)]
	return rec, ok
}

// Delete removes the entry for name. Deleting an absent name is a no-op.
func (b *Book) Delete(name string) {
	key := Name(name)
	if _, ok := b.records[key]; !ok {
		return
	}
	delete(b.records, key)
	for i, n := range b.order {
		if n == key {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of records.
func (b *Book) Len() int { return len(b.records) }

// Records returns all records in insertion order.
func (b *Book) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}
