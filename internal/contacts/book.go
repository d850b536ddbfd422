package contacts

// AddressBook maps names to records while remembering insertion order,
// so listings and queries come out in the order contacts were added.
// It is a plain in-memory structure with no synchronization of its own.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook returns an empty book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord stores the record under its name. An existing entry is
// silently replaced and keeps its original position in the order.
func (b *AddressBook) AddRecord(record *Record) {
	name := record.Name()
	if _, ok := b.records[name]; !ok {
		b.order = append(b.order, name)
	}
	b.records[name] = record
}

// Find returns the record stored under name, if any.
func (b *AddressBook) Find(name string) (*Record, bool) {
	record, ok := b.records[name]
	return record, ok
}

// Delete removes the record stored under name. Unknown names are ignored.
func (b *AddressBook) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Len reports the number of stored records.
func (b *AddressBook) Len() int {
	return len(b.records)
}

// Records returns all records in insertion order.
func (b *AddressBook) Records() []*Record {
	records := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		records = append(records, b.records[name])
	}
	return records
}
