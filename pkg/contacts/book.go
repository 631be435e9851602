// Package contacts implements an in-memory contact book and the
// interactive shell that edits it.
package contacts

// Contact is a single name and phone pair.
type Contact struct {
	Name  string
	Phone string
}

// Book stores contacts keyed by exact name, remembering insertion order.
// The zero value is not usable; call NewBook.
type Book struct {
	order  []string
	phones map[string]string
}

// NewBook returns an empty book.
func NewBook() *Book {
	return &Book{phones: make(map[string]string)}
}

// Add stores phone under name. Re-adding an existing name replaces its
// phone but keeps its original position.
func (b *Book) Add(name, phone string) {
	if _, ok := b.phones[name]; !ok {
		b.order = append(b.order, name)
	}
	b.phones[name] = phone
}

// Change replaces the phone of an existing contact.
func (b *Book) Change(name, phone string) error {
	if _, ok := b.phones[name]; !ok {
		return ErrNotFound
	}
	b.phones[name] = phone
	return nil
}

// Phone returns the phone stored under name.
func (b *Book) Phone(name string) (string, error) {
	phone, ok := b.phones[name]
	if !ok {
		return "", ErrNotFound
	}
	return phone, nil
}

// All returns every contact in insertion order.
func (b *Book) All() []Contact {
	all := make([]Contact, 0, len(b.order))
	for _, name := range b.order {
		all = append(all, Contact{Name: name, Phone: b.phones[name]})
	}
	return all
}

// Len returns the number of contacts.
func (b *Book) Len() int {
	return len(b.order)
}
