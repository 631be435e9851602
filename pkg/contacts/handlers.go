package contacts

import (
	"fmt"
	"strings"

	"github.com/ccollicutt/logtally/pkg/style"
)

// ParseInput splits a line into a lowercased command word and its
// arguments. A blank line yields an empty command.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// AddContact handles "add <name> <phone>".
func AddContact(args []string, book *Book) (Reply, error) {
	if len(args) != 2 {
		return Reply{}, fmt.Errorf("add with %d args: %w", len(args), ErrInvalidArgs)
	}
	book.Add(args[0], args[1])
	return Reply{Tone: style.Success, Text: "Contact added."}, nil
}

// ChangeContact handles "change <name> <phone>".
func ChangeContact(args []string, book *Book) (Reply, error) {
	if len(args) != 2 {
		return Reply{}, fmt.Errorf("change with %d args: %w", len(args), ErrInvalidArgs)
	}
	if err := book.Change(args[0], args[1]); err != nil {
		return Reply{}, fmt.Errorf("change %q: %w", args[0], err)
	}
	return Reply{Tone: style.Success, Text: "Contact updated."}, nil
}

// ShowPhone handles "phone <name>".
func ShowPhone(args []string, book *Book) (Reply, error) {
	if len(args) != 1 {
		return Reply{}, fmt.Errorf("phone with %d args: %w", len(args), ErrArgCount)
	}
	phone, err := book.Phone(args[0])
	if err != nil {
		return Reply{}, fmt.Errorf("phone %q: %w", args[0], err)
	}
	return Reply{Tone: style.Info, Text: phone}, nil
}

// ShowAll handles "all". Arguments are ignored.
func ShowAll(_ []string, book *Book) (Reply, error) {
	if book.Len() == 0 {
		return Reply{Tone: style.Warning, Text: "No contacts found."}, nil
	}
	lines := make([]string, 0, book.Len())
	for _, c := range book.All() {
		lines = append(lines, c.Name+": "+c.Phone)
	}
	return Reply{Tone: style.Info, Text: strings.Join(lines, "\n")}, nil
}

// Hello handles "hello".
func Hello(_ []string, _ *Book) (Reply, error) {
	return Reply{Tone: style.Info, Text: "How can I help you?"}, nil
}

var helpEntries = []struct{ usage, desc string }{
	{"hello", "Print a greeting"},
	{"add [name] [phone]", "Add a new contact"},
	{"change [name] [phone]", "Change a contact's phone number"},
	{"phone [name]", "Show the phone number for a name"},
	{"all", "Show all contacts"},
	{"help", "Show this list of commands"},
	{"close or exit", "Quit the program"},
}

// ShowHelp handles "help".
func ShowHelp(_ []string, _ *Book) (Reply, error) {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, e := range helpEntries {
		fmt.Fprintf(&b, "  %s: %s\n", e.usage, e.desc)
	}
	return Reply{Tone: style.Help, Text: b.String()}, nil
}
