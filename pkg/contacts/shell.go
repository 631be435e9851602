package contacts

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ccollicutt/logtally/pkg/style"
)

const (
	welcomeText = "Welcome to the assistant bot!"
	goodbyeText = "Good bye!"
	invalidText = "Invalid command."
	promptText  = "Enter a command: "
)

// Shell reads commands line by line and answers them.
type Shell struct {
	in       *bufio.Scanner
	out      io.Writer
	palette  style.Palette
	book     *Book
	handlers map[string]Handler
}

// NewShell returns a shell reading from in and writing to out with a fresh
// book. Input errors are logged to logger.
func NewShell(in io.Reader, out io.Writer, palette style.Palette, logger *slog.Logger) *Shell {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Shell{
		in:      bufio.NewScanner(in),
		out:     out,
		palette: palette,
		book:    NewBook(),
	}
	s.handlers = map[string]Handler{
		"hello":  Hello,
		"add":    Guard("add", AddContact, logger),
		"change": Guard("change", ChangeContact, logger),
		"phone":  Guard("phone", ShowPhone, logger),
		"all":    ShowAll,
		"help":   ShowHelp,
	}
	return s
}

// Book returns the book the shell edits.
func (s *Shell) Book() *Book {
	return s.book
}

// Run loops until close, exit, end of input or ctx is done. It returns an
// error only for read failures, cancellation or unexpected handler errors.
func (s *Shell) Run(ctx context.Context) error {
	s.say(Reply{Tone: style.Success, Text: welcomeText})

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, s.palette.Render(style.Plain, promptText))

		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return fmt.Errorf("reading command: %w", err)
			}
			fmt.Fprintln(s.out)
			s.say(Reply{Tone: style.Success, Text: goodbyeText})
			return nil
		}

		command, args := ParseInput(s.in.Text())
		switch command {
		case "":
			continue
		case "close", "exit":
			s.say(Reply{Tone: style.Success, Text: goodbyeText})
			return nil
		}

		h, ok := s.handlers[command]
		if !ok {
			s.say(Reply{Tone: style.Error, Text: invalidText})
			continue
		}
		reply, err := h(args, s.book)
		if err != nil {
			return fmt.Errorf("%s: %w", command, err)
		}
		s.say(reply)
	}
}

func (s *Shell) say(r Reply) {
	fmt.Fprintln(s.out, s.palette.Render(r.Tone, r.Text))
}
