package contacts

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ccollicutt/logtally/pkg/style"
)

// Input errors a handler may return. Guard turns these into replies;
// anything else is passed through to the caller.
var (
	ErrInvalidArgs = errors.New("expected a name and a phone")
	ErrNotFound    = errors.New("contact not found")
	ErrArgCount    = errors.New("expected only a name")
)

// replyText is what the user sees for each input error.
var replyText = map[error]string{
	ErrInvalidArgs: "Please provide a name and phone.",
	ErrNotFound:    "Contact not found. Add it first.",
	ErrArgCount:    "Provide only the user name.",
}

// Reply is a line of output with the tone it should be shown in.
type Reply struct {
	Tone style.Tone
	Text string
}

// Handler runs one command against the book.
type Handler func(args []string, book *Book) (Reply, error)

// Guard wraps h so that input errors become error-toned replies and are
// logged at error level under name.
func Guard(name string, h Handler, logger *slog.Logger) Handler {
	return func(args []string, book *Book) (Reply, error) {
		reply, err := h(args, book)
		if err == nil {
			return reply, nil
		}
		for sentinel, text := range replyText {
			if errors.Is(err, sentinel) {
				logger.LogAttrs(context.Background(), slog.LevelError, "command failed",
					slog.String("command", name),
					slog.String("error", err.Error()),
				)
				return Reply{Tone: style.Error, Text: text}, nil
			}
		}
		return Reply{}, err
	}
}
