package presenter

import (
	"context"
	"unicode/utf8"
)

const (
	KeyEscape    = "Escape"
	KeyArrowUp   = "ArrowUp"
	KeyArrowDown = "ArrowDown"
	KeyEnter     = "Enter"
	KeyBackspace = "Backspace"
	keyOpen      = "k"
)

// Key is a key press. Name is either one of the Key constants or the typed text.
type Key struct {
	Name string
	Ctrl bool
	Meta bool
}

type KeyOutcome struct {
	Handled bool
	// NavigateTo is set when a selection was confirmed.
	NavigateTo string
}

// HandleKey applies a key press. While closed only Ctrl/Cmd+K (open) is bound; while open
// Escape, arrows and Enter are bound and every other key edits the query.
func (s *Session) HandleKey(ctx context.Context, key Key) KeyOutcome {
	if !s.open {
		if (key.Ctrl || key.Meta) && key.Name == keyOpen {
			s.Open()
			return KeyOutcome{Handled: true}
		}
		return KeyOutcome{}
	}

	switch key.Name {
	case KeyEscape:
		s.Close()
	case KeyArrowDown:
		s.Next()
	case KeyArrowUp:
		s.Previous()
	case KeyEnter:
		url, _ := s.Confirm()
		return KeyOutcome{Handled: true, NavigateTo: url}
	case KeyBackspace:
		if s.query == "" {
			return KeyOutcome{Handled: true}
		}
		_, size := utf8.DecodeLastRuneInString(s.query)
		s.SetQuery(ctx, s.query[:len(s.query)-size])
	default:
		if key.Ctrl || key.Meta {
			return KeyOutcome{}
		}
		s.SetQuery(ctx, s.query+key.Name)
	}

	return KeyOutcome{Handled: true}
}
