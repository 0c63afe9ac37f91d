// Package apierr classifies Telegram Bot API failures into the few outcomes
// handlers actually branch on. Callers match on Kind instead of grepping
// rendered error strings.
package apierr

import (
	"errors"
	"strings"

	tele "gopkg.in/telebot.v4"
)

// Kind is the outcome of a Telegram API call from the caller's point of view.
type Kind int

const (
	// KindOK means the call succeeded.
	KindOK Kind = iota
	// KindNotModified means an edit produced content identical to the
	// current one. Benign; the message is already in the desired state.
	KindNotModified
	// KindMessageGone means the edit target no longer exists, typically
	// because the user deleted the message.
	KindMessageGone
	// KindFlood means the API asked to back off.
	KindFlood
	// KindOther covers every remaining transport or API failure.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindNotModified:
		return "not_modified"
	case KindMessageGone:
		return "message_gone"
	case KindFlood:
		return "flood"
	default:
		return "other"
	}
}

// Classify maps an error returned by telebot to a Kind.
func Classify(err error) Kind {
	if err == nil {
		return KindOK
	}
	if errors.Is(err, tele.ErrSameMessageContent) {
		return KindNotModified
	}

	var flood tele.FloodError
	if errors.As(err, &flood) {
		return KindFlood
	}

	var apiErr *tele.Error
	if errors.As(err, &apiErr) {
		desc := strings.ToLower(apiErr.Description)
		switch {
		case strings.Contains(desc, "message is not modified"):
			return KindNotModified
		case strings.Contains(desc, "message to edit not found"),
			strings.Contains(desc, "message to delete not found"):
			return KindMessageGone
		}
	}
	return KindOther
}

// IsNotModified reports whether err is the benign identical-content edit failure.
func IsNotModified(err error) bool {
	return err != nil && Classify(err) == KindNotModified
}

// IsMessageGone reports whether err signals that the edit target was deleted.
func IsMessageGone(err error) bool {
	return err != nil && Classify(err) == KindMessageGone
}

// Swallow returns nil for benign identical-content failures and err otherwise.
func Swallow(err error) error {
	if IsNotModified(err) {
		return nil
	}
	return err
}
