package apierr

import (
	"errors"
	"fmt"
	"testing"

	tele "gopkg.in/telebot.v4"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindOK},
		{"sentinel not modified", tele.ErrSameMessageContent, KindNotModified},
		{"wrapped not modified", fmt.Errorf("edit: %w", tele.ErrSameMessageContent), KindNotModified},
		{
			"raw api not modified",
			&tele.Error{Code: 400, Description: "Bad Request: message is not modified"},
			KindNotModified,
		},
		{
			"edit target deleted",
			&tele.Error{Code: 400, Description: "Bad Request: message to edit not found"},
			KindMessageGone,
		},
		{"flood", tele.FloodError{Error: &tele.Error{Code: 429}, RetryAfter: 5}, KindFlood},
		{"plain error", errors.New("connection reset"), KindOther},
		{
			"other api error",
			&tele.Error{Code: 400, Description: "Bad Request: chat not found"},
			KindOther,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.err); got != tc.want {
				t.Fatalf("Classify = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSwallow(t *testing.T) {
	if err := Swallow(tele.ErrSameMessageContent); err != nil {
		t.Fatalf("Swallow(not modified) = %v", err)
	}
	gone := &tele.Error{Code: 400, Description: "Bad Request: message to edit not found"}
	if err := Swallow(gone); err == nil {
		t.Fatal("Swallow must keep message-gone errors")
	}
}

func TestIsHelpers(t *testing.T) {
	if !IsNotModified(tele.ErrSameMessageContent) {
		t.Fatal("IsNotModified sentinel")
	}
	if IsNotModified(nil) || IsMessageGone(nil) {
		t.Fatal("nil must not classify as a failure")
	}
	gone := &tele.Error{Code: 400, Description: "Bad Request: message to edit not found"}
	if !IsMessageGone(gone) {
		t.Fatal("IsMessageGone")
	}
}
