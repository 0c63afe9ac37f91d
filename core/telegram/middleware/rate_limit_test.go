package middleware

import (
	"testing"
	"time"

	tele "gopkg.in/telebot.v4"
)

type fakeContext struct {
	tele.Context
	sender *tele.User
	update tele.Update
	values map[string]interface{}
}

func newFakeContext(userID int64, upd tele.Update) *fakeContext {
	return &fakeContext{
		sender: &tele.User{ID: userID},
		update: upd,
		values: make(map[string]interface{}),
	}
}

func (f *fakeContext) Sender() *tele.User  { return f.sender }
func (f *fakeContext) Update() tele.Update { return f.update }
func (f *fakeContext) Chat() *tele.Chat    { return &tele.Chat{ID: f.sender.ID} }
func (f *fakeContext) Text() string        { return "" }

func (f *fakeContext) Set(key string, v interface{}) { f.values[key] = v }
func (f *fakeContext) Get(key string) interface{}    { return f.values[key] }

func TestRateLimitBlocksSecondUpdate(t *testing.T) {
	mw := RateLimitMiddleware(RateLimitOptions{Interval: time.Minute})

	calls := 0
	h := mw(func(c tele.Context) error {
		calls++
		return nil
	})

	msg := tele.Update{Message: &tele.Message{}}
	if err := h(newFakeContext(1, msg)); err != nil {
		t.Fatalf("first: %v", err)
	}
	if err := h(newFakeContext(1, msg)); err != nil {
		t.Fatalf("second: %v", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}

	// A different user is limited independently.
	if err := h(newFakeContext(2, msg)); err != nil {
		t.Fatalf("other user: %v", err)
	}
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
}

func TestRateLimitExclusions(t *testing.T) {
	mw := RateLimitMiddleware(RateLimitOptions{
		Interval: time.Minute,
		Exclude:  map[string]struct{}{"callback": {}},
	})

	calls := 0
	h := mw(func(c tele.Context) error {
		calls++
		return nil
	})

	cb := tele.Update{Callback: &tele.Callback{}}
	for i := 0; i < 3; i++ {
		if err := h(newFakeContext(1, cb)); err != nil {
			t.Fatalf("callback %d: %v", i, err)
		}
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
}

func TestRateLimitOnLimitedHook(t *testing.T) {
	limited := 0
	mw := RateLimitMiddleware(RateLimitOptions{
		Interval: time.Minute,
		OnLimited: func(c tele.Context) error {
			limited++
			return nil
		},
	})

	h := mw(func(c tele.Context) error { return nil })
	msg := tele.Update{Message: &tele.Message{}}
	_ = h(newFakeContext(1, msg))
	_ = h(newFakeContext(1, msg))
	if limited != 1 {
		t.Fatalf("limited = %d, want 1", limited)
	}
}
