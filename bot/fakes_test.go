package bot

import (
	"sync"

	tele "gopkg.in/telebot.v4"
)

// apiCall records one outgoing message operation.
type apiCall struct {
	target tele.Editable
	to     tele.Recipient
	what   interface{}
	opts   []interface{}
}

func (c apiCall) text() string {
	s, _ := c.what.(string)
	return s
}

func (c apiCall) sendOptions() *tele.SendOptions {
	for _, o := range c.opts {
		if so, ok := o.(*tele.SendOptions); ok {
			return so
		}
	}
	return nil
}

// fakeAPI scripts Edit/Send outcomes per call and records every attempt,
// including the failed ones.
type fakeAPI struct {
	mu       sync.Mutex
	edits    []apiCall
	sends    []apiCall
	editErrs []error
	sendErrs []error
}

func (f *fakeAPI) Edit(msg tele.Editable, what interface{}, opts ...interface{}) (*tele.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := len(f.edits)
	f.edits = append(f.edits, apiCall{target: msg, what: what, opts: opts})
	if n < len(f.editErrs) && f.editErrs[n] != nil {
		return nil, f.editErrs[n]
	}
	return &tele.Message{ID: 1000 + n}, nil
}

func (f *fakeAPI) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := len(f.sends)
	f.sends = append(f.sends, apiCall{to: to, what: what, opts: opts})
	if n < len(f.sendErrs) && f.sendErrs[n] != nil {
		return nil, f.sendErrs[n]
	}
	return &tele.Message{ID: 500 + n}, nil
}

func (f *fakeAPI) editCalls() []apiCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]apiCall, len(f.edits))
	copy(out, f.edits)
	return out
}

func (f *fakeAPI) sendCalls() []apiCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]apiCall, len(f.sends))
	copy(out, f.sends)
	return out
}

// fakeContext satisfies the slice of tele.Context the handlers touch and
// routes Send/Edit through the shared fakeAPI.
type fakeContext struct {
	tele.Context

	api      *fakeAPI
	sender   *tele.User
	chat     *tele.Chat
	text     string
	store    map[string]interface{}
	responds []*tele.CallbackResponse
}

func newFakeContext(api *fakeAPI, userID int64, text string) *fakeContext {
	return &fakeContext{
		api:    api,
		sender: &tele.User{ID: userID},
		chat:   &tele.Chat{ID: userID},
		text:   text,
		store:  map[string]interface{}{},
	}
}

func (f *fakeContext) Sender() *tele.User  { return f.sender }
func (f *fakeContext) Chat() *tele.Chat    { return f.chat }
func (f *fakeContext) Text() string        { return f.text }
func (f *fakeContext) Update() tele.Update { return tele.Update{} }

func (f *fakeContext) Set(key string, val interface{}) { f.store[key] = val }
func (f *fakeContext) Get(key string) interface{}      { return f.store[key] }

func (f *fakeContext) Send(what interface{}, opts ...interface{}) error {
	_, err := f.api.Send(tele.ChatID(f.chat.ID), what, opts...)
	return err
}

func (f *fakeContext) Edit(what interface{}, opts ...interface{}) error {
	_, err := f.api.Edit(&tele.StoredMessage{MessageID: "1", ChatID: f.chat.ID}, what, opts...)
	return err
}

func (f *fakeContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) == 0 {
		f.responds = append(f.responds, &tele.CallbackResponse{})
		return nil
	}
	f.responds = append(f.responds, resp[0])
	return nil
}
