package bot

import (
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avbelov/vkreportbot/analysis"
	"github.com/avbelov/vkreportbot/core/telegram/state"

	tele "gopkg.in/telebot.v4"
)

const testURL = "https://vk.com/wall-123456789_1234"

func msgGone() error {
	return &tele.Error{Code: 400, Description: "Bad Request: message to edit not found"}
}

func newTestProcessor(f *fakeAPI) (*Processor, state.Manager) {
	sessions := state.NewMemoryManager()
	p := NewProcessor(f, sessions, analysis.SimulatedReporter{}, NewNotifier(f), time.Millisecond, time.Millisecond)
	return p, sessions
}

func TestRunEditsEveryStepAndDeliversReport(t *testing.T) {
	f := &fakeAPI{}
	p, sessions := newTestProcessor(f)
	sessions.Put(9, state.Session{State: state.StateProcessing, URL: testURL, ChatID: 5, ProgressMessageID: 42})

	p.Run(5, 42, 9, testURL)

	steps := analysis.SimulatedReporter{}.Steps()
	edits := f.editCalls()
	require.Len(t, edits, len(steps)+1)

	for i, step := range steps {
		text := edits[i].text()
		assert.Contains(t, text, step.Label)
		assert.Contains(t, text, "%")
	}
	assert.Contains(t, edits[len(steps)-1].text(), "100%")

	target, ok := edits[0].target.(*tele.StoredMessage)
	require.True(t, ok)
	assert.Equal(t, int64(5), target.ChatID)
	assert.Equal(t, "42", target.MessageID)

	final := edits[len(edits)-1]
	assert.Contains(t, final.text(), "Criteria report")
	assert.Contains(t, final.text(), "Criterion 7")
	opts := final.sendOptions()
	require.NotNil(t, opts)
	assert.Equal(t, tele.ModeMarkdown, opts.ParseMode)
	assert.NotNil(t, opts.ReplyMarkup)

	assert.Equal(t, state.StateIdle, sessions.GetState(9))
	assert.False(t, sessions.InProgress(9))
	assert.Empty(t, f.sendCalls())
}

func TestRunProgressIsMonotonic(t *testing.T) {
	f := &fakeAPI{}
	p, _ := newTestProcessor(f)

	p.Run(5, 42, 9, testURL)

	prev := -1
	edits := f.editCalls()
	for _, e := range edits[:len(edits)-1] {
		text := e.text()
		idx := strings.LastIndex(text, "\n")
		require.Greater(t, idx, 0)
		pct, err := parsePercent(text[idx+1:])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, pct, prev)
		prev = pct
	}
	assert.Equal(t, 100, prev)
}

// parsePercent pulls the trailing "N%" off a rendered progress line.
func parsePercent(line string) (int, error) {
	line = strings.TrimSuffix(strings.TrimSpace(line), "%")
	i := strings.LastIndex(line, " ")
	if i < 0 {
		return 0, errors.New("no percent field")
	}
	return strconv.Atoi(line[i+1:])
}

func TestRunStopsQuietlyWhenMessageDeleted(t *testing.T) {
	f := &fakeAPI{editErrs: []error{nil, nil, nil, msgGone()}}
	p, sessions := newTestProcessor(f)
	sessions.Put(9, state.Session{State: state.StateProcessing, URL: testURL, ChatID: 5, ProgressMessageID: 42})

	p.Run(5, 42, 9, testURL)

	assert.Len(t, f.editCalls(), 4)
	assert.Empty(t, f.sendCalls(), "a deleted message must not trigger error notifications")
	assert.Equal(t, state.StateIdle, sessions.GetState(9))
}

func TestRunNotifiesOnTransportError(t *testing.T) {
	f := &fakeAPI{editErrs: []error{errors.New("rpc broke")}}
	p, sessions := newTestProcessor(f)
	sessions.Put(9, state.Session{State: state.StateProcessing, URL: testURL, ChatID: 5, ProgressMessageID: 42})

	p.Run(5, 42, 9, testURL)

	edits := f.editCalls()
	require.Len(t, edits, 2)
	assert.Equal(t, textErrorGeneric, edits[1].text())
	assert.Equal(t, state.StateIdle, sessions.GetState(9))
}

func TestRunSwallowsNotModified(t *testing.T) {
	f := &fakeAPI{editErrs: []error{nil, nil, tele.ErrSameMessageContent}}
	p, _ := newTestProcessor(f)

	p.Run(5, 42, 9, testURL)

	steps := analysis.SimulatedReporter{}.Steps()
	edits := f.editCalls()
	require.Len(t, edits, len(steps)+1)
	assert.Contains(t, edits[len(edits)-1].text(), "Criteria report")
}

func TestRunFinalEditGoneFallsBackToNotifier(t *testing.T) {
	steps := len(analysis.SimulatedReporter{}.Steps())
	errs := make([]error, steps+1)
	errs[steps] = msgGone()

	f := &fakeAPI{editErrs: errs}
	p, sessions := newTestProcessor(f)

	p.Run(5, 42, 9, testURL)

	// The notifier retries the edit; the message is gone only per scripted
	// call, so its own edit succeeds and no send happens.
	edits := f.editCalls()
	require.Len(t, edits, steps+2)
	assert.Equal(t, textErrorGeneric, edits[len(edits)-1].text())
	assert.Equal(t, state.StateIdle, sessions.GetState(9))
}
