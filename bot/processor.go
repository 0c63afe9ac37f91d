package bot

import (
	"log/slog"
	"time"

	"github.com/avbelov/vkreportbot/analysis"
	"github.com/avbelov/vkreportbot/core/logger"
	"github.com/avbelov/vkreportbot/core/telegram/apierr"
	"github.com/avbelov/vkreportbot/core/telegram/state"

	tele "gopkg.in/telebot.v4"
)

// Processor executes one processing run per call: a sequence of progress
// edits to a single message followed by the final report. All edits are
// strictly sequential, so two runs never interleave on the same message.
type Processor struct {
	api      api
	sessions state.Manager
	reporter analysis.Reporter
	notifier *Notifier

	stepDelay  time.Duration
	finalDelay time.Duration
}

// NewProcessor wires a processor over the given transport and session store.
func NewProcessor(b api, sessions state.Manager, reporter analysis.Reporter, notifier *Notifier, stepDelay, finalDelay time.Duration) *Processor {
	return &Processor{
		api:        b,
		sessions:   sessions,
		reporter:   reporter,
		notifier:   notifier,
		stepDelay:  stepDelay,
		finalDelay: finalDelay,
	}
}

// Run drives a whole processing run. It is spawned as a goroutine and never
// returns an error: failures end in the safe notifier. The session is
// cleared on every exit path, including a cancel that already cleared it.
func (p *Processor) Run(chatID int64, messageID int, userID int64, url string) {
	ctx := logger.WithUpdateMeta(logger.Background(), 0, userID, chatID)
	defer p.sessions.Clear(userID)
	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "processing", "run.panic",
				slog.Any("err", r),
				slog.Int("message_id", messageID),
			)
			p.notifier.NotifyError(chatID, messageID)
		}
	}()

	logger.Info(ctx, "processing", "run.start",
		slog.Int("message_id", messageID),
		slog.String("url", logger.SanitizeLimit(url, 256)),
	)

	target := storedMessage(chatID, messageID)

	for _, step := range p.reporter.Steps() {
		time.Sleep(p.stepDelay)

		text := step.Label + "\n" + analysis.RenderBar(step.Percent, analysis.BarWidth)
		_, err := p.api.Edit(target, text)

		switch apierr.Classify(err) {
		case apierr.KindOK, apierr.KindNotModified:
		case apierr.KindMessageGone:
			// The user deleted the progress message; stop quietly.
			logger.Info(ctx, "processing", "run.message_gone",
				slog.Int("message_id", messageID),
				slog.Int("percent", step.Percent),
			)
			return
		default:
			logger.Error(ctx, "processing", "run.edit_failed",
				slog.Int("message_id", messageID),
				slog.Int("percent", step.Percent),
				slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
			)
			p.notifier.NotifyError(chatID, messageID)
			return
		}
	}

	time.Sleep(p.finalDelay)

	report := buildReport(p.reporter.Report(url))
	_, err := p.api.Edit(target, report, &tele.SendOptions{
		ParseMode:   tele.ModeMarkdown,
		ReplyMarkup: mainMenu(),
	})
	if err := apierr.Swallow(err); err != nil {
		logger.Error(ctx, "processing", "run.report_failed",
			slog.Int("message_id", messageID),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		p.notifier.NotifyError(chatID, messageID)
		return
	}

	logger.Info(ctx, "processing", "run.done",
		slog.Int("message_id", messageID),
	)
}
