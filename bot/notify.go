package bot

import (
	"log/slog"

	"github.com/avbelov/vkreportbot/core/logger"
	"github.com/avbelov/vkreportbot/core/telegram/apierr"

	tele "gopkg.in/telebot.v4"
)

// Notifier delivers error messages to the user on a best-effort basis. It
// degrades through a fixed cascade and never fails itself: edit the known
// message, send a fresh one, send a plain-text one, give up.
type Notifier struct {
	api api
}

func NewNotifier(b api) *Notifier {
	return &Notifier{api: b}
}

// NotifyError tells the user something went wrong. messageID is the progress
// message to repurpose, or 0 when there is no message to edit.
func (n *Notifier) NotifyError(chatID int64, messageID int) {
	ctx := logger.Background()
	opts := &tele.SendOptions{
		ParseMode:   tele.ModeMarkdown,
		ReplyMarkup: mainMenu(),
	}

	if messageID != 0 {
		_, err := n.api.Edit(storedMessage(chatID, messageID), textErrorGeneric, opts)
		if apierr.Swallow(err) == nil {
			return
		}
		logger.Warn(ctx, "notify", "notify.edit_failed",
			slog.Int64("chat_id", chatID),
			slog.Int("message_id", messageID),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
	}

	_, err := n.api.Send(tele.ChatID(chatID), textErrorGeneric, opts)
	if err == nil {
		return
	}
	logger.Warn(ctx, "notify", "notify.send_failed",
		slog.Int64("chat_id", chatID),
		slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
	)

	if _, err := n.api.Send(tele.ChatID(chatID), textErrorPlain); err != nil {
		logger.Warn(ctx, "notify", "notify.gave_up",
			slog.Int64("chat_id", chatID),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
	}
}
