package bot

import (
	"log/slog"
	"strings"

	"github.com/avbelov/vkreportbot/analysis"
	"github.com/avbelov/vkreportbot/core/logger"
	"github.com/avbelov/vkreportbot/core/telegram/apierr"
	tghelpers "github.com/avbelov/vkreportbot/core/telegram/helpers"
	"github.com/avbelov/vkreportbot/core/telegram/state"

	tele "gopkg.in/telebot.v4"
)

// handleStart resets the conversation and shows the main menu.
func (a *App) handleStart(c tele.Context) error {
	a.sessions.Clear(c.Sender().ID)
	return tghelpers.SendMD(c, textWelcome, mainMenu())
}

// handleProcess switches the user into URL intake mode.
func (a *App) handleProcess(c tele.Context) error {
	a.sessions.SetState(c.Sender().ID, state.StateWaitingURL)
	return apierr.Swallow(tghelpers.EditMD(c, textPromptURL, cancelMarkup()))
}

// handleDescription shows static help. The session state is untouched.
func (a *App) handleDescription(c tele.Context) error {
	return apierr.Swallow(tghelpers.EditMD(c, textDescription, backMarkup()))
}

// handleBackToMain clears the session and re-renders the welcome menu.
func (a *App) handleBackToMain(c tele.Context) error {
	a.sessions.Clear(c.Sender().ID)
	return apierr.Swallow(tghelpers.EditMD(c, textWelcome, mainMenu()))
}

// handleCancel clears the session and confirms the cancellation. The text
// differs from the welcome message on purpose.
//
// Cancelling does not signal an in-flight processing run: the task keeps
// editing its message and clears the session again when it finishes.
func (a *App) handleCancel(c tele.Context) error {
	a.sessions.Clear(c.Sender().ID)
	return apierr.Swallow(tghelpers.EditMD(c, textCancelled, mainMenu()))
}

// handleUnknownText answers free text from users outside any flow by
// re-offering the menu.
func (a *App) handleUnknownText(c tele.Context) error {
	return tghelpers.SendMD(c, textUnknown, mainMenu())
}

// handleUnknownCallback answers taps on buttons whose action is no longer
// registered, e.g. from messages predating a restart.
func (a *App) handleUnknownCallback(c tele.Context) error {
	return c.Respond(&tele.CallbackResponse{Text: textStaleButton})
}

// receiveURL consumes a text message while the user is in URL intake mode.
// Unexpected failures are reported to the user via the notifier and never
// propagate past this handler.
func (a *App) receiveURL(c tele.Context) error {
	userID := c.Sender().ID
	chatID := c.Chat().ID

	if err := a.acceptURL(c, userID, chatID); err != nil {
		ctx := tghelpers.BuildContext(c)
		logger.Error(ctx, "bot", "url.intake_failed",
			slog.Int64("user_id", userID),
			slog.Int64("chat_id", chatID),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		a.notifier.NotifyError(chatID, 0)
		a.sessions.Clear(userID)
	}
	return nil
}

func (a *App) acceptURL(c tele.Context, userID, chatID int64) error {
	url := strings.TrimSpace(c.Text())

	if !analysis.IsPostURL(url) {
		return tghelpers.SendMD(c, textInvalidURL, cancelMarkup())
	}

	msg, err := a.api.Send(tele.ChatID(chatID), textStarting)
	if err != nil {
		return err
	}

	a.sessions.Put(userID, state.Session{
		State:             state.StateProcessing,
		URL:               url,
		ChatID:            chatID,
		ProgressMessageID: msg.ID,
	})

	// Fire and forget: the chat stays responsive while the run progresses.
	go a.processor.Run(chatID, msg.ID, userID, url)
	return nil
}
