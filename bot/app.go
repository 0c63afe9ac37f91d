// Package bot implements the VK post report bot: a menu → URL input →
// progress → report conversation driven by a per-user state machine.
package bot

import (
	"context"
	"strconv"
	"time"

	"github.com/avbelov/vkreportbot/analysis"
	coreconfig "github.com/avbelov/vkreportbot/core/config"
	tg "github.com/avbelov/vkreportbot/core/telegram"
	"github.com/avbelov/vkreportbot/core/telegram/commands"
	"github.com/avbelov/vkreportbot/core/telegram/router"
	"github.com/avbelov/vkreportbot/core/telegram/state"

	tele "gopkg.in/telebot.v4"
)

// api is the narrow slice of *tele.Bot used outside handler contexts: the
// processing task and the error notifier address messages by id, not through
// an update context.
type api interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
	Edit(msg tele.Editable, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// storedMessage builds an Editable for a message the bot sent earlier.
func storedMessage(chatID int64, messageID int) tele.Editable {
	return &tele.StoredMessage{MessageID: strconv.Itoa(messageID), ChatID: chatID}
}

// App wires the conversation flow together.
type App struct {
	cfg      *coreconfig.Config
	sessions state.Manager
	reporter analysis.Reporter

	api       api
	notifier  *Notifier
	processor *Processor
}

// New constructs the application with an in-memory session store and the
// simulated reporter. The Telegram transport is bound later, in OnStart.
func New(cfg *coreconfig.Config) *App {
	a := &App{
		cfg:      cfg,
		sessions: state.NewMemoryManager(),
		reporter: analysis.SimulatedReporter{},
	}
	a.sessions.RegisterHandler(state.StateWaitingURL, a.receiveURL)
	return a
}

// bind attaches the transport-dependent pieces once the bot client exists.
func (a *App) bind(b api) {
	a.api = b
	a.notifier = NewNotifier(b)

	stepDelay := 1100 * time.Millisecond
	finalDelay := time.Second
	if a.cfg != nil {
		stepDelay = time.Duration(a.cfg.Processing.StepDelayMS) * time.Millisecond
		finalDelay = time.Duration(a.cfg.Processing.FinalDelayMS) * time.Millisecond
	}
	a.processor = NewProcessor(b, a.sessions, a.reporter, a.notifier, stepDelay, finalDelay)
}

// TelegramRunOptions builds the registry, routes, and middleware chain.
func (a *App) TelegramRunOptions() (tg.RunOptions, error) {
	reg := tg.NewRegistry()

	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.handleStart,
		Description: "Open the main menu",
	})

	if err := reg.RegisterCallback(actionProcess, a.handleProcess); err != nil {
		return tg.RunOptions{}, err
	}
	if err := reg.RegisterCallback(actionDescription, a.handleDescription); err != nil {
		return tg.RunOptions{}, err
	}
	if err := reg.RegisterCallback(actionBackToMain, a.handleBackToMain); err != nil {
		return tg.RunOptions{}, err
	}
	if err := reg.RegisterCallback(actionCancel, a.handleCancel); err != nil {
		return tg.RunOptions{}, err
	}

	reg.SetTextFallback(a.handleUnknownText)
	reg.SetCallbackNotFound(a.handleUnknownCallback)

	routes := []tg.Route{
		router.CallbackRoute(reg, router.CallbackOptions{}),
		router.TextRoute(a.sessions, reg, router.TextOptions{}),
	}
	routes = append(routes, router.CommandRoutes(reg)...)

	return tg.RunOptions{
		Config:      a.cfg,
		Registry:    reg,
		Middlewares: tg.DefaultMiddlewares(a.cfg, nil),
		Routes:      routes,
		OnStart: func(ctx context.Context, rt tg.Runtime) error {
			a.bind(rt.Bot)
			return nil
		},
	}, nil
}
