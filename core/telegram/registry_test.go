package telegram

import (
	"testing"

	"github.com/avbelov/vkreportbot/core/telegram/commands"

	tele "gopkg.in/telebot.v4"
)

func noopHandler(c tele.Context) error { return nil }

func TestRegisterCommand(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("/start", commands.Command{Handler: noopHandler, Description: "Main menu"})

	if _, _, ok := reg.LookupCommand("/start"); !ok {
		t.Fatal("registered command not found")
	}
	if _, _, ok := reg.LookupCommand("start"); !ok {
		t.Fatal("lookup without slash must resolve")
	}

	// Invalid registrations are dropped.
	reg.RegisterCommand("start", commands.Command{Handler: noopHandler, Description: "no slash"})
	reg.RegisterCommand("/nohandler", commands.Command{Description: "x"})
	if len(reg.Commands()) != 1 {
		t.Fatalf("commands = %d, want 1", len(reg.Commands()))
	}
}

func TestLookupCommandAlias(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("/start", commands.Command{
		Handler:     noopHandler,
		Description: "Main menu",
		Aliases:     []string{"menu"},
	})

	key, _, ok := reg.LookupCommand("menu")
	if !ok || key != "/start" {
		t.Fatalf("alias lookup = (%q, %v)", key, ok)
	}
}

func TestListCommandsHidesHidden(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("/start", commands.Command{Handler: noopHandler, Description: "Main menu"})
	reg.RegisterCommand("/debug", commands.Command{Handler: noopHandler, Description: "Debug", Hidden: true})

	visible := reg.ListCommands(true)
	if len(visible) != 1 || visible[0].Text != "/start" {
		t.Fatalf("visible = %+v", visible)
	}
	if all := reg.ListCommands(false); len(all) != 2 {
		t.Fatalf("all = %d, want 2", len(all))
	}
}

func TestRegisterCallback(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RegisterCallback("process", noopHandler); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.RegisterCallback("process", noopHandler); err == nil {
		t.Fatal("duplicate registration must fail")
	}
	if err := reg.RegisterCallback("", noopHandler); err == nil {
		t.Fatal("empty key must fail")
	}

	if _, ok := reg.GetCallback("process"); !ok {
		t.Fatal("callback not found")
	}
	if keys := reg.ListCallbacks(); len(keys) != 1 || keys[0] != "process" {
		t.Fatalf("keys = %v", keys)
	}
}
