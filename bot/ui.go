package bot

import (
	"fmt"
	"strings"

	"github.com/avbelov/vkreportbot/analysis"
	"github.com/avbelov/vkreportbot/core/telegram/format"
	"github.com/avbelov/vkreportbot/core/telegram/keyboard"

	tele "gopkg.in/telebot.v4"
)

// Callback action keys. Buttons carry these as the unique part of their data.
const (
	actionProcess     = "process"
	actionDescription = "description"
	actionBackToMain  = "back_to_main"
	actionCancel      = "cancel_processing"
)

const (
	textWelcome = "Welcome to the VK post processing bot with campaign reports.\nPick an option below:"

	textCancelled = "Operation cancelled.\nPick an option below:"

	textPromptURL = "URL post *processing* mode selected.\nSend a link to a VK post (format: `https://vk.com/wall-123456789_1234`)."

	textInvalidURL = "That link doesn't look right. Make sure it is a VK post like:\n`https://vk.com/wall-123456789_1234`"

	textDescription = "This bot processes incoming URLs of posts in the VK social network 📲\n\n" +
		"To analyse a post — press the \"Process\" button and send a link 🔗\n\n" +
		"While working, the bot shows a progress bar 📊,\nand once it reaches 100% — " +
		"it sends a detailed report by criteria ✅"

	textStarting = "Starting processing..."

	textUnknown = "I can't match that to anything.\nPick an option below:"

	textStaleButton = "That button is no longer active"

	textErrorGeneric = "⚠️ An unexpected error occurred while handling your request.\n" +
		"The developer is being notified.\n" +
		"Please return to the main menu and try again."

	textErrorPlain = "⚠️ Something went wrong. Please return to the main menu."

	reportHeader = "✅ Processing complete!\n\n📋 *Criteria report:*"
)

func mainMenu() *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows([]keyboard.InlineBtn{
		{Text: "Process", Unique: actionProcess},
		{Text: "Description", Unique: actionDescription},
	})
}

func cancelMarkup() *tele.ReplyMarkup {
	return keyboard.SingleButtonMarkup("← Cancel", actionCancel)
}

func backMarkup() *tele.ReplyMarkup {
	return keyboard.SingleButtonMarkup("← Back", actionBackToMain)
}

// buildReport renders criterion evaluations as Markdown. Statuses come from a
// pluggable Reporter, so they are escaped before interpolation.
func buildReport(criteria []analysis.Criterion) string {
	lines := make([]string, 0, len(criteria)+1)
	lines = append(lines, reportHeader)
	for _, crit := range criteria {
		lines = append(lines, fmt.Sprintf("🔹 *Criterion %d*: %s", crit.ID, format.EscapeMarkdown(crit.Status)))
	}
	return strings.Join(lines, "\n")
}
