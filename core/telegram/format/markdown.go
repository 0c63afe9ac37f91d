// Package format holds text helpers for Telegram message rendering.
package format

import "strings"

var mdV1Replacer = strings.NewReplacer(
	`\`, `\\`,
	"_", `\_`,
	"*", `\*`,
	"[", `\[`,
	"`", "\\`",
)

// EscapeMarkdown escapes characters with special meaning in Telegram's
// legacy Markdown mode so interpolated values cannot break surrounding
// emphasis markers.
func EscapeMarkdown(text string) string {
	return mdV1Replacer.Replace(text)
}
