package analysis

import (
	"fmt"
	"strings"
)

// BarWidth is the default gauge width in glyphs.
const BarWidth = 10

const (
	barFull  = "█"
	barEmpty = "░"
)

// RenderBar renders percent as a fixed-width textual gauge followed by the
// numeric percentage, e.g. "█████░░░░░ 50%". Deterministic for any percent
// in [0, 100].
func RenderBar(percent, width int) string {
	if width <= 0 {
		width = BarWidth
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := width * percent / 100
	return fmt.Sprintf("%s%s %d%%",
		strings.Repeat(barFull, filled),
		strings.Repeat(barEmpty, width-filled),
		percent,
	)
}
