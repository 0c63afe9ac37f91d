package bot

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avbelov/vkreportbot/analysis"
)

func TestBuildReportListsEveryCriterion(t *testing.T) {
	crits := analysis.SimulatedReporter{}.Report(testURL)
	text := buildReport(crits)

	assert.True(t, strings.HasPrefix(text, reportHeader))
	for _, c := range crits {
		assert.Contains(t, text, "*Criterion "+strconv.Itoa(c.ID)+"*")
	}
}

func TestBuildReportEscapesStatuses(t *testing.T) {
	text := buildReport([]analysis.Criterion{{ID: 1, Status: "has_underscore *and stars*"}})

	assert.Contains(t, text, `has\_underscore \*and stars\*`)
	assert.NotContains(t, text, "has_underscore *and")
}

func TestMenusCarryDistinctActions(t *testing.T) {
	menu := mainMenu()
	require.Len(t, menu.InlineKeyboard, 1)
	require.Len(t, menu.InlineKeyboard[0], 2)
	assert.NotEqual(t, menu.InlineKeyboard[0][0].Unique, menu.InlineKeyboard[0][1].Unique)

	cancel := cancelMarkup()
	require.Len(t, cancel.InlineKeyboard, 1)
	require.Len(t, cancel.InlineKeyboard[0], 1)
}
