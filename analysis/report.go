package analysis

// Step is one stage of a processing run shown to the user.
type Step struct {
	Label   string
	Percent int
}

// Criterion is one evaluated dimension in the final report.
type Criterion struct {
	ID     int
	Status string
}

// Reporter produces the progress plan and the final report for a post URL.
// Implementations derive criteria from the post content; the engine only
// renders whatever a Reporter returns.
type Reporter interface {
	// Steps returns the ordered progress stages for a run. Percent values
	// are non-decreasing and end at 100.
	Steps() []Step
	// Report evaluates the post behind url and returns the ordered
	// criterion results.
	Report(url string) []Criterion
}

// SimulatedReporter returns fixed steps and criteria without looking at the
// post. It stands in for real content analysis.
type SimulatedReporter struct{}

var simulatedSteps = []Step{
	{"Reading the post", 25},
	{"Spilling some coffee", 27},
	{"Searching for deeper meaning", 31},
	{"Processing the post", 50},
	{"Long live Saint Petersburg", 52},
	{"Firing the designer", 63},
	{"Scoring the criteria", 75},
	{"Leaving the office", 82},
	{"Arriving in the future", 94},
	{"Preparing the report", 100},
}

var simulatedCriteria = []Criterion{
	{1, "✅ Passed"},
	{2, "❌ Not found"},
	{3, "🟡 Partial"},
	{4, "✅ Passed"},
	{5, "✅ Passed"},
	{6, "✅ Passed"},
	{7, "❌ Failed"},
}

// Steps returns the fixed ten-stage progress plan.
func (SimulatedReporter) Steps() []Step {
	out := make([]Step, len(simulatedSteps))
	copy(out, simulatedSteps)
	return out
}

// Report returns the fixed seven criterion evaluations.
func (SimulatedReporter) Report(url string) []Criterion {
	out := make([]Criterion, len(simulatedCriteria))
	copy(out, simulatedCriteria)
	return out
}
