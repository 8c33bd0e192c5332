package harness

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot renders the outcomes of a result, one line per step, for golden
// comparison. Values use 17 significant digits so any bit change shows up.
func Snapshot(scenarioName string, result *Result) []byte {
	var b strings.Builder
	b.WriteString("scenario: ")
	b.WriteString(scenarioName)
	b.WriteByte('\n')
	for _, o := range result.Outcomes {
		b.WriteString(o.String())
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// RunWithGolden executes a scenario and compares its outcomes against a
// golden file stored in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if the scenario cannot run. Test failure (via goldie) occurs
// if the outcomes don't match the golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	AssertGolden(t, scenario.Name, result)
	return result, nil
}

// AssertGolden compares an existing result against a golden file without
// re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, Snapshot(scenarioName, result))
}
