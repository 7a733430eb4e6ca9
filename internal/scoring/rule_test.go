package scoring_test

import (
	"math"
	"testing"

	"github.com/formativa/rubrica/internal/scoring"
)

func sel(ids ...string) scoring.Selection { return scoring.NewSelection(ids) }

func TestFirstRuleOrderedClauses(t *testing.T) {
	// Priority presence: earlier clauses win even when later ones also match.
	rule := scoring.First(
		scoring.When(scoring.Has("a"), 1),
		scoring.When(scoring.Has("b"), 0.5),
	)
	cases := []struct {
		name string
		sel  scoring.Selection
		want float64
	}{
		{"first clause wins", sel("a", "b"), 1},
		{"second clause", sel("b"), 0.5},
		{"no match defaults to zero", sel("c"), 0},
		{"empty selection", sel(), 0},
	}
	for _, tc := range cases {
		if got := rule.Score(tc.sel, nil); got != tc.want {
			t.Errorf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestCountLadder(t *testing.T) {
	rule := scoring.First(
		scoring.When(scoring.CountEq(0), 0),
		scoring.When(scoring.CountAtMost(2), 0.25),
		scoring.When(scoring.CountAtMost(3), 0.5),
		scoring.When(scoring.CountBelow(6), 0.75),
		scoring.When(scoring.CountEq(6), 1),
	)
	// Exact boundary checks on both sides of each cut.
	want := map[int]float64{0: 0, 1: 0.25, 2: 0.25, 3: 0.5, 4: 0.75, 5: 0.75, 6: 1}
	ids := []string{"1", "2", "3", "4", "5", "6"}
	for n, expected := range want {
		if got := rule.Score(scoring.NewSelection(ids[:n]), nil); got != expected {
			t.Errorf("count %d: got %v want %v", n, got, expected)
		}
	}
}

func TestConds(t *testing.T) {
	s := sel("a", "b")
	cases := []struct {
		name string
		cond scoring.Cond
		want bool
	}{
		{"has present", scoring.Has("a"), true},
		{"has absent", scoring.Has("z"), false},
		{"hasAll full", scoring.HasAll("a", "b"), true},
		{"hasAll partial", scoring.HasAll("a", "z"), false},
		{"anyOf", scoring.AnyOf("z", "b"), true},
		{"anyOf none", scoring.AnyOf("x", "z"), false},
		{"all combined", scoring.All(scoring.Has("a"), scoring.CountEq(2)), true},
		{"all short-circuit", scoring.All(scoring.Has("a"), scoring.CountEq(3)), false},
		{"countAtLeast", scoring.CountAtLeast(2), true},
		{"countBelow", scoring.CountBelow(2), false},
	}
	for _, tc := range cases {
		if got := tc.cond.Match(s); got != tc.want {
			t.Errorf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestPerCountClause(t *testing.T) {
	rule := scoring.First(
		scoring.When(scoring.Has("veto"), 0),
		scoring.When(scoring.CountEq(3), 1),
		scoring.PerCount(scoring.CountAtLeast(1), 0.33),
	)
	if got := rule.Score(sel("x"), nil); got != 0.33 {
		t.Errorf("one selection: got %v want 0.33", got)
	}
	if got := rule.Score(sel("x", "y"), nil); got != 0.66 {
		t.Errorf("two selections: got %v want 0.66", got)
	}
	if got := rule.Score(sel("x", "y", "z"), nil); got != 1 {
		t.Errorf("three selections: got %v want 1", got)
	}
	if got := rule.Score(sel("veto"), nil); got != 0 {
		t.Errorf("veto: got %v want 0", got)
	}
}

func TestPercentRule(t *testing.T) {
	rule := scoring.Percent(
		scoring.PercentCut{Min: 100, Score: 1},
		scoring.PercentCut{Min: 90, Score: 0.75},
		scoring.PercentCut{Min: 80, Score: 0.5},
	)
	f := func(v float64) *float64 { return &v }
	cases := []struct {
		name    string
		percent *float64
		want    float64
	}{
		{"nil percent", nil, 0},
		{"exactly 100", f(100), 1},
		{"above 100", f(120), 1},
		{"exactly 90", f(90), 0.75},
		{"just below 90", f(89.9), 0.5},
		{"exactly 80", f(80), 0.5},
		{"below all cuts", f(79.9), 0},
		{"zero", f(0), 0},
		{"NaN", f(math.NaN()), 0},
		{"positive infinity", f(math.Inf(1)), 0},
	}
	for _, tc := range cases {
		if got := rule.Score(sel(), tc.percent); got != tc.want {
			t.Errorf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestMeanOf(t *testing.T) {
	rule := scoring.MeanOf(
		scoring.First(scoring.When(scoring.Has("a"), 1)),
		scoring.First(scoring.When(scoring.Has("b"), 0.5)),
	)
	if got := rule.Score(sel("a"), nil); got != 0.5 {
		t.Errorf("one branch: got %v want 0.5", got)
	}
	if got := rule.Score(sel("a", "b"), nil); got != 0.75 {
		t.Errorf("both branches: got %v want 0.75", got)
	}
	if got := rule.Score(sel(), nil); got != 0 {
		t.Errorf("empty: got %v want 0", got)
	}
}
