package scoring

import "math"

// Selection is the set of option ids currently checked for one item.
type Selection map[string]struct{}

func NewSelection(ids []string) Selection {
	s := make(Selection, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s Selection) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s Selection) Count() int { return len(s) }

// Rule maps a selection (plus an optional percent input) to a score in [0,1].
// Rules are total: every subset of option ids yields a value, the empty set
// scores 0 unless a clause says otherwise.
type Rule interface {
	Score(sel Selection, percent *float64) float64
}

// Cond is a predicate over a selection.
type Cond interface {
	Match(sel Selection) bool
}

type countEq int
type countAtLeast int
type countAtMost int
type countBelow int

func (c countEq) Match(s Selection) bool      { return s.Count() == int(c) }
func (c countAtLeast) Match(s Selection) bool { return s.Count() >= int(c) }
func (c countAtMost) Match(s Selection) bool  { return s.Count() <= int(c) }
func (c countBelow) Match(s Selection) bool   { return s.Count() < int(c) }

// CountEq matches when exactly n options are selected.
func CountEq(n int) Cond { return countEq(n) }

// CountAtLeast matches when n or more options are selected.
func CountAtLeast(n int) Cond { return countAtLeast(n) }

// CountAtMost matches when n or fewer options are selected.
func CountAtMost(n int) Cond { return countAtMost(n) }

// CountBelow matches when fewer than n options are selected. The source
// rubric mixes < and <= ladders per item, so both forms exist.
func CountBelow(n int) Cond { return countBelow(n) }

type hasCond string

func (c hasCond) Match(s Selection) bool { return s.Has(string(c)) }

// Has matches when the given option id is selected.
func Has(id string) Cond { return hasCond(id) }

type hasAllCond []string

func (c hasAllCond) Match(s Selection) bool {
	for _, id := range c {
		if !s.Has(id) {
			return false
		}
	}
	return true
}

// HasAll matches when every given option id is selected.
func HasAll(ids ...string) Cond { return hasAllCond(ids) }

type anyOfCond []string

func (c anyOfCond) Match(s Selection) bool {
	for _, id := range c {
		if s.Has(id) {
			return true
		}
	}
	return false
}

// AnyOf matches when at least one of the given option ids is selected.
func AnyOf(ids ...string) Cond { return anyOfCond(ids) }

type allCond []Cond

func (c allCond) Match(s Selection) bool {
	for _, cc := range c {
		if !cc.Match(s) {
			return false
		}
	}
	return true
}

// All matches when every sub-condition matches.
func All(conds ...Cond) Cond { return allCond(conds) }

// Clause binds a condition to an outcome. In a First rule the clauses are
// tried in order and the first match decides the item score.
type Clause struct {
	cond     Cond
	score    float64
	perCount float64
	counted  bool
}

// When scores a fixed value if cond matches.
func When(cond Cond, score float64) Clause {
	return Clause{cond: cond, score: score}
}

// PerCount scores the selection count times f if cond matches.
func PerCount(cond Cond, f float64) Clause {
	return Clause{cond: cond, perCount: f, counted: true}
}

type firstRule []Clause

// First builds a rule from ordered clauses; the first clause whose condition
// matches wins, no match scores 0. The clause order is part of the rubric
// contract and must mirror the source tables exactly.
func First(clauses ...Clause) Rule { return firstRule(clauses) }

func (r firstRule) Score(sel Selection, _ *float64) float64 {
	for _, c := range r {
		if c.cond.Match(sel) {
			if c.counted {
				return float64(sel.Count()) * c.perCount
			}
			return c.score
		}
	}
	return 0
}

// PercentCut is one threshold of a percent-input rule.
type PercentCut struct {
	Min   float64
	Score float64
}

type percentRule []PercentCut

// Percent builds a rule scored from the numeric percent override instead of
// the checkbox selection. Cuts are tried in order; an absent or non-finite
// value scores 0.
func Percent(cuts ...PercentCut) Rule { return percentRule(cuts) }

func (r percentRule) Score(_ Selection, percent *float64) float64 {
	if percent == nil {
		return 0
	}
	v := *percent
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	for _, c := range r {
		if v >= c.Min {
			return c.Score
		}
	}
	return 0
}

type meanRule []Rule

// MeanOf builds a rule whose score is the arithmetic mean of its sub-rules,
// each evaluated over the same selection (sub-rules address disjoint option
// id subsets). Used by the composite items of the advanced form variant.
func MeanOf(rules ...Rule) Rule { return meanRule(rules) }

func (r meanRule) Score(sel Selection, percent *float64) float64 {
	if len(r) == 0 {
		return 0
	}
	sum := 0.0
	for _, sub := range r {
		sum += sub.Score(sel, percent)
	}
	return sum / float64(len(r))
}
