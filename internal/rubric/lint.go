package rubric

import (
	"fmt"

	"github.com/formativa/rubrica/internal/scoring"
)

// Warning flags a scoring table irregularity found by Lint.
type Warning struct {
	Form    string `json:"form"`
	Item    string `json:"item"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s/%s: %s", w.Form, w.Item, w.Message)
}

const lintMaxOptions = 16

// Lint enumerates every selection reachable through the item's checkbox
// behavior and reports rule-table gaps: selection counts whose best possible
// score drops below a smaller count, and items whose top score can never be
// reached. The published tables contain such gaps, which are kept as data, so
// Lint is the place they surface.
func Lint(f Form) []Warning {
	var warnings []Warning
	for _, it := range f.Items {
		if it.PercentOption != "" {
			continue
		}
		ids := it.OptionIDs()
		if len(ids) > lintMaxOptions {
			warnings = append(warnings, Warning{
				Form: f.Key, Item: it.ID,
				Message: fmt.Sprintf("%d options, too many to enumerate", len(ids)),
			})
			continue
		}
		warnings = append(warnings, lintItem(f.Key, it, ids)...)
	}
	return warnings
}

func lintItem(formKey string, it Item, ids []string) []Warning {
	n := len(ids)
	best := make([]float64, n+1)
	seen := make([]bool, n+1)

	for mask := 0; mask < 1<<n; mask++ {
		sel := selectionFromMask(ids, mask)
		if !reachable(it.Behavior, sel) {
			continue
		}
		score := it.Rule.Score(sel, nil)
		count := sel.Count()
		if !seen[count] || score > best[count] {
			best[count] = score
			seen[count] = true
		}
	}

	var warnings []Warning
	maxScore := 0.0
	prev := 0.0
	inDrop := false
	for count := 0; count <= n; count++ {
		if !seen[count] {
			continue
		}
		if best[count] < prev {
			if !inDrop {
				warnings = append(warnings, Warning{
					Form: formKey, Item: it.ID,
					Message: fmt.Sprintf("best score drops from %g to %g at %d selections", prev, best[count], count),
				})
			}
			inDrop = true
		} else {
			inDrop = false
		}
		if best[count] > prev {
			prev = best[count]
		}
		if best[count] > maxScore {
			maxScore = best[count]
		}
	}
	if maxScore < 1 {
		warnings = append(warnings, Warning{
			Form: formKey, Item: it.ID,
			Message: fmt.Sprintf("top score 1 unreachable, best possible is %g", maxScore),
		})
	}
	return warnings
}

func selectionFromMask(ids []string, mask int) scoring.Selection {
	sel := make(scoring.Selection, len(ids))
	for i, id := range ids {
		if mask&(1<<i) != 0 {
			sel[id] = struct{}{}
		}
	}
	return sel
}

// reachable reports whether the checkbox behavior can ever produce sel. Veto
// selections are excluded entirely: the veto singleton scores on its own
// terms and would otherwise read as a ladder gap.
func reachable(b scoring.Behavior, sel scoring.Selection) bool {
	if b.VetoID != "" && sel.Has(b.VetoID) {
		return false
	}
	if b.SingleSelect && sel.Count() > 1 {
		return false
	}
	for id, implied := range b.Implies {
		if !sel.Has(id) {
			continue
		}
		for _, dep := range implied {
			if !sel.Has(dep) {
				return false
			}
		}
	}
	return true
}
