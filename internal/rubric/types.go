// Package rubric holds the declarative form catalog of the evaluation rubric:
// one Form per category/dimension, each a fixed list of Items with their
// selectable Options, selection behavior and scoring rule. The data tables are
// transcribed from the official rubric; option labels are display-only and
// every rule is keyed on the stable option ids.
package rubric

import (
	"fmt"

	"github.com/formativa/rubrica/internal/scoring"
)

// Option is one selectable statement under an item. Children carry the one
// observed level of sub-option nesting; selecting a child selects its own id.
type Option struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Children []Option `json:"children,omitempty"`
}

// Item is one rubric criterion within a form.
type Item struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Options []Option `json:"options"`

	// PercentOption names the option rendered as a numeric percent input
	// instead of a checkbox (the item-1-percent variant). Empty otherwise.
	PercentOption string `json:"percentOption,omitempty"`

	Behavior scoring.Behavior `json:"-"`
	Rule     scoring.Rule     `json:"-"`
}

// OptionIDs returns the item's option ids, children flattened in.
func (it Item) OptionIDs() []string {
	ids := make([]string, 0, len(it.Options))
	for _, o := range it.Options {
		ids = append(ids, o.ID)
		for _, c := range o.Children {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// HasOption reports whether id names an option (or sub-option) of the item.
func (it Item) HasOption(id string) bool {
	for _, o := range it.OptionIDs() {
		if o == id {
			return true
		}
	}
	return false
}

// Form is one category/dimension: the unit of aggregation and persistence.
type Form struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Item looks up an item by id.
func (f Form) Item(id string) (Item, bool) {
	for _, it := range f.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// ItemOrder returns the item ids in display order.
func (f Form) ItemOrder() []string {
	ids := make([]string, len(f.Items))
	for i, it := range f.Items {
		ids[i] = it.ID
	}
	return ids
}

// Forms returns all form descriptors in display order.
func Forms() []Form {
	return []Form{formD1M1(), formD1M2(), formD2M1(), formD2M2(), formEF1(), formEF2()}
}

// Get returns the form descriptor for a storage key.
func Get(key string) (Form, error) {
	for _, f := range Forms() {
		if f.Key == key {
			return f, nil
		}
	}
	return Form{}, fmt.Errorf("unknown form %q", key)
}

// rule table shorthand used by the form files
var (
	first        = scoring.First
	when         = scoring.When
	perCount     = scoring.PerCount
	percent      = scoring.Percent
	meanOf       = scoring.MeanOf
	has          = scoring.Has
	hasAll       = scoring.HasAll
	anyOf        = scoring.AnyOf
	all          = scoring.All
	countEq      = scoring.CountEq
	countAtLeast = scoring.CountAtLeast
	countAtMost  = scoring.CountAtMost
	countBelow   = scoring.CountBelow
)

func opt(id, label string) Option { return Option{ID: id, Label: label} }

func cut(min, score float64) scoring.PercentCut {
	return scoring.PercentCut{Min: min, Score: score}
}
