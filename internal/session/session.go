// Package session persists the in-progress answers of one rubric form: the
// selected option ids per item, the excluded item set and the optional percent
// override. The wire layout keeps the historical flat shape, item ids as
// top-level keys next to excludeItems and item1Percent, so saved sessions from
// the previous frontend keep loading.
package session

import (
	"encoding/json"
	"math"
	"strconv"
)

// FormSession is the mutable answer state of one form.
type FormSession struct {
	// Selections maps item id to the selected option ids, insertion order
	// preserved.
	Selections map[string][]string
	// Excluded lists the item ids removed from aggregation.
	Excluded []string
	// Percent is the numeric override for the percent-scored item, nil when
	// not entered.
	Percent *float64
}

// Empty returns a session with no answers.
func Empty() FormSession {
	return FormSession{Selections: map[string][]string{}}
}

// Clone returns a deep copy.
func (s FormSession) Clone() FormSession {
	out := FormSession{Selections: make(map[string][]string, len(s.Selections))}
	for k, v := range s.Selections {
		out.Selections[k] = append([]string(nil), v...)
	}
	out.Excluded = append([]string(nil), s.Excluded...)
	if s.Percent != nil {
		p := *s.Percent
		out.Percent = &p
	}
	return out
}

// IsExcluded reports whether item is in the exclusion set.
func (s FormSession) IsExcluded(item string) bool {
	for _, id := range s.Excluded {
		if id == item {
			return true
		}
	}
	return false
}

// SetExcluded adds or removes item from the exclusion set, keeping order.
func (s *FormSession) SetExcluded(item string, excluded bool) {
	if excluded {
		if !s.IsExcluded(item) {
			s.Excluded = append(s.Excluded, item)
		}
		return
	}
	kept := s.Excluded[:0]
	for _, id := range s.Excluded {
		if id != item {
			kept = append(kept, id)
		}
	}
	s.Excluded = kept
}

// MarshalJSON writes the flat layout: one array per item id, excludeItems,
// and item1Percent when set.
func (s FormSession) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(s.Selections)+2)
	for item, sel := range s.Selections {
		if sel == nil {
			sel = []string{}
		}
		out[item] = sel
	}
	if s.Excluded != nil {
		out["excludeItems"] = s.Excluded
	} else {
		out["excludeItems"] = []string{}
	}
	if s.Percent != nil && !math.IsNaN(*s.Percent) && !math.IsInf(*s.Percent, 0) {
		out["item1Percent"] = *s.Percent
	}
	return json.Marshal(out)
}

// UnmarshalJSON is deliberately forgiving: unknown keys and malformed values
// fall back to empty defaults rather than failing the load.
func (s *FormSession) UnmarshalJSON(data []byte) error {
	*s = Empty()
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	for key, val := range raw {
		switch key {
		case "excludeItems":
			s.Excluded = decodeStrings(val)
		case "item1Percent":
			var p float64
			if err := json.Unmarshal(val, &p); err == nil {
				s.Percent = &p
			}
		default:
			s.Selections[key] = decodeStrings(val)
		}
	}
	return nil
}

// decodeStrings reads a JSON array, coercing numbers to their decimal text.
func decodeStrings(raw json.RawMessage) []string {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		var str string
		if err := json.Unmarshal(item, &str); err == nil {
			out = append(out, str)
			continue
		}
		var num float64
		if err := json.Unmarshal(item, &num); err == nil {
			out = append(out, strconv.FormatFloat(num, 'f', -1, 64))
		}
	}
	return out
}
