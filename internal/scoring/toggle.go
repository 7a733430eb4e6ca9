package scoring

// Behavior describes how toggling one option mutates an item's selected-set.
// The zero value is plain multi-select.
type Behavior struct {
	// SingleSelect makes the whole item radio-like: checking an option
	// replaces the set, unchecking clears it.
	SingleSelect bool
	// VetoID is an option that always wins: whenever it is present after an
	// add, the set collapses to just the veto.
	VetoID string
	// Implies maps a composite option to the prerequisite ids that checking
	// it must also select.
	Implies map[string][]string
}

// Toggle applies one check/uncheck to the selected ids and returns the new
// selection, preserving insertion order. It never mutates its input.
func Toggle(b Behavior, selected []string, optionID string, checked bool) []string {
	if b.SingleSelect {
		if checked {
			return []string{optionID}
		}
		return []string{}
	}

	next := make([]string, 0, len(selected)+1)
	for _, id := range selected {
		if id != optionID {
			next = append(next, id)
		}
	}
	if checked {
		next = append(next, optionID)
		for _, pre := range b.Implies[optionID] {
			if !contains(next, pre) {
				next = append(next, pre)
			}
		}
	}

	if b.VetoID != "" && contains(next, b.VetoID) {
		return []string{b.VetoID}
	}
	return next
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
