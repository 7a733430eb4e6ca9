package scoring_test

import (
	"reflect"
	"testing"

	"github.com/formativa/rubrica/internal/scoring"
)

func TestToggleMultiSelect(t *testing.T) {
	var b scoring.Behavior
	got := scoring.Toggle(b, nil, "a", true)
	got = scoring.Toggle(b, got, "b", true)
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("add: got %v", got)
	}
	got = scoring.Toggle(b, got, "a", false)
	if !reflect.DeepEqual(got, []string{"b"}) {
		t.Fatalf("remove: got %v", got)
	}
	// Unchecking something not selected is a no-op.
	got = scoring.Toggle(b, got, "z", false)
	if !reflect.DeepEqual(got, []string{"b"}) {
		t.Fatalf("remove absent: got %v", got)
	}
}

func TestTogglePreservesInsertionOrder(t *testing.T) {
	var b scoring.Behavior
	sel := []string{}
	for _, id := range []string{"3", "1", "2"} {
		sel = scoring.Toggle(b, sel, id, true)
	}
	if !reflect.DeepEqual(sel, []string{"3", "1", "2"}) {
		t.Fatalf("got %v", sel)
	}
}

func TestToggleSingleSelect(t *testing.T) {
	b := scoring.Behavior{SingleSelect: true}
	got := scoring.Toggle(b, []string{"a"}, "b", true)
	if !reflect.DeepEqual(got, []string{"b"}) {
		t.Fatalf("replace: got %v", got)
	}
	got = scoring.Toggle(b, got, "b", false)
	if len(got) != 0 {
		t.Fatalf("clear: got %v", got)
	}
}

func TestToggleVetoCollapse(t *testing.T) {
	b := scoring.Behavior{VetoID: "na"}
	got := scoring.Toggle(b, []string{"a", "b"}, "na", true)
	if !reflect.DeepEqual(got, []string{"na"}) {
		t.Fatalf("collapse: got %v", got)
	}
	// Unchecking the veto frees the item again.
	got = scoring.Toggle(b, got, "na", false)
	if len(got) != 0 {
		t.Fatalf("uncheck veto: got %v", got)
	}
	got = scoring.Toggle(b, got, "a", true)
	if !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("after veto: got %v", got)
	}
}

func TestToggleImplies(t *testing.T) {
	b := scoring.Behavior{Implies: map[string][]string{"both": {"oral", "written"}}}
	got := scoring.Toggle(b, []string{"oral"}, "both", true)
	want := map[string]bool{"oral": true, "written": true, "both": true}
	if len(got) != 3 {
		t.Fatalf("got %v", got)
	}
	for _, id := range got {
		if !want[id] {
			t.Fatalf("unexpected id %q in %v", id, got)
		}
	}
	// Unchecking the composite keeps the prerequisites.
	got = scoring.Toggle(b, got, "both", false)
	if len(got) != 2 {
		t.Fatalf("uncheck composite: got %v", got)
	}
}

func TestToggleDoesNotMutateInput(t *testing.T) {
	in := []string{"a", "b"}
	_ = scoring.Toggle(scoring.Behavior{}, in, "b", false)
	if !reflect.DeepEqual(in, []string{"a", "b"}) {
		t.Fatalf("input mutated: %v", in)
	}
}
