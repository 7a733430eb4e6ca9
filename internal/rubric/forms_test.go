package rubric_test

import (
	"testing"

	"github.com/formativa/rubrica/internal/rubric"
	"github.com/formativa/rubrica/internal/scoring"
)

func score(t *testing.T, formKey, itemID string, ids ...string) float64 {
	t.Helper()
	form, err := rubric.Get(formKey)
	if err != nil {
		t.Fatalf("get form %s: %v", formKey, err)
	}
	item, ok := form.Item(itemID)
	if !ok {
		t.Fatalf("form %s: no item %s", formKey, itemID)
	}
	return item.Rule.Score(scoring.NewSelection(ids), nil)
}

func TestRegistry(t *testing.T) {
	forms := rubric.Forms()
	if len(forms) != 6 {
		t.Fatalf("got %d forms", len(forms))
	}
	seen := map[string]bool{}
	for _, f := range forms {
		if seen[f.Key] {
			t.Errorf("duplicate form key %s", f.Key)
		}
		seen[f.Key] = true
		for _, it := range f.Items {
			if it.Rule == nil {
				t.Errorf("%s/%s has no rule", f.Key, it.ID)
			}
			ids := map[string]bool{}
			for _, id := range it.OptionIDs() {
				if ids[id] {
					t.Errorf("%s/%s duplicate option id %s", f.Key, it.ID, id)
				}
				ids[id] = true
			}
		}
	}
	if _, err := rubric.Get("nope"); err == nil {
		t.Error("expected error for unknown form key")
	}
}

func TestD1M1Rules(t *testing.T) {
	cases := []struct {
		name string
		item string
		ids  []string
		want float64
	}{
		{"item1 empty", "item1", nil, 0},
		{"item1 one audience", "item1", []string{"1.1"}, 0},
		{"item1 two audiences", "item1", []string{"1.1", "1.2"}, 0.25},
		{"item1 four audiences", "item1", []string{"1.1", "1.2", "1.3", "1.4"}, 0.75},
		{"item1 five audiences", "item1", []string{"1.1", "1.2", "1.3", "1.4", "1.5"}, 1},
		{"item2 presence", "item2", []string{"2.1"}, 1},
		{"item4 both demands", "item4", []string{"4.1", "4.2"}, 1},
		{"item4 alfabetização only", "item4", []string{"4.1"}, 0.75},
		{"item4 recomposição only", "item4", []string{"4.2"}, 0.5},
		{"item5 não se aplica", "item5", []string{"5.7"}, 1},
		{"item5 all six", "item5", []string{"5.1", "5.2", "5.3", "5.4", "5.5", "5.6"}, 1},
		{"item5 interdisciplinar plus número", "item5", []string{"5.1", "5.2"}, 0.5},
		{"item5 three blocks", "item5", []string{"5.1", "5.2", "5.3"}, 0.75},
		{"item5 número alone", "item5", []string{"5.2"}, 0.25},
		{"item6 sábados", "item6", []string{"6.3"}, 0.25},
		{"item6 carga horária", "item6", []string{"6.1"}, 1},
		{"item7 full reach", "item7", []string{"7.1"}, 1},
		{"item7 lowest band", "item7", []string{"7.4"}, 0.25},
	}
	for _, tc := range cases {
		if got := score(t, "d1m1", tc.item, tc.ids...); got != tc.want {
			t.Errorf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestD1M2Rules(t *testing.T) {
	cases := []struct {
		name string
		item string
		ids  []string
		want float64
	}{
		{"item1 semanais", "item1", []string{"1.1"}, 1},
		{"item1 sem previsão", "item1", []string{"1.5"}, 0},
		{"item3 mensais", "item3", []string{"3.3"}, 0.5},
		{"item5 veto", "item5", []string{"5.3"}, 0},
		{"item5 one mode", "item5", []string{"5.1"}, 0.5},
		{"item5 both modes", "item5", []string{"5.1", "5.2"}, 1},
		{"item6 veto", "item6", []string{"6.5"}, 0},
		{"item6 three moments", "item6", []string{"6.1", "6.2", "6.3"}, 0.75},
		{"item7 all three", "item7", []string{"7.1", "7.2", "7.3"}, 1},
		{"item7 híbrida present", "item7", []string{"7.3"}, 0.75},
		{"item7 presencial pair", "item7", []string{"7.1", "7.2"}, 0.5},
		{"item8 one kind", "item8", []string{"8.1"}, 0.75},
		{"item10 both", "item10", []string{"10.1", "10.2"}, 1},
	}
	for _, tc := range cases {
		if got := score(t, "d1m2", tc.item, tc.ids...); got != tc.want {
			t.Errorf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

// Item7 in d1m2 probes presence in 7.3 > 7.2 > 7.1 order below the
// three-of-three clause, so the pair 7.1+7.2 resolves through 7.2.
func TestD1M2Item7PresencePriority(t *testing.T) {
	if got := score(t, "d1m2", "item7", "7.1", "7.3"); got != 0.75 {
		t.Fatalf("7.3 present: got %v want 0.75", got)
	}
	if got := score(t, "d1m2", "item7", "7.1"); got != 0.25 {
		t.Fatalf("7.1 alone: got %v want 0.25", got)
	}
}

func TestD2M1Rules(t *testing.T) {
	all11 := []string{"1.1", "1.2", "1.3", "1.4", "1.5", "1.6", "1.7", "1.8", "1.9", "1.10", "1.11"}
	cases := []struct {
		name string
		item string
		ids  []string
		want float64
	}{
		{"item1 four topics", "item1", all11[:4], 0.25},
		{"item1 seven topics", "item1", all11[:7], 0.5},
		{"item1 ten topics", "item1", all11[:10], 0.75},
		{"item1 all topics", "item1", all11, 1},
		{"item2 veto", "item2", []string{"2.3"}, 0},
		{"item2 both", "item2", []string{"2.1", "2.2"}, 1},
		{"item8 two", "item8", []string{"8.1", "8.2"}, 0.5},
		{"item14 one", "item14", []string{"14.1"}, 0.5},
		{"item14 five", "item14", []string{"14.1", "14.2", "14.3", "14.4", "14.5"}, 0.75},
		{"item16 three", "item16", []string{"16.1", "16.2", "16.3"}, 0.75},
		{"item17 all", "item17", []string{"17.1", "17.2", "17.3"}, 1},
	}
	for _, tc := range cases {
		if got := score(t, "d2m1", tc.item, tc.ids...); got != tc.want {
			t.Errorf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

// The published tables for d2m1 items 5, 6 and 15 have holes; the rules keep
// them so the scores match the official rubric, and Lint reports them.
func TestD2M1TableGapsPreserved(t *testing.T) {
	item5 := []string{"5.1", "5.2", "5.3", "5.4", "5.5", "5.6", "5.7", "5.8", "5.9", "5.10", "5.11"}
	if got := score(t, "d2m1", "item5", item5[:10]...); got != 1 {
		t.Errorf("item5 ten selections: got %v want 1", got)
	}
	if got := score(t, "d2m1", "item5", item5...); got != 0 {
		t.Errorf("item5 all eleven falls through: got %v want 0", got)
	}

	// The 6.1 presence clause shadows the three-of-three clause.
	if got := score(t, "d2m1", "item6", "6.1", "6.2", "6.3"); got != 0.5 {
		t.Errorf("item6 all three with 6.1: got %v want 0.5", got)
	}
	if got := score(t, "d2m1", "item6", "6.2", "6.3"); got != 0.75 {
		t.Errorf("item6 pair: got %v want 0.75", got)
	}

	item15 := []string{"15.1", "15.2", "15.3", "15.4", "15.5", "15.6", "15.7", "15.8", "15.9", "15.10", "15.11", "15.12"}
	if got := score(t, "d2m1", "item15", item15[:8]...); got != 0.75 {
		t.Errorf("item15 eight: got %v want 0.75", got)
	}
	if got := score(t, "d2m1", "item15", item15[:9]...); got != 0 {
		t.Errorf("item15 nine falls through: got %v want 0", got)
	}
	if got := score(t, "d2m1", "item15", item15...); got != 1 {
		t.Errorf("item15 all twelve: got %v want 1", got)
	}
}

func TestD2M2Rules(t *testing.T) {
	cases := []struct {
		name string
		item string
		ids  []string
		want float64
	}{
		{"item1 three", "item1", []string{"1.1", "1.2", "1.3"}, 0.5},
		{"item7 both perspectives", "item7", []string{"7.1", "7.2"}, 1},
		{"item9 semanal", "item9", []string{"9.1"}, 1},
		{"item9 fim de módulo", "item9", []string{"9.5"}, 0.5},
		{"item9 semestral", "item9", []string{"9.4"}, 0.25},
		{"item10 oral only", "item10", []string{"10.1"}, 0.5},
		{"item10 oral and written", "item10", []string{"10.1", "10.2"}, 0.75},
		{"item10 all formats", "item10", []string{"10.1", "10.2", "10.3"}, 1},
		{"item11 nested children count", "item11", []string{"11.1", "11.2", "11.3"}, 0.25},
		{"item12 híbrida", "item12", []string{"12.3"}, 1},
		{"item12 presencial", "item12", []string{"12.1"}, 0.75},
		{"item12 sem previsão", "item12", []string{"12.4"}, 0},
		{"item13 veto", "item13", []string{"13.4"}, 0},
		{"item13 all spheres", "item13", []string{"13.1", "13.2", "13.3"}, 1},
		{"item15 four", "item15", []string{"15.1", "15.2", "15.3", "15.4"}, 0.75},
	}
	for _, tc := range cases {
		if got := score(t, "d2m2", tc.item, tc.ids...); got != tc.want {
			t.Errorf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestD2M2Item13PartialSpheres(t *testing.T) {
	if got := score(t, "d2m2", "item13", "13.1"); got != 0.33 {
		t.Errorf("one sphere: got %v want 0.33", got)
	}
	if got := score(t, "d2m2", "item13", "13.1", "13.2"); got != 0.66 {
		t.Errorf("two spheres: got %v want 0.66", got)
	}
}

func TestEF1Rules(t *testing.T) {
	cases := []struct {
		name string
		item string
		ids  []string
		want float64
	}{
		{"item2 priority option", "item2", []string{"2.1"}, 1},
		{"item2 five without priority", "item2", []string{"2.2", "2.3", "2.4", "2.5", "2.6"}, 0.75},
		{"item2 three", "item2", []string{"2.2", "2.3", "2.4"}, 0.5},
		{"item3 all", "item3", []string{"3.1", "3.2", "3.3", "3.4", "3.5"}, 1},
		{"item4 two", "item4", []string{"4.1", "4.2"}, 0.5},
		{"item5 one", "item5", []string{"5.1"}, 0.5},
	}
	for _, tc := range cases {
		if got := score(t, "ef1", tc.item, tc.ids...); got != tc.want {
			t.Errorf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestEF1PercentItem(t *testing.T) {
	form, err := rubric.Get("ef1")
	if err != nil {
		t.Fatal(err)
	}
	item, _ := form.Item("item1")
	if item.PercentOption != "1.1" {
		t.Fatalf("percent option: got %q", item.PercentOption)
	}
	cases := []struct {
		percent float64
		want    float64
	}{
		{100, 1}, {95, 0.75}, {80, 0.5}, {79, 0}, {0, 0},
	}
	for _, tc := range cases {
		p := tc.percent
		if got := item.Rule.Score(scoring.NewSelection(nil), &p); got != tc.want {
			t.Errorf("percent %v: got %v want %v", tc.percent, got, tc.want)
		}
	}
	// Checkbox state is ignored for the percent item.
	if got := item.Rule.Score(scoring.NewSelection([]string{"1.2", "1.3"}), nil); got != 0 {
		t.Errorf("selections without percent: got %v want 0", got)
	}
}

func TestEF2EqualWeightLadder(t *testing.T) {
	// Every option counts the same: three audiences hit the middle tier,
	// a fourth one steps up.
	if got := score(t, "ef2", "item1", "1.1", "1.2", "1.3"); got != 0.5 {
		t.Errorf("three: got %v want 0.5", got)
	}
	if got := score(t, "ef2", "item1", "1.1", "1.2", "1.3", "1.4"); got != 0.75 {
		t.Errorf("four: got %v want 0.75", got)
	}
	if got := score(t, "ef2", "item1", "1.1", "1.2", "1.3", "1.4", "1.5", "1.6"); got != 1 {
		t.Errorf("six: got %v want 1", got)
	}
}

func TestEF2CompositeItems(t *testing.T) {
	// item2 averages the plan presence check and the provisions ladder.
	if got := score(t, "ef2", "item2", "2.1"); got != 0.5 {
		t.Errorf("plan only: got %v want 0.5", got)
	}
	if got := score(t, "ef2", "item2", "2.1", "2.2", "2.3", "2.4", "2.5"); got != 1 {
		t.Errorf("everything: got %v want 1", got)
	}
	// item3 averages its two option branches.
	if got := score(t, "ef2", "item3", "3.1", "3.2", "3.3", "3.4", "3.5", "3.6", "3.7"); got != 1 {
		t.Errorf("full hierarchy: got %v want 1", got)
	}
	if got := score(t, "ef2", "item5", "5.2"); got != 0.75 {
		t.Errorf("rating: got %v want 0.75", got)
	}
}
