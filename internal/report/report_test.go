package report_test

import (
	"math"
	"strings"
	"testing"

	"github.com/formativa/rubrica/internal/report"
	"github.com/formativa/rubrica/internal/rubric"
)

func TestFormatValue(t *testing.T) {
	cases := []struct {
		value    float64
		decimals int
		want     string
	}{
		{0.75, 2, "0,75"},
		{0, 2, "0,00"},
		{1, 2, "1,00"},
		{0.333, 2, "0,33"},
		{87.5, 1, "87,5"},
	}
	for _, tc := range cases {
		if got := report.FormatValue(tc.value, tc.decimals); got != tc.want {
			t.Errorf("FormatValue(%v, %d) = %q, want %q", tc.value, tc.decimals, got, tc.want)
		}
	}
}

func TestFormatValueNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := report.FormatValue(v, 2); got != "0,00" {
			t.Errorf("FormatValue(%v) = %q, want \"0,00\"", v, got)
		}
	}
}

func TestFormula(t *testing.T) {
	got := report.Formula([]float64{0.5, 1, 0.75}, 0.75)
	want := "(0,50 + 1,00 + 0,75) / 3 = 0,75"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestBuildBeforeCalculate(t *testing.T) {
	form, err := rubric.Get("d1m1")
	if err != nil {
		t.Fatal(err)
	}
	d := report.Build(rubric.Snapshot{Form: form}, "Unidade Escolar A")
	if d.Title != "Dimensão 1 - Categoria 1 - Unidade Escolar A" {
		t.Errorf("title: got %q", d.Title)
	}
	if len(d.Lines) != 0 || d.Formula != "" {
		t.Errorf("uncalculated snapshot produced lines: %+v", d)
	}
}

func TestBuildCalculated(t *testing.T) {
	form, err := rubric.Get("d1m1")
	if err != nil {
		t.Fatal(err)
	}
	snap := rubric.Snapshot{
		Form: form,
		Final: &rubric.Result{
			Items:  []string{"item1", "item2"},
			Scores: []float64{0.5, 1},
			Value:  0.75,
		},
	}
	d := report.Build(snap, "Unidade Escolar A")
	if len(d.Lines) != 2 {
		t.Fatalf("got %d lines", len(d.Lines))
	}
	if d.Lines[0].Item != "item1" || d.Lines[0].Score != "0,50" {
		t.Errorf("first line: %+v", d.Lines[0])
	}
	if d.Lines[0].Title == "item1" {
		t.Error("item title not resolved from the form")
	}
	if d.Formula != "(0,50 + 1,00) / 2 = 0,75" {
		t.Errorf("formula: got %q", d.Formula)
	}
	if d.Result != "0,75" {
		t.Errorf("result: got %q", d.Result)
	}
}

func TestRender(t *testing.T) {
	form, err := rubric.Get("ef1")
	if err != nil {
		t.Fatal(err)
	}
	d := report.Build(rubric.Snapshot{
		Form: form,
		Final: &rubric.Result{
			Items:  []string{"item1"},
			Scores: []float64{1},
			Value:  1,
		},
	}, "Unidade B")

	var buf strings.Builder
	if err := report.Render(&buf, d); err != nil {
		t.Fatal(err)
	}
	html := buf.String()
	for _, want := range []string{
		"Estrutura Formativa 1 - Unidade B",
		"Cálculo Resultado Final:",
		"(1,00) / 1 = 1,00",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered report missing %q", want)
		}
	}

	empty := report.Build(rubric.Snapshot{Form: form}, "Unidade B")
	buf.Reset()
	if err := report.Render(&buf, empty); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Resultado ainda não calculado.") {
		t.Error("uncalculated report missing placeholder")
	}
}
