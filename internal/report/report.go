package report

import (
	"html/template"
	"io"

	"github.com/formativa/rubrica/internal/rubric"
)

// Data is everything a rendered report needs. State is the free-text label of
// the unit under evaluation (the report header).
type Data struct {
	Title string
	State string
	Lines []Line
	// Formula is empty until the form has been calculated.
	Formula string
	Result  string
}

// Line is one non-excluded item with its formatted score.
type Line struct {
	Item  string
	Title string
	Score string
}

// Build flattens a calculated snapshot into template data.
func Build(snap rubric.Snapshot, state string) Data {
	d := Data{
		Title: snap.Form.Title + " - " + state,
		State: state,
	}
	if snap.Final == nil {
		return d
	}
	for i, id := range snap.Final.Items {
		title := id
		if it, ok := snap.Form.Item(id); ok {
			title = it.Title
		}
		d.Lines = append(d.Lines, Line{
			Item:  id,
			Title: title,
			Score: FormatValue(snap.Final.Scores[i], 2),
		})
	}
	d.Formula = Formula(snap.Final.Scores, snap.Final.Value)
	d.Result = FormatValue(snap.Final.Value, 2)
	return d
}

// Render writes the printable HTML report.
func Render(w io.Writer, d Data) error {
	return reportTmpl.Execute(w, d)
}

var reportTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
h1 { font-size: 1.4rem; }
table { border-collapse: collapse; margin: 1rem 0; }
td, th { border: 1px solid #ccc; padding: 0.4rem 0.8rem; text-align: left; }
.formula { font-family: monospace; margin-top: 1rem; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{if .Lines}}
<table>
<tr><th>Item</th><th>Critério</th><th>Pontuação</th></tr>
{{range .Lines}}<tr><td>{{.Item}}</td><td>{{.Title}}</td><td>{{.Score}}</td></tr>
{{end}}</table>
<p>Cálculo Resultado Final:</p>
<p class="formula">{{.Formula}}</p>
{{else}}
<p>Resultado ainda não calculado.</p>
{{end}}
</body>
</html>
`))
