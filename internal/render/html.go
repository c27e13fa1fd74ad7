package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/rcliao/bsearch-viz/internal/model"
)

// Page is the data behind the HTML view. Form toggles the input form, which
// the server shows and standalone exports omit.
type Page struct {
	Form   bool
	List   string
	Target string
	Error  string
	Result *model.Result
}

type cellView struct {
	Value int
	Class string
}

type stepView struct {
	Number  int
	Explain string
	Cells   []cellView
}

type pageView struct {
	Page
	Steps       []stepView
	Final       []cellView
	Summary     string
	Comparisons string
}

func cellViews(seq model.Sequence, cells []Cell) []cellView {
	out := make([]cellView, len(seq))
	for i, v := range seq {
		out[i] = cellView{Value: v, Class: cells[i].String()}
	}
	return out
}

// WriteHTML renders p as a complete HTML document.
func WriteHTML(w io.Writer, p Page) error {
	v := pageView{Page: p}
	if r := p.Result; r != nil {
		for _, s := range r.Trace {
			v.Steps = append(v.Steps, stepView{
				Number:  s.Number,
				Explain: Explain(s, r.Target),
				Cells:   cellViews(r.Sequence, StepCells(len(r.Sequence), s.Window)),
			})
		}
		v.Final = cellViews(r.Sequence, FinalCells(r))
		v.Summary = Summary(r)
		v.Comparisons = Comparisons(r)
	}
	if err := pageTmpl.Execute(w, v); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Binary Search Visualizer</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 2em auto; }
.cell { display:inline-block; width:40px; height:40px; line-height:40px; text-align:center; margin:2px; border-radius:4px; }
.mid { background-color:#FFA500; color:white; font-weight:bold; }
.active { background-color:#ADD8E6; color:black; }
.excluded { background-color:#E0E0E0; color:#888; }
.step { margin-bottom:20px; padding:10px; border-left:3px solid #4CAF50; }
.final { text-align:center; margin-top:10px; }
.error { color:#e53935; font-weight:bold; }
</style>
</head>
<body>
<h1>Binary Search Visualizer</h1>
{{- if .Form}}
<form method="get" action="/">
<label>Sorted list (comma-separated) <input name="list" value="{{.List}}" placeholder="e.g., 1,3,5,7,9,11,13,15"></label>
<label>Target value <input name="target" value="{{.Target}}" placeholder="e.g., 7"></label>
<button type="submit">Run Binary Search</button>
</form>
{{- end}}
{{- if .Error}}
<p class="error">Error: {{.Error}}</p>
{{- end}}
{{- if .Result}}
<h2>Result</h2>
<p id="summary">{{.Summary}}</p>
<p id="comparisons">{{.Comparisons}}</p>
<div class="final">{{range .Final}}<span class="cell {{.Class}}">{{.Value}}</span>{{end}}</div>
<h2>Step-by-step</h2>
{{- range .Steps}}
<div class="step"><strong>Step {{.Number}}:</strong> {{.Explain}}
<div>{{range .Cells}}<span class="cell {{.Class}}">{{.Value}}</span>{{end}}</div>
</div>
{{- end}}
{{- end}}
<h3>Color legend</h3>
<ul>
<li><span class="cell mid"></span> Middle element</li>
<li><span class="cell active"></span> Active search range</li>
<li><span class="cell excluded"></span> Excluded</li>
</ul>
</body>
</html>
`))
