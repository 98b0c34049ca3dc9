// Copyright 2026 The Tollview Authors
// SPDX-License-Identifier: MIT

package output

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{icon .Page.Icon .Page.Title}}</title>
<style>
:root {
  --bg: #fff; --fg: #1a1a2e; --card-bg: #f8f9fa; --border: #dee2e6; --muted: #6c757d;
  --success: #198754; --info: #0d6efd; --warning: #b58105; --error: #dc3545;
}
@media (prefers-color-scheme: dark) {
  :root {
    --bg: #1a1a2e; --fg: #e9ecef; --card-bg: #16213e; --border: #495057; --muted: #adb5bd;
    --success: #4caf50; --info: #5b9aff; --warning: #ffc107; --error: #f55;
  }
}
* { box-sizing: border-box; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; padding: 1rem; margin: 0 auto; }
body.layout-wide { max-width: 1400px; }
body.layout-centered { max-width: 760px; }
header h1 { margin-bottom: .25rem; }
header h3 { margin: 0 0 .25rem; font-weight: 500; }
header p { color: var(--muted); margin-top: 0; }
.metrics { display: grid; grid-template-columns: repeat(4, 1fr); gap: .75rem; margin-bottom: 1.5rem; }
@media (max-width: 768px) { .metrics { grid-template-columns: repeat(2, 1fr); } }
.metric { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: .75rem; }
.metric .label { font-size: .8125rem; color: var(--muted); }
.metric .value { font-size: 1.75rem; font-weight: 700; }
details { border: 1px solid var(--border); border-radius: 8px; margin-bottom: 1rem; padding: .5rem 1rem; }
summary { cursor: pointer; font-weight: 600; font-size: 1.125rem; }
figure { margin: 1rem 0; }
figure img { width: 100%; height: auto; }
.columns { display: grid; grid-template-columns: repeat(2, 1fr); gap: 1rem; }
@media (max-width: 768px) { .columns { grid-template-columns: 1fr; } }
.alert { border-radius: 6px; padding: .625rem .875rem; margin: .75rem 0; border-left: 4px solid; background: var(--card-bg); }
.alert-success { border-color: var(--success); }
.alert-info { border-color: var(--info); }
.alert-warning { border-color: var(--warning); }
.alert-error { border-color: var(--error); }
footer { color: var(--muted); font-size: .8125rem; border-top: 1px solid var(--border); margin-top: 1.5rem; padding-top: .75rem; }
</style>
</head>
<body class="layout-{{.Page.Layout}}">
{{define "block"}}
{{- if eq .Kind "markdown"}}<div class="markdown">{{markdown .Text}}</div>
{{- else if eq .Kind "figure"}}<figure data-artifact="{{.Figure.Name}}"><img src="{{dataURI .Figure}}" alt="{{.Figure.Name}}" width="{{.Figure.Width}}" height="{{.Figure.Height}}"></figure>
{{- else if eq .Kind "alert"}}<div class="alert alert-{{.Level}}" role="{{if eq .Level "error"}}alert{{else}}status{{end}}"{{if .Figure}} data-missing="{{.Figure.Name}}"{{end}}>{{.Text}}</div>
{{- else if eq .Kind "columns"}}<div class="columns">{{range .Columns}}<div class="column"><h4>{{.Heading}}</h4>{{range .Blocks}}{{template "block" .}}{{end}}</div>{{end}}</div>
{{- end}}
{{end}}
<header>
  <h1>{{icon .Header.Icon .Header.Title}}</h1>
  <h3>{{.Header.Subtitle}}</h3>
  <p><em>{{.Header.Tagline}}</em></p>
</header>
{{if .Aborted}}
<main id="aborted">{{with .Abort}}{{template "block" .}}{{end}}</main>
{{else}}
<main>
<h2>📌 System Snapshot</h2>
<section class="metrics" id="snapshot">
{{- range .Metrics}}
  <div class="metric" data-key="{{.Key}}"><div class="label">{{icon .Icon .Label}}</div><div class="value">{{.Value}}</div></div>
{{- end}}
</section>
{{range .Sections}}
<details id="{{.Name}}"{{if .Expanded}} open{{end}}>
<summary>{{icon .Icon .Title}}</summary>
{{range .Blocks}}{{template "block" .}}{{end}}
</details>
{{end}}
</main>
<footer>{{.Footer}}</footer>
{{end}}
</body>
</html>
`
