package httpserver

import (
	"fmt"
	"html/template"

	"github.com/microsaas/console/internal/icon"
	"github.com/microsaas/console/internal/shell"
)

const pageTemplateName = "shell"

// revenueBar is one column of the revenue overview chart.
type revenueBar struct {
	Month   string
	Amount  int
	Percent int // bar height relative to the largest amount
}

// pageData feeds the page template. Exactly one of Dashboard, Feature and
// Settings is set, matching the active panel.
type pageData struct {
	shell.Layout
	Dashboard *shell.DashboardPanel
	Bars      []revenueBar
	Feature   *shell.Feature
	Settings  *shell.SettingsPanel
}

func newPageData(layout shell.Layout) pageData {
	data := pageData{Layout: layout}
	switch p := layout.Page.Panel.(type) {
	case shell.DashboardPanel:
		data.Dashboard = &p
		data.Bars = revenueBars(p.Revenue)
	case shell.TemplatesPanel:
		data.Feature = &p.Feature
	case shell.DataSourcesPanel:
		data.Feature = &p.Feature
	case shell.ToolsPanel:
		data.Feature = &p.Feature
	case shell.SettingsPanel:
		data.Settings = &p
	default:
		panic(fmt.Sprintf("httpserver: unhandled panel %T", p))
	}
	return data
}

func revenueBars(points []shell.RevenuePoint) []revenueBar {
	peak := 0
	for _, p := range points {
		peak = max(peak, p.Amount)
	}
	bars := make([]revenueBar, 0, len(points))
	for _, p := range points {
		pct := 0
		if peak > 0 {
			pct = p.Amount * 100 / peak
		}
		bars = append(bars, revenueBar{Month: p.Month, Amount: p.Amount, Percent: pct})
	}
	return bars
}

func newPageTemplate() *template.Template {
	return template.Must(template.New(pageTemplateName).Funcs(template.FuncMap{
		"icon": icon.SVG,
	}).Parse(pageTemplate))
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Page.Title}} · MicroSaaS</title>
<script src="https://cdn.tailwindcss.com"></script>
</head>
<body>
<div class="min-h-screen bg-gray-50 flex">
  <aside class="{{.Sidebar.Class}}">
    <div class="h-16 flex items-center justify-between px-6 border-b border-gray-200">
      <div class="{{.Sidebar.BrandClass}}">{{.Sidebar.Brand}}</div>
      <form method="post" action="/sidebar/toggle">
        <button type="submit" class="{{.Sidebar.Toggle.Class}}">{{icon .Sidebar.Toggle.Icon 20 ""}}</button>
      </form>
    </div>
    <nav class="flex-1 p-4" role="navigation" aria-label="{{.Sidebar.NavLabel}}">
      <ul class="space-y-1" role="list">
        {{- range .Sidebar.Entries}}
        <li role="none">
          <form method="post" action="/nav/{{.ID}}">
            <button type="submit" class="{{.Class}}" role="menuitem"{{if .AriaCurrent}} aria-current="{{.AriaCurrent}}"{{end}}{{if .Title}} title="{{.Title}}"{{end}}>
              {{- if .Current}}
              <div class="absolute left-0 top-1/2 transform -translate-y-1/2 w-1 h-6 bg-blue-600 rounded-r-full"></div>
              {{- end}}
              {{icon .Icon 24 .IconClass}}
              <span class="{{.LabelClass}}">{{.Label}}</span>
              {{- if .Tooltip}}
              <div class="absolute left-full ml-2 px-2 py-1 bg-slate-900 text-white text-sm rounded opacity-0 group-hover:opacity-100 transition-opacity duration-200 pointer-events-none whitespace-nowrap z-50">{{.Tooltip}}</div>
              {{- end}}
            </button>
          </form>
        </li>
        {{- end}}
      </ul>
    </nav>
  </aside>

  <div class="flex-1 flex flex-col transition-all duration-300 ml-0">
    <header class="bg-white border-b border-gray-200 h-16 flex items-center justify-between px-6 sticky top-0 z-20">
      <form method="post" action="/header/menu">
        <button type="submit" class="{{.Header.Menu.Class}}" aria-label="{{.Header.Menu.AriaLabel}}">{{icon .Header.Menu.Icon 20 ""}}</button>
      </form>
      <div class="flex-1"></div>
      <div class="flex items-center space-x-4">
        <button type="button" class="{{.Header.Profile.Class}}" aria-label="{{.Header.Profile.AriaLabel}}">{{icon .Header.Profile.Icon 20 "text-slate-600"}}</button>
      </div>
    </header>

    <main class="flex-1 p-6">
      <div class="max-w-[1400px] mx-auto">
        <div class="mb-8">
          <h1 class="text-3xl font-bold text-slate-900 mb-2">{{.Page.Title}}</h1>
          <p class="text-slate-600">{{.Page.Subtitle}}</p>
        </div>
        {{- with .Dashboard}}
        <div class="grid grid-cols-12 gap-6 mb-8">
          {{- range $i, $s := .Stats}}
          <div class="col-span-12 {{if eq $i 2}}sm:col-span-12{{else}}sm:col-span-6{{end}} lg:col-span-4">
            <div class="bg-white rounded-lg border border-slate-200 p-6 shadow-sm hover:shadow-md transition-shadow">
              <h3 class="text-sm font-medium text-slate-500 mb-2">{{$s.Title}}</h3>
              <p class="text-2xl font-bold text-slate-900">{{$s.Value}}</p>
              <p class="text-sm {{if eq $s.Trend.String "down"}}text-red-600{{else}}text-green-600{{end}} mt-1">{{$s.Change}}</p>
            </div>
          </div>
          {{- end}}
        </div>
        <div class="grid grid-cols-12 gap-6">
          <div class="col-span-12 lg:col-span-8">
            <div class="bg-white rounded-lg border border-slate-200 p-6 shadow-sm">
              <h3 class="text-lg font-semibold text-slate-900 mb-4">{{.RevenueTitle}}</h3>
              <div class="h-80 bg-slate-50 rounded-lg flex items-end gap-2 p-4">
                {{- range $.Bars}}
                <div class="flex-1 flex flex-col items-center justify-end h-full" title="{{.Month}}: {{.Amount}}">
                  <div class="w-full bg-blue-500 rounded-t" style="height: {{.Percent}}%"></div>
                  <span class="text-xs text-slate-500 mt-1">{{.Month}}</span>
                </div>
                {{- end}}
              </div>
            </div>
          </div>
          <div class="col-span-12 lg:col-span-4">
            <div class="bg-white rounded-lg border border-slate-200 p-6 shadow-sm">
              <h3 class="text-lg font-semibold text-slate-900 mb-4">{{.ActivityTitle}}</h3>
              <div class="space-y-4">
                {{- range .Activity}}
                <div class="flex items-center space-x-3">
                  <div class="w-2 h-2 bg-blue-500 rounded-full"></div>
                  <div class="flex-1">
                    <p class="text-sm font-medium text-slate-900">{{.Text}}</p>
                    <p class="text-xs text-slate-500">{{.When}}</p>
                  </div>
                </div>
                {{- end}}
              </div>
            </div>
          </div>
        </div>
        {{- end}}
        {{- with .Feature}}
        <div class="grid grid-cols-12 gap-6">
          <div class="col-span-12">
            {{template "feature" .}}
          </div>
        </div>
        {{- end}}
        {{- with .Settings}}
        <div class="grid grid-cols-12 gap-6">
          <div class="col-span-12 lg:col-span-8">
            {{template "feature" .Feature}}
          </div>
          <div class="col-span-12 lg:col-span-4">
            <div class="bg-white rounded-lg border border-slate-200 p-6 shadow-sm">
              <h3 class="text-lg font-semibold text-slate-900 mb-4">{{.QuickActionsTitle}}</h3>
              <div class="space-y-3">
                {{- range .QuickActions}}
                <button type="button" class="w-full text-left px-3 py-2 rounded-lg hover:bg-slate-50 transition-colors">
                  <span class="text-sm font-medium text-slate-900">{{.}}</span>
                </button>
                {{- end}}
              </div>
            </div>
          </div>
        </div>
        {{- end}}
      </div>
    </main>
  </div>
  {{- with .Overlay}}
  <form method="post" action="/overlay/dismiss">
    <button type="submit" class="{{.Class}}" aria-label="Close navigation menu"></button>
  </form>
  {{- end}}
</div>
</body>
</html>
{{define "feature"}}<div class="bg-white rounded-lg border border-slate-200 p-6 shadow-sm">
              <div class="text-center py-12">
                {{icon .Icon 48 "mx-auto text-slate-400 mb-4"}}
                <h3 class="text-lg font-semibold text-slate-900 mb-2">{{.Heading}}</h3>
                <p class="text-slate-600">{{.Body}}</p>
              </div>
            </div>{{end}}`
