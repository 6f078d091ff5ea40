package export

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"sort"
	"time"

	"github.com/kmcrane/urge/internal/constants"
	"github.com/kmcrane/urge/internal/models"
	"github.com/kmcrane/urge/internal/stats"
)

type reportRow struct {
	Title    string
	Category string
	Price    string
	Status   string
	Created  string
}

type reportData struct {
	GeneratedAt string
	Currency    string
	Summary     stats.Summary
	Streaks     stats.Streaks
	Categories  []stats.CategoryStats
	Score       float64
	Recent      []reportRow
	Truncated   bool
}

const reportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Urge Report</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem auto; max-width: 52rem; color: #222; }
h1 { font-size: 1.4rem; }
h2 { font-size: 1.1rem; margin-top: 2rem; }
table { border-collapse: collapse; width: 100%; }
th, td { text-align: left; padding: 0.35rem 0.6rem; border-bottom: 1px solid #ddd; }
th { background: #f5f5f5; }
.metric { display: inline-block; margin-right: 2rem; }
.metric b { display: block; font-size: 1.3rem; }
.muted { color: #888; font-size: 0.85rem; }
</style>
</head>
<body>
<h1>Urge Report</h1>
<p class="muted">Generated {{.GeneratedAt}}</p>

<h2>Totals</h2>
<div>
<span class="metric"><b>{{.Summary.Logged}}</b>logged</span>
<span class="metric"><b>{{.Summary.Skipped}}</b>skipped</span>
<span class="metric"><b>{{.Summary.Bought}}</b>bought</span>
<span class="metric"><b>{{printf "%.0f%%" .Summary.RegretRate}}</b>regret rate</span>
<span class="metric"><b>{{.Currency}} {{printf "%.2f" .Summary.MoneySaved}}</b>saved</span>
<span class="metric"><b>{{printf "%.0f" .Score}}</b>impact score</span>
</div>
<p>Current skip streak: {{.Streaks.Current}} day(s), longest: {{.Streaks.Longest}} day(s).</p>

{{if .Categories}}
<h2>By category</h2>
<table>
<tr><th>Category</th><th>Logged</th><th>Skipped</th><th>Bought</th><th>Regret rate</th></tr>
{{range .Categories}}
<tr><td>{{.Category}}</td><td>{{.Logged}}</td><td>{{.Skipped}}</td><td>{{.Bought}}</td><td>{{printf "%.0f%%" .RegretRate}}</td></tr>
{{end}}
</table>
{{end}}

{{if .Recent}}
<h2>Recent activity</h2>
<table>
<tr><th>Title</th><th>Category</th><th>Price</th><th>Status</th><th>Logged</th></tr>
{{range .Recent}}
<tr><td>{{.Title}}</td><td>{{.Category}}</td><td>{{.Price}}</td><td>{{.Status}}</td><td>{{.Created}}</td></tr>
{{end}}
</table>
{{if .Truncated}}<p class="muted">Showing the {{len .Recent}} most recent records.</p>{{end}}
{{end}}
</body>
</html>
`

// WriteReport renders the HTML report to w. The recent-activity table is
// capped so the report stays readable for long histories.
func WriteReport(w io.Writer, impulses []models.Impulse, currency string, now time.Time, loc *time.Location) error {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse report template: %w", err)
	}

	sorted := make([]models.Impulse, len(impulses))
	copy(sorted, impulses)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	truncated := len(sorted) > constants.ReportRecentRows
	if truncated {
		sorted = sorted[:constants.ReportRecentRows]
	}

	rows := make([]reportRow, 0, len(sorted))
	for _, imp := range sorted {
		price := ""
		if imp.Price > 0 {
			price = fmt.Sprintf("%.2f", imp.Price)
		}
		rows = append(rows, reportRow{
			Title:    imp.Title,
			Category: string(imp.Category),
			Price:    price,
			Status:   string(imp.Status),
			Created:  imp.CreatedAt.In(loc).Format("2006-01-02 15:04"),
		})
	}

	if currency == "" {
		currency = constants.DefaultCurrency
	}

	data := reportData{
		GeneratedAt: now.In(loc).Format("2006-01-02 15:04"),
		Currency:    currency,
		Summary:     stats.Summarize(impulses),
		Streaks:     stats.ComputeStreaks(impulses, now, loc),
		Categories:  stats.ByCategory(impulses),
		Score:       stats.ImpactScore(impulses, now, loc),
		Recent:      rows,
		Truncated:   truncated,
	}

	return tmpl.Execute(w, data)
}

// ExportReport writes the HTML report to a file at path.
func ExportReport(path string, impulses []models.Impulse, currency string, now time.Time, loc *time.Location) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := WriteReport(f, impulses, currency, now, loc); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return f.Sync()
}
