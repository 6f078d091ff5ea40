// Package export renders stored impulses as CSV, JSON and an HTML report.
package export

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/kmcrane/urge/internal/models"
)

// csvColumns is the fixed column order. Consumers (spreadsheets, the weekly
// report importer) rely on this order, do not reorder.
var csvColumns = []string{
	"id", "title", "category", "price", "emotion", "urgency",
	"cooldown_minutes", "created_at", "review_at", "status",
	"decided_at", "final_feeling", "skipped_feeling", "notes",
}

// WriteCSV writes all impulses to w. Every value is quoted and embedded
// quotes are doubled, so rows survive titles and notes with commas and
// newlines in any reader.
func WriteCSV(w io.Writer, impulses []models.Impulse) error {
	if err := writeCSVRow(w, csvColumns); err != nil {
		return err
	}
	for _, imp := range impulses {
		if err := writeCSVRow(w, csvRecord(imp)); err != nil {
			return err
		}
	}
	return nil
}

// ExportCSV writes all impulses to a file at path.
func ExportCSV(path string, impulses []models.Impulse) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, impulses); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return f.Sync()
}

func csvRecord(imp models.Impulse) []string {
	cooldownMinutes := int(math.Round(imp.ReviewAt.Sub(imp.CreatedAt).Minutes()))

	decidedAt := ""
	if imp.DecisionAt != nil {
		decidedAt = imp.DecisionAt.UTC().Format(time.RFC3339)
	}

	price := ""
	if imp.Price > 0 {
		price = fmt.Sprintf("%.2f", imp.Price)
	}

	return []string{
		imp.ID,
		imp.Title,
		string(imp.Category),
		price,
		string(imp.Emotion),
		string(imp.Urgency),
		fmt.Sprintf("%d", cooldownMinutes),
		imp.CreatedAt.UTC().Format(time.RFC3339),
		imp.ReviewAt.UTC().Format(time.RFC3339),
		string(imp.Status),
		decidedAt,
		string(imp.FinalFeeling),
		string(imp.SkippedFeeling),
		imp.Notes,
	}
}

func writeCSVRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	_, err := fmt.Fprintf(w, "%s\n", strings.Join(quoted, ","))
	return err
}
