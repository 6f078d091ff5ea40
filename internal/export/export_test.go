package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/kmcrane/urge/internal/models"
)

func sampleImpulses() []models.Impulse {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	decided := created.Add(24 * time.Hour)

	return []models.Impulse{
		{
			ID:        "a",
			Title:     `limited "deluxe" edition`,
			Category:  models.CategoryEntertainment,
			Price:     59.99,
			Notes:     "saw it on sale,\nalmost bought twice",
			Emotion:   models.EmotionExcited,
			Urgency:   models.UrgencyImpulse,
			Status:    models.StatusSkipped,
			CreatedAt: created,
			ReviewAt:  created.Add(24 * time.Hour),
			DecisionAt: &decided,
			SkippedFeeling: models.SkippedRelieved,
		},
		{
			ID:        "b",
			Title:     "mechanical keyboard",
			Category:  models.CategoryShopping,
			Emotion:   models.EmotionNone,
			Urgency:   models.UrgencyNiceToHave,
			Status:    models.StatusCooldown,
			CreatedAt: created.Add(time.Hour),
			ReviewAt:  created.Add(25 * time.Hour),
		},
	}
}

func TestWriteCSVHeaderAndRowCount(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleImpulses()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	// Quoted newlines keep this parseable only by a real CSV reader
	r := csv.NewReader(&buf)
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}

	header := records[0]
	want := []string{
		"id", "title", "category", "price", "emotion", "urgency",
		"cooldown_minutes", "created_at", "review_at", "status",
		"decided_at", "final_feeling", "skipped_feeling", "notes",
	}
	if len(header) != len(want) {
		t.Fatalf("expected %d columns, got %d", len(want), len(header))
	}
	for i := range want {
		if header[i] != want[i] {
			t.Errorf("column %d: expected %q, got %q", i, want[i], header[i])
		}
	}
}

func TestWriteCSVQuotingRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleImpulses()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	raw := buf.String()
	if !strings.Contains(raw, `"limited ""deluxe"" edition"`) {
		t.Error("embedded quotes should be doubled")
	}

	r := csv.NewReader(strings.NewReader(raw))
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}

	row := records[1]
	if row[1] != `limited "deluxe" edition` {
		t.Errorf("title did not round-trip: %q", row[1])
	}
	if row[13] != "saw it on sale,\nalmost bought twice" {
		t.Errorf("notes did not round-trip: %q", row[13])
	}
	if row[6] != "1440" {
		t.Errorf("expected cooldown_minutes 1440, got %q", row[6])
	}
	if row[3] != "59.99" {
		t.Errorf("expected price 59.99, got %q", row[3])
	}

	// Unpriced, undecided record leaves optionals empty
	row = records[2]
	if row[3] != "" {
		t.Errorf("expected empty price, got %q", row[3])
	}
	if row[10] != "" {
		t.Errorf("expected empty decided_at, got %q", row[10])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Errorf("expected header only, got %d lines", len(lines))
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleImpulses()); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var decoded []models.Impulse
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 records, got %d", len(decoded))
	}
	if decoded[0].Title != `limited "deluxe" edition` {
		t.Errorf("title did not survive: %q", decoded[0].Title)
	}
}

func TestWriteJSONNilSlice(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("expected empty array, got %q", got)
	}
}

func TestWriteReport(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	if err := WriteReport(&buf, sampleImpulses(), "EUR", now, time.UTC); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}

	html := buf.String()
	for _, want := range []string{
		"Urge Report",
		"EUR",
		"entertainment",
		"limited &#34;deluxe&#34; edition",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestWriteReportCapsRecentRows(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	var impulses []models.Impulse
	for i := 0; i < 30; i++ {
		impulses = append(impulses, models.Impulse{
			ID:        string(rune('a' + i)),
			Title:     "item",
			Category:  models.CategoryOther,
			Status:    models.StatusCooldown,
			CreatedAt: created.Add(time.Duration(i) * time.Minute),
			ReviewAt:  created.Add(24 * time.Hour),
		})
	}

	var buf bytes.Buffer
	if err := WriteReport(&buf, impulses, "", created.Add(48*time.Hour), time.UTC); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}

	rows := strings.Count(buf.String(), "<td>item</td>")
	if rows != 20 {
		t.Errorf("expected 20 recent rows, got %d", rows)
	}
	if !strings.Contains(buf.String(), "most recent records") {
		t.Error("expected truncation note")
	}
}

func TestWriteReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	if err := WriteReport(&buf, nil, "", now, time.UTC); err != nil {
		t.Fatalf("WriteReport failed on empty input: %v", err)
	}
	if !strings.Contains(buf.String(), "Urge Report") {
		t.Error("expected report header")
	}
}
