package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/kmcrane/urge/internal/models"
)

// WriteJSON serializes the impulse slice as indented JSON. A nil slice is
// written as an empty array so consumers always get valid JSON.
func WriteJSON(w io.Writer, impulses []models.Impulse) error {
	if impulses == nil {
		impulses = []models.Impulse{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(impulses)
}

// ExportJSON writes all impulses to a file at path.
func ExportJSON(path string, impulses []models.Impulse) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := WriteJSON(f, impulses); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return f.Sync()
}
