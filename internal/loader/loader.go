// Package loader reads session records from a YAML data file or the
// built-in sample set.
package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pveldandi/recap/internal/record"
)

// LoadFile reads and unmarshals a YAML session file. A missing or
// unparseable file wraps record.ErrParse: the load is fatal and the caller
// must not replace any previously derived state.
func LoadFile(path string) ([]record.Raw, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", record.ErrParse, path, err)
	}
	return Parse(data)
}

// Parse unmarshals raw YAML bytes into session records. An empty document
// is valid and yields an empty slice.
func Parse(data []byte) ([]record.Raw, error) {
	var raws []record.Raw
	if err := yaml.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("%w: %v", record.ErrParse, err)
	}
	return raws, nil
}

// Sample returns the built-in demonstration set: five sessions across three
// calendar days, matching the capture tool's output format.
func Sample() []record.Raw {
	return []record.Raw{
		{
			Name:     "Cell structure review",
			Type:     "Biology",
			Tag:      "chapter-3",
			Start:    "2025-06-30T09:15:00.000",
			End:      "2025-06-30T09:30:51.523",
			Duration: 951.523,
		},
		{
			Name:     "Calculus problem set",
			Type:     "Math",
			Tag:      "integrals",
			Start:    "2025-06-30T14:00:00.000",
			End:      "2025-06-30T14:20:00.500",
			Duration: 1200.5,
		},
		{
			Name:     "Linear algebra drills",
			Type:     "Math",
			Tag:      "matrices",
			Start:    "2025-07-01T10:30:00.000",
			End:      "2025-07-01T11:00:00.000",
			Duration: 1800.0,
		},
		{
			Name:     "Pacific theater notes",
			Type:     "History",
			Tag:      "ww2",
			Start:    "2025-07-01T16:45:00.000",
			End:      "2025-07-01T17:25:00.000",
			Duration: 2400.0,
		},
		{
			Name:     "Ottoman empire reading",
			Type:     "History",
			Tag:      "ottoman",
			Start:    "2025-07-02T08:20:00.000",
			End:      "2025-07-02T08:45:00.000",
			Duration: 1500.0,
		},
	}
}
