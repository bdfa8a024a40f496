// Package dataset runs the load pipeline: read raw records, normalize,
// aggregate. One call produces everything the views render; nothing is
// mutated afterwards, and a failed load leaves the caller's previous
// dataset untouched.
package dataset

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/pveldandi/recap/internal/aggregate"
	"github.com/pveldandi/recap/internal/loader"
	"github.com/pveldandi/recap/internal/record"
)

// Dataset is the fully derived state for one load.
type Dataset struct {
	Source   string
	Location *time.Location
	Records  []record.Canonical
	Agg      aggregate.Aggregate
	Skipped  []record.Skip
}

// Filter restricts a load to records starting inside [Since, Until). Zero
// bounds are open.
type Filter struct {
	Since time.Time
	Until time.Time
}

func (f Filter) keep(r record.Canonical) bool {
	if !f.Since.IsZero() && r.Start.Before(f.Since) {
		return false
	}
	if !f.Until.IsZero() && !r.Start.Before(f.Until) {
		return false
	}
	return true
}

// Load reads the file at path (or the built-in sample when path is empty)
// and derives the dataset. Skipped records are logged at warn level and
// reported on the dataset. Returns record.ErrParse when the input is
// unreadable and record.ErrEmptyInput when nothing survives normalization
// and filtering.
func Load(path string, loc *time.Location, filter Filter) (*Dataset, error) {
	var (
		raws   []record.Raw
		source string
		err    error
	)
	if path == "" {
		raws = loader.Sample()
		source = "sample data"
	} else {
		raws, err = loader.LoadFile(path)
		if err != nil {
			return nil, err
		}
		source = path
	}

	records, skipped := record.Normalize(raws, loc)
	for _, s := range skipped {
		log.Warn("skipping record", "index", s.Index, "name", s.Name, "err", s.Err)
	}

	if !filter.Since.IsZero() || !filter.Until.IsZero() {
		kept := records[:0:0]
		for _, r := range records {
			if filter.keep(r) {
				kept = append(kept, r)
			}
		}
		records = kept
	}

	if len(records) == 0 {
		return nil, record.ErrEmptyInput
	}
	log.Debug("loaded dataset", "source", source, "records", len(records), "skipped", len(skipped))

	return &Dataset{
		Source:   source,
		Location: loc,
		Records:  records,
		Agg:      aggregate.Build(records),
		Skipped:  skipped,
	}, nil
}
