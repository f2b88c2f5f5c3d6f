package dataset

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"portfolioData/internal/models"
	"portfolioData/internal/synth"
)

var idPattern = regexp.MustCompile(`^\d{2}$`)

// Validate checks a persisted dataset of want records: two-digit unique ids
// covering 01..want, upper-case title and type, empty assets and
// descending (year, id) order. All violations are returned together.
func Validate(records []models.Record, want int) error {
	var errs []error

	if len(records) != want {
		errs = append(errs, fmt.Errorf("expected %d records, got %d", want, len(records)))
	}

	seen := make(map[string]bool, len(records))
	for i, r := range records {
		if !idPattern.MatchString(r.ID) {
			errs = append(errs, fmt.Errorf("record %d: id %q is not two digits", i, r.ID))
		}
		if seen[r.ID] {
			errs = append(errs, fmt.Errorf("record %d: duplicate id %q", i, r.ID))
		}
		seen[r.ID] = true

		if r.Title != strings.ToUpper(r.Title) {
			errs = append(errs, fmt.Errorf("record %s: title %q is not upper-case", r.ID, r.Title))
		}
		if r.Type != strings.ToUpper(r.Type) {
			errs = append(errs, fmt.Errorf("record %s: type %q is not upper-case", r.ID, r.Type))
		}
		if len(r.Assets) != 0 {
			errs = append(errs, fmt.Errorf("record %s: assets should be empty, got %d", r.ID, len(r.Assets)))
		}
		if i > 0 && synth.Less(r, records[i-1]) {
			prev := records[i-1]
			errs = append(errs, fmt.Errorf("record %s/%s is out of order after %s/%s", r.Year, r.ID, prev.Year, prev.ID))
		}
	}

	if want <= 99 {
		for i := 1; i <= want; i++ {
			id := fmt.Sprintf("%02d", i)
			if !seen[id] {
				errs = append(errs, fmt.Errorf("missing id %q", id))
			}
		}
	}

	return errors.Join(errs...)
}
