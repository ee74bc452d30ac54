package prompts

import (
	"fmt"
	"time"
)

// DateLayout is the YYYY-MM-DD layout used for all prompt dates
const DateLayout = "2006-01-02"

// DefaultLookbackMonths is how far back the default range starts
const DefaultLookbackMonths = 3

// DateRange resolves a reporting range. An empty end defaults to the day of now and an
// empty start defaults to the first day of the month DefaultLookbackMonths before now.
// Supplied values must use DateLayout and start must not fall after end.
func DateRange(start, end string, now time.Time) (string, string, error) {
	if end == "" {
		end = now.Format(DateLayout)
	}
	if start == "" {
		first := time.Date(now.Year(), now.Month()-DefaultLookbackMonths, 1, 0, 0, 0, 0, now.Location())
		start = first.Format(DateLayout)
	}

	startTime, err := time.Parse(DateLayout, start)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s must be YYYY-MM-DD, got %q", ErrInvalidArgument, ArgStartDate, start)
	}
	endTime, err := time.Parse(DateLayout, end)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s must be YYYY-MM-DD, got %q", ErrInvalidArgument, ArgEndDate, end)
	}
	if startTime.After(endTime) {
		return "", "", fmt.Errorf("%w: %s %s is after %s %s", ErrInvalidArgument, ArgStartDate, start, ArgEndDate, end)
	}

	return start, end, nil
}
