package maintenance

import (
	"gmao/pkg/domain"
	"gmao/pkg/serrors"
	"time"
)

const dateLayout = time.DateOnly

// ParseHistoryFilter builds a history filter from raw query values. Dates
// are either YYYY-MM-DD, covering the whole UTC day, or RFC 3339 instants
// used as exact bounds. Empty values disable the matching bound.
func ParseHistoryFilter(chantier, start, end string) (domain.HistoryFilter, error) {
	filter := domain.HistoryFilter{Chantier: chantier}

	if start != "" {
		t, _, err := parseBound(start)
		if err != nil {
			return domain.HistoryFilter{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid start_date")
		}
		filter.Start = t
	}

	if end != "" {
		t, dateOnly, err := parseBound(end)
		if err != nil {
			return domain.HistoryFilter{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid end_date")
		}
		if dateOnly {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		filter.End = t
	}

	if !filter.Start.IsZero() && !filter.End.IsZero() && filter.End.Before(filter.Start) {
		return domain.HistoryFilter{}, serrors.With(serrors.ErrBadRequest, "end_date is before start_date")
	}

	return filter, nil
}

func parseBound(v string) (time.Time, bool, error) {
	if t, err := time.ParseInLocation(dateLayout, v, time.UTC); err == nil {
		return t, true, nil
	}

	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, false, err //nolint: wrapcheck
	}

	return t, false, nil
}
