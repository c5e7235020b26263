package maintenance_test

import (
	"gmao/internal/maintenance"
	"gmao/pkg/serrors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseHistoryFilter(t *testing.T) {
	tests := []struct {
		name      string
		chantier  string
		start     string
		end       string
		wantStart time.Time
		wantEnd   time.Time
		wantErr   bool
	}{
		{name: "no bounds", chantier: "Site-A"},
		{
			name:      "date only covers whole days",
			start:     "2024-05-01",
			end:       "2024-05-31",
			wantStart: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 5, 31, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:      "rfc3339 is exact",
			start:     "2024-05-01T10:00:00Z",
			end:       "2024-05-01T12:30:00+02:00",
			wantStart: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
		},
		{name: "only end", end: "2024-01-01", wantEnd: time.Date(2024, 1, 1, 23, 59, 59, 999999999, time.UTC)},
		{name: "garbage start", start: "yesterday", wantErr: true},
		{name: "garbage end", end: "05/01/2024", wantErr: true},
		{name: "inverted range", start: "2024-05-02", end: "2024-05-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := maintenance.ParseHistoryFilter(tt.chantier, tt.start, tt.end)
			if tt.wantErr {
				require.Error(t, err)
				kind, _ := serrors.KindOf(err)
				require.Equal(t, serrors.ErrBadRequest, kind)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.chantier, f.Chantier)
			require.True(t, tt.wantStart.Equal(f.Start), "start %v", f.Start)
			require.True(t, tt.wantEnd.Equal(f.End), "end %v", f.End)
		})
	}
}
