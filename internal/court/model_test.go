package court

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOperatingHoursValidate(t *testing.T) {
	tests := []struct {
		name    string
		hours   OperatingHours
		wantErr bool
	}{
		{
			name: "well formed schedule",
			hours: OperatingHours{
				Weekdays: []OperatingWindow{{6, 12, 80}, {12, 22, 150}},
				Weekends: []OperatingWindow{{8, 20, 200}},
			},
		},
		{
			name:  "all groups may be empty",
			hours: OperatingHours{},
		},
		{
			name: "window must end after it starts",
			hours: OperatingHours{
				Weekdays: []OperatingWindow{{10, 10, 100}},
			},
			wantErr: true,
		},
		{
			name: "negative price rejected",
			hours: OperatingHours{
				Weekends: []OperatingWindow{{9, 17, -1}},
			},
			wantErr: true,
		},
		{
			name: "hours outside the day rejected",
			hours: OperatingHours{
				Weekdays: []OperatingWindow{{22, 25, 100}},
			},
			wantErr: true,
		},
		{
			name: "overlapping windows rejected",
			hours: OperatingHours{
				Holidays: []OperatingWindow{{9, 13, 100}, {12, 15, 100}},
			},
			wantErr: true,
		},
		{
			name: "touching windows allowed",
			hours: OperatingHours{
				Weekdays: []OperatingWindow{{9, 12, 100}, {12, 15, 100}},
			},
		},
		{
			name: "fractional bounds allowed",
			hours: OperatingHours{
				Weekdays: []OperatingWindow{{9.5, 11.5, 100}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.hours.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidHours)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestOperatingHoursWindowsOn(t *testing.T) {
	hours := OperatingHours{
		Weekdays: []OperatingWindow{{9, 17, 100}},
		Weekends: []OperatingWindow{{10, 14, 200}},
		Holidays: []OperatingWindow{{11, 13, 300}},
	}

	monday := time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2030, 1, 5, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2030, 1, 6, 0, 0, 0, 0, time.UTC)

	require.Equal(t, hours.Weekdays, hours.WindowsOn(monday, false))
	require.Equal(t, hours.Weekends, hours.WindowsOn(saturday, false))
	require.Equal(t, hours.Weekends, hours.WindowsOn(sunday, false))
	require.Equal(t, hours.Holidays, hours.WindowsOn(monday, true))
	require.Equal(t, hours.Holidays, hours.WindowsOn(saturday, true))
}
