package bin

import (
	"testing"

	"remat-backend/domain"
)

func TestMarkerColor(t *testing.T) {
	tests := []struct {
		name      string
		status    string
		fillLevel int
		selected  bool
		want      string
	}{
		{"active bin", domain.BinStatusActive, 10, false, MarkerGreen},
		{"maintenance wins over fill level", domain.BinStatusMaintenance, 95, true, MarkerGrey},
		{"full status", domain.BinStatusFull, 50, false, MarkerRed},
		{"fill level at threshold", domain.BinStatusActive, 90, false, MarkerRed},
		{"fill level just below threshold", domain.BinStatusActive, 89, false, MarkerGreen},
		{"fill level wins over selection", domain.BinStatusActive, 95, true, MarkerRed},
		{"selected active bin", domain.BinStatusActive, 10, true, MarkerBlue},
		{"start marker", StatusStart, 0, false, MarkerOrange},
		{"selection wins over start", StatusStart, 0, true, MarkerBlue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarkerColor(tt.status, tt.fillLevel, tt.selected)
			if got != tt.want {
				t.Errorf("MarkerColor(%q, %d, %v) = %q, want %q", tt.status, tt.fillLevel, tt.selected, got, tt.want)
			}
		})
	}
}
