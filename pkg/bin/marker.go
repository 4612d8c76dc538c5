package bin

import (
	"remat-backend/domain"
)

// Marker colors used by map clients. Precedence: maintenance beats fill
// level, fill level beats selection, selection beats the start marker.
const (
	MarkerGrey   = "grey"
	MarkerRed    = "red"
	MarkerBlue   = "blue"
	MarkerOrange = "orange"
	MarkerGreen  = "green"

	// pseudo status for the admin's own position on route maps
	StatusStart = "start"
)

func MarkerColor(status string, fillLevel int, selected bool) string {
	switch {
	case status == domain.BinStatusMaintenance:
		return MarkerGrey
	case fillLevel >= domain.BinFullThreshold || status == domain.BinStatusFull:
		return MarkerRed
	case selected:
		return MarkerBlue
	case status == StatusStart:
		return MarkerOrange
	default:
		return MarkerGreen
	}
}
