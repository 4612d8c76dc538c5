package domain

var (
	MessageSuccessGetAnalytics = "analytics retrieved successfully"
	MessageFailedGetAnalytics  = "failed to retrieve analytics"
)

type AnalyticsResponse struct {
	TotalBins          int64   `json:"total_bins"`
	AverageFillLevel   float64 `json:"average_fill_level"`
	FullBins           int64   `json:"full_bins"`
	MaintenanceBins    int64   `json:"maintenance_bins"`
	OpenPickups        int64   `json:"open_pickups"`
	AcceptedPickups    int64   `json:"accepted_pickups"`
	RejectedPickups    int64   `json:"rejected_pickups"`
	TotalTransactions  int64   `json:"total_transactions"`
	TotalPointsAwarded int64   `json:"total_points_awarded"`
	RegisteredUsers    int64   `json:"registered_users"`
	PointsFromPickups  int64   `json:"points_from_pickups"`
	PointsFromDeposits int64   `json:"points_from_deposits"`
}
