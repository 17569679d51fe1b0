package domain

type DashboardStats struct {
	TotalRequests           int64 `json:"total_requests"`
	PendingRequests         int64 `json:"pending_requests"`
	CriticalPendingRequests int64 `json:"critical_pending_requests"`
	TotalResources          int64 `json:"total_resources"`
	AvailableResources      int64 `json:"available_resources"`
	AllocatedResources      int64 `json:"allocated_resources"`
	TotalVolunteers         int64 `json:"total_volunteers"`
	ActiveVolunteers        int64 `json:"active_volunteers"`
}

type ResourceDistribution struct {
	Type          string `json:"type" db:"type"`
	TotalQuantity int64  `json:"total_quantity" db:"total_quantity"`
	Count         int64  `json:"count" db:"count"`
}
