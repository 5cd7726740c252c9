package domain

type DashboardTotals struct {
	Articles          int64 `json:"articles"`
	PublishedArticles int64 `json:"publishedArticles"`
	Products          int64 `json:"products"`
	UpcomingMatches   int64 `json:"upcomingMatches"`
	PendingComments   int64 `json:"pendingComments"`
	PendingOrders     int64 `json:"pendingOrders"`
	NewVolunteers     int64 `json:"newVolunteers"`
	NewSubscribers    int64 `json:"newSubscribers"`
}

type DashboardSnapshot struct {
	Totals            DashboardTotals
	RevenueLast30Days int64
	RecentOrders      []*Order
	LowStockVariants  []*ProductVariant
}
