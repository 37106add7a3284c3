package models

type LocationAnalytics struct {
	StoreID          string `json:"store_id"`
	Location         string `json:"location"`
	ViewCount        int    `json:"view_count"`
	Date             string `json:"date"` // YYYY-MM-DD
	ReservationCount int    `json:"reservation_count"`
}

type LocationTotals struct {
	Location          string `json:"location"`
	TotalViews        int    `json:"total_views"`
	TotalReservations int    `json:"total_reservations"`
}

type AnalyticsSummary struct {
	StoreID           string              `json:"store_id"`
	TotalViews        int                 `json:"total_views"`
	TotalReservations int                 `json:"total_reservations"`
	Locations         []LocationTotals    `json:"locations"`
	Records           []LocationAnalytics `json:"records"`
}

// SummarizeAnalytics folds records into per-location totals, keeping the
// order in which each location first appears.
func SummarizeAnalytics(storeID string, records []LocationAnalytics) AnalyticsSummary {
	sum := AnalyticsSummary{
		StoreID:   storeID,
		Locations: []LocationTotals{},
		Records:   records,
	}
	if sum.Records == nil {
		sum.Records = []LocationAnalytics{}
	}
	index := make(map[string]int)
	for _, r := range records {
		sum.TotalViews += r.ViewCount
		sum.TotalReservations += r.ReservationCount

		i, ok := index[r.Location]
		if !ok {
			i = len(sum.Locations)
			index[r.Location] = i
			sum.Locations = append(sum.Locations, LocationTotals{Location: r.Location})
		}
		sum.Locations[i].TotalViews += r.ViewCount
		sum.Locations[i].TotalReservations += r.ReservationCount
	}
	return sum
}
