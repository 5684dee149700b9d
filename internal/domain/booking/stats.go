// internal/domain/booking/stats.go
package booking

import "sort"

// RankEntry is one row of a top-N ranking (tour or user by paid bookings).
type RankEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Stats is the admin dashboard aggregate over all bookings.
type Stats struct {
	TotalBookings int                `json:"totalBookings"`
	TotalPaid     int                `json:"totalPaid"`
	TotalRevenue  float64            `json:"totalRevenue"`
	RevenueByDate map[string]float64 `json:"revenueByDate"`
	TopTours      []RankEntry        `json:"topTours"`
	TopUsers      []RankEntry        `json:"topUsers"`
}

const topN = 5

// ComputeStats aggregates bookings the way the admin dashboard expects:
// only paid bookings count toward revenue, revenue is bucketed per UTC day,
// and tours/users are ranked by number of paid bookings (top 5).
func ComputeStats(bookings []Booking) Stats {
	s := Stats{RevenueByDate: map[string]float64{}}
	tourCounts := map[string]int{}
	userCounts := map[string]int{}

	for _, b := range bookings {
		s.TotalBookings++
		if b.Status != StatusPaid {
			continue
		}
		s.TotalPaid++

		price := b.Price()
		s.TotalRevenue += price
		if !b.CreatedAt.IsZero() {
			date := b.CreatedAt.UTC().Format("2006-01-02")
			s.RevenueByDate[date] += price
		}

		tourCounts[b.TourID]++
		userCounts[b.UserID]++
	}

	s.TopTours = topEntries(tourCounts)
	s.TopUsers = topEntries(userCounts)
	return s
}

func topEntries(counts map[string]int) []RankEntry {
	entries := make([]RankEntry, 0, len(counts))
	for k, c := range counts {
		entries = append(entries, RankEntry{Key: k, Count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})
	if len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}
