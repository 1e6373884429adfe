package store

import (
	"time"

	"leasetrack/internal/model"
)

func seedDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SeedEntries is the built-in dataset used when a workspace has no
// persisted entries (or the persisted payload cannot be parsed).
func SeedEntries() []model.Entry {
	return []model.Entry{
		{
			ID:           "ent-seed0001",
			Week:         23,
			Date:         seedDate(2025, time.June, 2),
			TenantName:   "Amina Yusuf",
			BusinessName: "Savannah Fresh Produce",
			BusinessType: "Grocery",
			Contact:      "+255 712 000 111",
			Notes:        "Asked about a corner unit",
			Status:       "Viewing booked",
		},
		{
			ID:           "ent-seed0002",
			Week:         23,
			Date:         seedDate(2025, time.June, 4),
			TenantName:   "Joseph Mrema",
			BusinessName: "Kilima Coffee House",
			BusinessType: "Cafe",
			Contact:      "jmrema@example.com",
			Status:       "Negotiating",
		},
		{
			ID:           "ent-seed0003",
			Week:         24,
			Date:         seedDate(2025, time.June, 9),
			TenantName:   "Grace Ndossi",
			BusinessName: "Ndossi Tailoring",
			BusinessType: "Clothing",
			Contact:      "+255 713 222 333",
			Notes:        "Needs power for 6 machines",
			Status:       "Signed",
		},
		{
			ID:           "ent-seed0004",
			Week:         25,
			Date:         seedDate(2025, time.June, 16),
			TenantName:   "Hassan Mollel",
			BusinessName: "Mollel Electronics",
			BusinessType: "Electronics",
			Contact:      "hassan.m@example.com",
			Status:       "Waitlisted",
		},
		{
			ID:           "ent-seed0005",
			Week:         26,
			Date:         seedDate(2025, time.June, 23),
			TenantName:   "Neema Kway",
			BusinessName: "Kway Books & Stationery",
			BusinessType: "Retail",
			Contact:      "+255 714 444 555",
			Notes:        "Second branch",
			Status:       "Viewing booked",
		},
	}
}
