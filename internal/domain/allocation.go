package domain

import "github.com/shopspring/decimal"

// ResourceAllocation assigns a fraction of one user's monthly capacity to a
// work package. At most one tuple may exist per (user, month, year) within a
// work package; the store does not deduplicate on insert.
type ResourceAllocation struct {
	UserID    string
	Month     int // 1-12
	Year      int
	Occupancy decimal.Decimal
}

// SameKey reports whether two allocations address the same (user, month,
// year) slot.
func (a ResourceAllocation) SameKey(b ResourceAllocation) bool {
	return a.UserID == b.UserID && a.Month == b.Month && a.Year == b.Year
}
