package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestResourceAllocationSameKey(t *testing.T) {
	base := ResourceAllocation{UserID: "u1", Month: 3, Year: 2025, Occupancy: decimal.RequireFromString("0.5")}

	tests := []struct {
		name  string
		other ResourceAllocation
		want  bool
	}{
		{"identical tuple", ResourceAllocation{UserID: "u1", Month: 3, Year: 2025}, true},
		{"occupancy is not part of the key", ResourceAllocation{UserID: "u1", Month: 3, Year: 2025, Occupancy: decimal.NewFromInt(1)}, true},
		{"different user", ResourceAllocation{UserID: "u2", Month: 3, Year: 2025}, false},
		{"different month", ResourceAllocation{UserID: "u1", Month: 4, Year: 2025}, false},
		{"different year", ResourceAllocation{UserID: "u1", Month: 3, Year: 2024}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.SameKey(tc.other))
		})
	}
}
