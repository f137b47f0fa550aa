package phase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vasco-fernandes21/starsoftflow/internal/domain"
)

func datePtr(y, m, d int) *time.Time {
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return &t
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func completeProject() *domain.Project {
	return &domain.Project{
		Name:            "Alpha",
		StartDate:       datePtr(2025, 1, 1),
		EndDate:         datePtr(2025, 12, 31),
		Overhead:        decPtr("0.2"),
		FundingRate:     decPtr("0.85"),
		HourlyRate:      decPtr("30.5"),
		FundingSourceID: domain.StrPtr("fs1"),
		WorkPackages: []domain.WorkPackage{{
			ID:   "wp1",
			Name: "WP1",
			Allocations: []domain.ResourceAllocation{
				{UserID: "u1", Month: 1, Year: 2025, Occupancy: decimal.RequireFromString("0.5")},
			},
		}},
	}
}

func TestEvaluate_AllComplete(t *testing.T) {
	c := Evaluate(completeProject())
	assert.True(t, c.BasicInfo)
	assert.True(t, c.Finance)
	assert.True(t, c.Structure)
	assert.True(t, c.Resources)
	assert.True(t, c.Summary)
	assert.Empty(t, c.Incomplete())
}

func TestEvaluate_SpecScenario(t *testing.T) {
	// Named project with a valid period and one bare work package: structure
	// holds, finance and resources do not.
	p := &domain.Project{
		Name:         "Alpha",
		StartDate:    datePtr(2025, 1, 1),
		EndDate:      datePtr(2025, 6, 30),
		WorkPackages: []domain.WorkPackage{{ID: "wp1", Name: "WP1"}},
	}
	c := Evaluate(p)
	assert.True(t, c.BasicInfo)
	assert.False(t, c.Finance)
	assert.True(t, c.Structure)
	assert.False(t, c.Resources)
	assert.False(t, c.Summary)
	assert.Equal(t, []Phase{PhaseFinance, PhaseResources}, c.Incomplete())
}

func TestEvaluate_BasicInfo(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*domain.Project)
		want bool
	}{
		{"complete", func(p *domain.Project) {}, true},
		{"empty name", func(p *domain.Project) { p.Name = "" }, false},
		{"missing start", func(p *domain.Project) { p.StartDate = nil }, false},
		{"missing end", func(p *domain.Project) { p.EndDate = nil }, false},
		{"end equals start", func(p *domain.Project) { p.EndDate = p.StartDate }, false},
		{"end before start", func(p *domain.Project) {
			p.EndDate = datePtr(2024, 1, 1)
		}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := completeProject()
			tc.mut(p)
			assert.Equal(t, tc.want, Evaluate(p).BasicInfo)
		})
	}
}

func TestEvaluate_FinanceNeedsEveryField(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*domain.Project)
	}{
		{"no overhead", func(p *domain.Project) { p.Overhead = nil }},
		{"no funding rate", func(p *domain.Project) { p.FundingRate = nil }},
		{"no hourly rate", func(p *domain.Project) { p.HourlyRate = nil }},
		{"no funding source", func(p *domain.Project) { p.FundingSourceID = nil }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := completeProject()
			tc.mut(p)
			c := Evaluate(p)
			assert.False(t, c.Finance)
			assert.False(t, c.Summary)
		})
	}
}

func TestEvaluate_ResourcesNeedAnyAllocation(t *testing.T) {
	p := completeProject()
	p.WorkPackages[0].Allocations = nil
	c := Evaluate(p)
	assert.True(t, c.Structure)
	assert.False(t, c.Resources)

	// An allocation on any work package suffices.
	p.WorkPackages = append(p.WorkPackages, domain.WorkPackage{
		ID: "wp2",
		Allocations: []domain.ResourceAllocation{
			{UserID: "u2", Month: 3, Year: 2025, Occupancy: decimal.New(1, 0)},
		},
	})
	assert.True(t, Evaluate(p).Resources)
}

func TestEvaluate_EmptyProject(t *testing.T) {
	c := Evaluate(&domain.Project{})
	assert.False(t, c.BasicInfo)
	assert.False(t, c.Finance)
	assert.False(t, c.Structure)
	assert.False(t, c.Resources)
	assert.False(t, c.Summary)
	assert.Len(t, c.Incomplete(), 4)
}
