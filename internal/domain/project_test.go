package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y, m, d int) *time.Time {
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestValidatePeriod_Ordered(t *testing.T) {
	p := &Project{StartDate: date(2025, 1, 1), EndDate: date(2025, 12, 31)}
	assert.NoError(t, p.ValidatePeriod())
}

func TestValidatePeriod_EndBeforeStart(t *testing.T) {
	p := &Project{StartDate: date(2025, 6, 1), EndDate: date(2025, 1, 1)}
	err := p.ValidatePeriod()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after start date")
}

func TestValidatePeriod_EndEqualsStart(t *testing.T) {
	p := &Project{StartDate: date(2025, 6, 1), EndDate: date(2025, 6, 1)}
	assert.Error(t, p.ValidatePeriod(), "end must be strictly after start")
}

func TestValidatePeriod_UnsetDates(t *testing.T) {
	assert.NoError(t, (&Project{}).ValidatePeriod())
	assert.NoError(t, (&Project{StartDate: date(2025, 1, 1)}).ValidatePeriod())
}

func TestProjectProgress(t *testing.T) {
	p := &Project{WorkPackages: []WorkPackage{
		{Tasks: []Task{{Done: true}, {Done: false}}},
		{Tasks: []Task{{Done: true}, {Done: true}}},
	}}
	assert.True(t, p.Progress().Equal(decimal.RequireFromString("0.75")))
}

func TestProjectProgress_NoTasks(t *testing.T) {
	p := &Project{WorkPackages: []WorkPackage{{Name: "WP1"}}}
	assert.True(t, p.Progress().IsZero())
}

func TestWorkPackageByID(t *testing.T) {
	p := &Project{WorkPackages: []WorkPackage{{ID: "a"}, {ID: "b"}}}
	require.NotNil(t, p.WorkPackageByID("b"))
	assert.Equal(t, "b", p.WorkPackageByID("b").ID)
	assert.Nil(t, p.WorkPackageByID("missing"))
}
