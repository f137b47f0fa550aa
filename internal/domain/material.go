package domain

import "github.com/shopspring/decimal"

// Material is a budgeted expense line owned by one work package. Unlike the
// other entities it carries a plain numeric identity, allocated locally per
// editing session.
type Material struct {
	ID          int64
	Name        string
	UnitPrice   decimal.Decimal
	Quantity    int
	Category    ExpenseCategory
	Year        int
	Month       int
	Description *string
	Done        bool
}

// Cost returns unit price times quantity at full precision.
func (m *Material) Cost() decimal.Decimal {
	return m.UnitPrice.Mul(decimal.NewFromInt(int64(m.Quantity)))
}
