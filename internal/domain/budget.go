package domain

import "github.com/shopspring/decimal"

// BudgetSummary aggregates material costs at full decimal precision.
type BudgetSummary struct {
	Total      decimal.Decimal
	ByCategory map[ExpenseCategory]decimal.Decimal
}

// WorkPackageBudget sums the material costs of one work package.
func WorkPackageBudget(w *WorkPackage) BudgetSummary {
	s := BudgetSummary{
		Total:      decimal.Zero,
		ByCategory: make(map[ExpenseCategory]decimal.Decimal),
	}
	for i := range w.Materials {
		cost := w.Materials[i].Cost()
		s.Total = s.Total.Add(cost)
		cat := w.Materials[i].Category
		s.ByCategory[cat] = s.ByCategory[cat].Add(cost)
	}
	return s
}

// ProjectBudget sums material costs across all work packages of a project.
func ProjectBudget(p *Project) BudgetSummary {
	s := BudgetSummary{
		Total:      decimal.Zero,
		ByCategory: make(map[ExpenseCategory]decimal.Decimal),
	}
	for i := range p.WorkPackages {
		wp := WorkPackageBudget(&p.WorkPackages[i])
		s.Total = s.Total.Add(wp.Total)
		for cat, v := range wp.ByCategory {
			s.ByCategory[cat] = s.ByCategory[cat].Add(v)
		}
	}
	return s
}
