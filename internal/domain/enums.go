package domain

type ProjectState string

const (
	ProjectDraft     ProjectState = "draft"
	ProjectPending   ProjectState = "pending"
	ProjectApproved  ProjectState = "approved"
	ProjectRejected  ProjectState = "rejected"
	ProjectCompleted ProjectState = "completed"
)

type ExpenseCategory string

const (
	CategoryMaterials   ExpenseCategory = "materials"
	CategorySubcontract ExpenseCategory = "subcontract"
	CategoryTravel      ExpenseCategory = "travel"
	CategoryOverheads   ExpenseCategory = "overheads"
	CategoryOther       ExpenseCategory = "other"
)

// ValidExpenseCategories is the canonical set of accepted category strings.
var ValidExpenseCategories = map[string]bool{
	"materials": true, "subcontract": true, "travel": true,
	"overheads": true, "other": true,
}

// ViewMode selects between the live project and its approved snapshot.
type ViewMode string

const (
	ViewReal      ViewMode = "real"
	ViewSubmitted ViewMode = "submitted"
)
