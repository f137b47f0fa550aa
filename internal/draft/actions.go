package draft

// Edit actions form a closed set of tagged variants dispatched through Apply.
// Each carries a strongly typed payload; there is no generic map-shaped
// action.

// Action is implemented only by the action types in this package.
type Action interface {
	isAction()
}

// WorkPackageInput carries the raw field values for a new work package.
// Dates are date-like strings; empty optional fields collapse to nil.
type WorkPackageInput struct {
	Name        string
	Description string
	StartDate   string
	EndDate     string
}

// WorkPackagePatch carries a partial update. Nil fields are left untouched;
// a present-but-empty date or description clears the stored value.
type WorkPackagePatch struct {
	Name        *string
	Description *string
	StartDate   *string
	EndDate     *string
	Done        *bool
}

type TaskInput struct {
	Name        string
	Description string
	StartDate   string
	EndDate     string
}

type TaskPatch struct {
	Name        *string
	Description *string
	StartDate   *string
	EndDate     *string
	Done        *bool
}

type DeliverableInput struct {
	Name         string
	Description  string
	DueDate      string
	AttachmentID string
}

type DeliverablePatch struct {
	Name         *string
	Description  *string
	DueDate      *string
	AttachmentID *string
	Done         *bool
}

// MaterialInput carries the raw field values for a new material. UnitPrice is
// a decimal string preserved at full precision.
type MaterialInput struct {
	Name        string
	UnitPrice   string
	Quantity    int
	Category    string
	Year        int
	Month       int
	Description string
}

type MaterialPatch struct {
	Name        *string
	UnitPrice   *string
	Quantity    *int
	Category    *string
	Year        *int
	Month       *int
	Description *string
	Done        *bool
}

// AllocationInput carries one (user, month, year, occupancy) tuple.
// Occupancy is a decimal string.
type AllocationInput struct {
	UserID    string
	Month     int
	Year      int
	Occupancy string
}

type AddWorkPackage struct{ Input WorkPackageInput }

type UpdateWorkPackage struct {
	ID    string
	Patch WorkPackagePatch
}

type RemoveWorkPackage struct{ ID string }

type AddTask struct {
	WorkPackageID string
	Input         TaskInput
}

type UpdateTask struct {
	WorkPackageID string
	TaskID        string
	Patch         TaskPatch
}

type RemoveTask struct {
	WorkPackageID string
	TaskID        string
}

type AddDeliverable struct {
	WorkPackageID string
	TaskID        string
	Input         DeliverableInput
}

type UpdateDeliverable struct {
	WorkPackageID string
	TaskID        string
	DeliverableID string
	Patch         DeliverablePatch
}

type RemoveDeliverable struct {
	WorkPackageID string
	TaskID        string
	DeliverableID string
}

type AddMaterial struct {
	WorkPackageID string
	Input         MaterialInput
}

type UpdateMaterial struct {
	WorkPackageID string
	MaterialID    int64
	Patch         MaterialPatch
}

type RemoveMaterial struct {
	WorkPackageID string
	MaterialID    int64
}

type AddResourceAllocation struct {
	WorkPackageID string
	Input         AllocationInput
}

// UpdateResourceAllocation replaces the occupancy of the unique tuple
// matching all four keys. It never creates a tuple.
type UpdateResourceAllocation struct {
	WorkPackageID string
	UserID        string
	Month         int
	Year          int
	Occupancy     string
}

// RemoveUserAllocations removes every allocation tuple for the user within
// the work package, regardless of month and year.
type RemoveUserAllocations struct {
	WorkPackageID string
	UserID        string
}

func (AddWorkPackage) isAction()           {}
func (UpdateWorkPackage) isAction()        {}
func (RemoveWorkPackage) isAction()        {}
func (AddTask) isAction()                  {}
func (UpdateTask) isAction()               {}
func (RemoveTask) isAction()               {}
func (AddDeliverable) isAction()           {}
func (UpdateDeliverable) isAction()        {}
func (RemoveDeliverable) isAction()        {}
func (AddMaterial) isAction()              {}
func (UpdateMaterial) isAction()           {}
func (RemoveMaterial) isAction()           {}
func (AddResourceAllocation) isAction()    {}
func (UpdateResourceAllocation) isAction() {}
func (RemoveUserAllocations) isAction()    {}
