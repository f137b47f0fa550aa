package draft

import "errors"

var (
	// ErrWorkPackageNotFound indicates the targeted work package is not part
	// of the aggregate.
	ErrWorkPackageNotFound = errors.New("work package not found")

	// ErrTaskNotFound indicates the targeted task is not part of the
	// addressed work package.
	ErrTaskNotFound = errors.New("task not found")

	// ErrDeliverableNotFound indicates the targeted deliverable is not part
	// of the addressed task.
	ErrDeliverableNotFound = errors.New("deliverable not found")

	// ErrMaterialNotFound indicates the targeted material is not part of the
	// addressed work package.
	ErrMaterialNotFound = errors.New("material not found")

	// ErrAllocationNotFound indicates no allocation tuple matches the
	// (user, month, year) key inside the addressed work package.
	ErrAllocationNotFound = errors.New("resource allocation not found")
)
