// Package codec serializes the project aggregate to a transport-safe JSON
// form and back: dates become ISO-8601 strings, decimals become decimal
// strings. Draft persistence and snapshot storage both ride on it.
package codec

// ProjectDoc is the top-level JSON structure for a serialized aggregate.
type ProjectDoc struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Description     *string          `json:"description,omitempty"`
	StartDate       *string          `json:"start_date,omitempty"`
	EndDate         *string          `json:"end_date,omitempty"`
	Overhead        *string          `json:"overhead,omitempty"`
	FundingRate     *string          `json:"funding_rate,omitempty"`
	HourlyRate      *string          `json:"hourly_rate,omitempty"`
	FundingSourceID *string          `json:"funding_source_id,omitempty"`
	ResponsibleID   *string          `json:"responsible_id,omitempty"`
	State           string           `json:"state"`
	WorkPackages    []WorkPackageDoc `json:"work_packages"`
	CreatedAt       *string          `json:"created_at,omitempty"`
	UpdatedAt       *string          `json:"updated_at,omitempty"`
}

type WorkPackageDoc struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	StartDate   *string         `json:"start_date,omitempty"`
	EndDate     *string         `json:"end_date,omitempty"`
	Done        bool            `json:"done"`
	Tasks       []TaskDoc       `json:"tasks"`
	Materials   []MaterialDoc   `json:"materials"`
	Allocations []AllocationDoc `json:"allocations"`
}

type TaskDoc struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Description  *string          `json:"description,omitempty"`
	StartDate    *string          `json:"start_date,omitempty"`
	EndDate      *string          `json:"end_date,omitempty"`
	Done         bool             `json:"done"`
	Deliverables []DeliverableDoc `json:"deliverables"`
}

type DeliverableDoc struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	DueDate      *string `json:"due_date,omitempty"`
	Done         bool    `json:"done"`
	AttachmentID *string `json:"attachment_id,omitempty"`
}

type MaterialDoc struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	UnitPrice   string  `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	Category    string  `json:"category"`
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	Description *string `json:"description,omitempty"`
	Done        bool    `json:"done"`
}

type AllocationDoc struct {
	UserID    string `json:"user_id"`
	Month     int    `json:"month"`
	Year      int    `json:"year"`
	Occupancy string `json:"occupancy"`
}

// SnapshotDoc wraps an approved snapshot for storage.
type SnapshotDoc struct {
	ProjectID  string     `json:"project_id"`
	ApprovedAt string     `json:"approved_at"`
	Project    ProjectDoc `json:"project"`
}
