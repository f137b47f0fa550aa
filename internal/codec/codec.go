package codec

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vasco-fernandes21/starsoftflow/internal/domain"
)

const dateLayout = "2006-01-02"

// Encode serializes the aggregate to its JSON-safe form.
func Encode(p *domain.Project) ([]byte, error) {
	doc := projectToDoc(p)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding project: %w", err)
	}
	return data, nil
}

// Decode restores an aggregate from its JSON-safe form.
func Decode(data []byte) (*domain.Project, error) {
	var doc ProjectDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding project: %w", err)
	}
	return docToProject(&doc)
}

// EncodeSnapshot serializes an approved snapshot.
func EncodeSnapshot(s *domain.ApprovedSnapshot) ([]byte, error) {
	doc := SnapshotDoc{
		ProjectID:  s.ProjectID,
		ApprovedAt: s.ApprovedAt.UTC().Format(time.RFC3339),
		Project:    projectToDoc(&s.Project),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot restores an approved snapshot.
func DecodeSnapshot(data []byte) (*domain.ApprovedSnapshot, error) {
	var doc SnapshotDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	approvedAt, err := time.Parse(time.RFC3339, doc.ApprovedAt)
	if err != nil {
		return nil, fmt.Errorf("decoding snapshot approved_at: %w", err)
	}
	p, err := docToProject(&doc.Project)
	if err != nil {
		return nil, err
	}
	return &domain.ApprovedSnapshot{
		ProjectID:  doc.ProjectID,
		ApprovedAt: approvedAt.UTC(),
		Project:    *p,
	}, nil
}

func projectToDoc(p *domain.Project) ProjectDoc {
	doc := ProjectDoc{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		StartDate:       dateToStr(p.StartDate),
		EndDate:         dateToStr(p.EndDate),
		Overhead:        decToStr(p.Overhead),
		FundingRate:     decToStr(p.FundingRate),
		HourlyRate:      decToStr(p.HourlyRate),
		FundingSourceID: p.FundingSourceID,
		ResponsibleID:   p.ResponsibleID,
		State:           string(p.State),
		WorkPackages:    make([]WorkPackageDoc, 0, len(p.WorkPackages)),
		CreatedAt:       timestampToStr(p.CreatedAt),
		UpdatedAt:       timestampToStr(p.UpdatedAt),
	}
	for i := range p.WorkPackages {
		doc.WorkPackages = append(doc.WorkPackages, workPackageToDoc(&p.WorkPackages[i]))
	}
	return doc
}

func workPackageToDoc(w *domain.WorkPackage) WorkPackageDoc {
	doc := WorkPackageDoc{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		StartDate:   dateToStr(w.StartDate),
		EndDate:     dateToStr(w.EndDate),
		Done:        w.Done,
		Tasks:       make([]TaskDoc, 0, len(w.Tasks)),
		Materials:   make([]MaterialDoc, 0, len(w.Materials)),
		Allocations: make([]AllocationDoc, 0, len(w.Allocations)),
	}
	for i := range w.Tasks {
		t := &w.Tasks[i]
		td := TaskDoc{
			ID:           t.ID,
			Name:         t.Name,
			Description:  t.Description,
			StartDate:    dateToStr(t.StartDate),
			EndDate:      dateToStr(t.EndDate),
			Done:         t.Done,
			Deliverables: make([]DeliverableDoc, 0, len(t.Deliverables)),
		}
		for j := range t.Deliverables {
			d := &t.Deliverables[j]
			td.Deliverables = append(td.Deliverables, DeliverableDoc{
				ID:           d.ID,
				Name:         d.Name,
				Description:  d.Description,
				DueDate:      dateToStr(d.DueDate),
				Done:         d.Done,
				AttachmentID: d.AttachmentID,
			})
		}
		doc.Tasks = append(doc.Tasks, td)
	}
	for i := range w.Materials {
		m := &w.Materials[i]
		doc.Materials = append(doc.Materials, MaterialDoc{
			ID:          m.ID,
			Name:        m.Name,
			UnitPrice:   m.UnitPrice.String(),
			Quantity:    m.Quantity,
			Category:    string(m.Category),
			Year:        m.Year,
			Month:       m.Month,
			Description: m.Description,
			Done:        m.Done,
		})
	}
	for i := range w.Allocations {
		a := &w.Allocations[i]
		doc.Allocations = append(doc.Allocations, AllocationDoc{
			UserID:    a.UserID,
			Month:     a.Month,
			Year:      a.Year,
			Occupancy: a.Occupancy.String(),
		})
	}
	return doc
}

func docToProject(doc *ProjectDoc) (*domain.Project, error) {
	p := &domain.Project{
		ID:              doc.ID,
		Name:            doc.Name,
		Description:     doc.Description,
		FundingSourceID: doc.FundingSourceID,
		ResponsibleID:   doc.ResponsibleID,
		State:           domain.ProjectState(doc.State),
		WorkPackages:    make([]domain.WorkPackage, 0, len(doc.WorkPackages)),
	}
	var err error
	if p.StartDate, err = strToDate(doc.StartDate); err != nil {
		return nil, err
	}
	if p.EndDate, err = strToDate(doc.EndDate); err != nil {
		return nil, err
	}
	if p.Overhead, err = strToDec(doc.Overhead); err != nil {
		return nil, err
	}
	if p.FundingRate, err = strToDec(doc.FundingRate); err != nil {
		return nil, err
	}
	if p.HourlyRate, err = strToDec(doc.HourlyRate); err != nil {
		return nil, err
	}
	if p.CreatedAt, err = strToTimestamp(doc.CreatedAt); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = strToTimestamp(doc.UpdatedAt); err != nil {
		return nil, err
	}
	for i := range doc.WorkPackages {
		wp, err := docToWorkPackage(&doc.WorkPackages[i])
		if err != nil {
			return nil, err
		}
		p.WorkPackages = append(p.WorkPackages, wp)
	}
	return p, nil
}

func docToWorkPackage(doc *WorkPackageDoc) (domain.WorkPackage, error) {
	w := domain.WorkPackage{
		ID:          doc.ID,
		Name:        doc.Name,
		Description: doc.Description,
		Done:        doc.Done,
		Tasks:       make([]domain.Task, 0, len(doc.Tasks)),
		Materials:   make([]domain.Material, 0, len(doc.Materials)),
		Allocations: make([]domain.ResourceAllocation, 0, len(doc.Allocations)),
	}
	var err error
	if w.StartDate, err = strToDate(doc.StartDate); err != nil {
		return w, err
	}
	if w.EndDate, err = strToDate(doc.EndDate); err != nil {
		return w, err
	}
	for i := range doc.Tasks {
		td := &doc.Tasks[i]
		t := domain.Task{
			ID:           td.ID,
			Name:         td.Name,
			Description:  td.Description,
			Done:         td.Done,
			Deliverables: make([]domain.Deliverable, 0, len(td.Deliverables)),
		}
		if t.StartDate, err = strToDate(td.StartDate); err != nil {
			return w, err
		}
		if t.EndDate, err = strToDate(td.EndDate); err != nil {
			return w, err
		}
		for j := range td.Deliverables {
			dd := &td.Deliverables[j]
			d := domain.Deliverable{
				ID:           dd.ID,
				Name:         dd.Name,
				Description:  dd.Description,
				Done:         dd.Done,
				AttachmentID: dd.AttachmentID,
			}
			if d.DueDate, err = strToDate(dd.DueDate); err != nil {
				return w, err
			}
			t.Deliverables = append(t.Deliverables, d)
		}
		w.Tasks = append(w.Tasks, t)
	}
	for i := range doc.Materials {
		md := &doc.Materials[i]
		price, err := decimal.NewFromString(md.UnitPrice)
		if err != nil {
			return w, fmt.Errorf("material %d: invalid unit price %q", md.ID, md.UnitPrice)
		}
		w.Materials = append(w.Materials, domain.Material{
			ID:          md.ID,
			Name:        md.Name,
			UnitPrice:   price,
			Quantity:    md.Quantity,
			Category:    domain.ExpenseCategory(md.Category),
			Year:        md.Year,
			Month:       md.Month,
			Description: md.Description,
			Done:        md.Done,
		})
	}
	for i := range doc.Allocations {
		ad := &doc.Allocations[i]
		occ, err := decimal.NewFromString(ad.Occupancy)
		if err != nil {
			return w, fmt.Errorf("allocation %s %d/%d: invalid occupancy %q", ad.UserID, ad.Month, ad.Year, ad.Occupancy)
		}
		w.Allocations = append(w.Allocations, domain.ResourceAllocation{
			UserID:    ad.UserID,
			Month:     ad.Month,
			Year:      ad.Year,
			Occupancy: occ,
		})
	}
	return w, nil
}

func dateToStr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(dateLayout)
	return &s
}

func strToDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", *s, err)
	}
	t = t.UTC()
	return &t, nil
}

func timestampToStr(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func strToTimestamp(s *string) (time.Time, error) {
	if s == nil {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", *s, err)
	}
	return t.UTC(), nil
}

func decToStr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func strToDec(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, fmt.Errorf("invalid decimal %q: %w", *s, err)
	}
	return &d, nil
}
