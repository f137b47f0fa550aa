package draft

import (
	"github.com/google/uuid"

	"github.com/vasco-fernandes21/starsoftflow/internal/domain"
)

// NewEntityID returns a fresh identity for work packages, tasks and
// deliverables created before server persistence.
func NewEntityID() string {
	return uuid.New().String()
}

// nextMaterialID allocates the next material identity for the aggregate.
// Materials use a plain counter instead of UUIDs: one more than the highest
// identity currently in use anywhere in the project.
func nextMaterialID(p *domain.Project) int64 {
	var max int64
	for i := range p.WorkPackages {
		for j := range p.WorkPackages[i].Materials {
			if id := p.WorkPackages[i].Materials[j].ID; id > max {
				max = id
			}
		}
	}
	return max + 1
}
