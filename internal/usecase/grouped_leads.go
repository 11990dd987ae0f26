package usecase

import (
	"errors"
	"strings"

	"github.com/cazeai/bizcon-outreach/internal/entity"
	"github.com/cazeai/bizcon-outreach/internal/infra/store"
)

const unknownSource = "Unknown"

type GroupedLeadsUseCase struct {
	Leads LeadStoreInterface
}

func NewGroupedLeadsUseCase(leads LeadStoreInterface) *GroupedLeadsUseCase {
	return &GroupedLeadsUseCase{Leads: leads}
}

// Execute returns leads grouped by acquisition source plus the first-seen
// order of the sources. A missing leads file is an empty grouping, not an
// error.
func (uc *GroupedLeadsUseCase) Execute() (map[string][]entity.Lead, []string, error) {
	leads, err := uc.Leads.LoadAll()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return map[string][]entity.Lead{}, nil, nil
		}
		return nil, nil, &TechnicalError{Code: "LEADS_READ_FAILED", Message: "failed to read leads file: " + err.Error()}
	}
	groups, order := GroupBySource(leads)
	return groups, order, nil
}

// GroupBySource buckets leads by source, preserving per-group lead order
// from the store and first-seen group order. Blank sources fall under
// "Unknown".
func GroupBySource(leads []entity.Lead) (map[string][]entity.Lead, []string) {
	groups := make(map[string][]entity.Lead)
	var order []string

	for _, lead := range leads {
		src := strings.TrimSpace(lead.Source)
		if src == "" {
			src = unknownSource
		}
		if _, seen := groups[src]; !seen {
			order = append(order, src)
		}
		lead.Source = src
		groups[src] = append(groups[src], lead)
	}
	return groups, order
}
