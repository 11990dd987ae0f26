package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cazeai/bizcon-outreach/internal/entity"
	"github.com/cazeai/bizcon-outreach/internal/infra/store"
)

func TestGroupBySourcePreservesOrder(t *testing.T) {
	leads := []entity.Lead{
		{ID: "1", Source: "LinkedIn"},
		{ID: "2", Source: "Webinar"},
		{ID: "3", Source: "LinkedIn"},
		{ID: "4", Source: ""},
		{ID: "5", Source: "   "},
		{ID: "6", Source: "Webinar"},
	}

	groups, order := GroupBySource(leads)

	assert.Equal(t, []string{"LinkedIn", "Webinar", "Unknown"}, order)
	assert.Len(t, groups["LinkedIn"], 2)
	assert.Equal(t, "1", groups["LinkedIn"][0].ID)
	assert.Equal(t, "3", groups["LinkedIn"][1].ID)
	assert.Len(t, groups["Unknown"], 2)
	assert.Equal(t, "Unknown", groups["Unknown"][0].Source)
	assert.Equal(t, "4", groups["Unknown"][0].ID)
	assert.Equal(t, "5", groups["Unknown"][1].ID)
}

func TestGroupedLeadsMissingFileIsEmptyMapping(t *testing.T) {
	leads := new(MockLeadStore)
	leads.On("LoadAll").Return(nil, store.ErrNotFound)

	uc := NewGroupedLeadsUseCase(leads)
	groups, order, err := uc.Execute()

	assert.NoError(t, err)
	assert.Empty(t, groups)
	assert.Empty(t, order)
}

func TestGroupedLeadsReadFailure(t *testing.T) {
	leads := new(MockLeadStore)
	leads.On("LoadAll").Return(nil, assert.AnError)

	uc := NewGroupedLeadsUseCase(leads)
	_, _, err := uc.Execute()

	assert.Error(t, err)
	assert.True(t, IsTechnicalError(err))
}
