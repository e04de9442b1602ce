package planner

import (
	"testing"

	"github.com/MKhiriev/go-plant-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildTagIndex(t *testing.T) {
	tests := []struct {
		name   string
		plants []models.Plant
		want   []string
	}{
		{
			name:   "no plants",
			plants: nil,
			want:   []string{},
		},
		{
			name: "case folded, deduplicated and sorted",
			plants: []models.Plant{
				{ID: "1", Tags: []string{"B", "a"}},
				{ID: "2", Tags: []string{"a"}},
			},
			want: []string{"a", "b"},
		},
		{
			name: "plants without tags are tolerated",
			plants: []models.Plant{
				{ID: "1"},
				{ID: "2", Tags: []string{}},
				{ID: "3", Tags: []string{"succulent", " ", "indoor"}},
			},
			want: []string{"indoor", "succulent"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildTagIndex(tt.plants))
		})
	}
}

func TestBuildTagIndex_DoesNotMutatePlants(t *testing.T) {
	plants := []models.Plant{{ID: "1", Tags: []string{"Shade", "Indoor"}}}

	BuildTagIndex(plants)

	assert.Equal(t, []string{"Shade", "Indoor"}, plants[0].Tags)
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"indoor", "shade"}, NormalizeTags(" Indoor, shade,,INDOOR , "))
	assert.Equal(t, []string{}, NormalizeTags(""))
	assert.Equal(t, []string{"a", "b"}, NormalizeTagList([]string{"A", "b", "a"}))
}
