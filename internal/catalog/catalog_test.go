package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/impact-search/internal/model"
)

func TestDefault_Topics(t *testing.T) {
	c := Default()

	assert.Equal(t, 5, c.Len())
	assert.Equal(t, []string{"climate change", "hunger", "education", "mental health", "ocean"}, c.Keys())
}

func TestDefault_BundleSizes(t *testing.T) {
	c := Default()

	tests := []struct {
		key                       string
		orgs, camps, vols, action int
	}{
		{"climate change", 4, 3, 3, 4},
		{"hunger", 3, 2, 2, 2},
		{"education", 3, 1, 2, 2},
		{"mental health", 3, 1, 2, 2},
		{"ocean", 3, 2, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			b, ok := c.Lookup(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.key, b.Query)
			assert.Len(t, b.Organizations, tt.orgs)
			assert.Len(t, b.Campaigns, tt.camps)
			assert.Len(t, b.VolunteerOpportunities, tt.vols)
			assert.Len(t, b.MicroActions, tt.action)
		})
	}
}

func TestDefault_AliasesPointAtKnownTopics(t *testing.T) {
	c := Default()

	require.Len(t, c.Aliases(), 20)
	for _, a := range c.Aliases() {
		_, ok := c.Lookup(a.Topic)
		assert.True(t, ok, "alias %q -> %q", a.Keyword, a.Topic)
	}
	assert.Equal(t, "global warming", c.Aliases()[0].Keyword)
	assert.Equal(t, "water", c.Aliases()[19].Keyword)
}

func TestLookup_ReturnsCopy(t *testing.T) {
	c := Default()

	b, ok := c.Lookup("hunger")
	require.True(t, ok)
	b.Organizations[0].Name = "mutated"
	b.Campaigns = nil

	again, _ := c.Lookup("hunger")
	assert.Equal(t, "World Food Programme", again.Organizations[0].Name)
	assert.Len(t, again.Campaigns, 2)
}

func TestLookup_Unknown(t *testing.T) {
	_, ok := Default().Lookup("Hunger")
	assert.False(t, ok)
}

func TestTrending(t *testing.T) {
	c := Default()

	got := c.Trending()
	assert.Equal(t, DefaultTrending, got)
	got[0] = "changed"
	assert.Equal(t, "Climate Change", c.Trending()[0])
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "climate change", Normalize("  Climate CHANGE \t"))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "éducation", Normalize("ÉDUCATION"))
}

func TestNew_Validation(t *testing.T) {
	valid := Topic{Key: "hunger", Bundle: model.Bundle{}}

	tests := []struct {
		name    string
		topics  []Topic
		aliases []Alias
		wantMsg string
	}{
		{"no topics", nil, nil, "no topics"},
		{"empty key", []Topic{{Key: ""}}, nil, "empty topic key"},
		{"not normalized", []Topic{{Key: "Hunger"}}, nil, "not normalized"},
		{"duplicate key", []Topic{valid, valid}, nil, "duplicate topic key"},
		{"unknown alias topic", []Topic{valid}, []Alias{{Keyword: "food", Topic: "food security"}}, "unknown topic"},
		{"empty alias", []Topic{valid}, []Alias{{Keyword: "  ", Topic: "hunger"}}, "empty alias"},
		{
			"duplicate org id",
			[]Topic{{Key: "hunger", Bundle: model.Bundle{Organizations: []model.Organization{{ID: "1"}, {ID: "1"}}}}},
			nil,
			"duplicate organization id",
		},
		{
			"bad urgency",
			[]Topic{{Key: "hunger", Bundle: model.Bundle{Campaigns: []model.Campaign{{ID: "1", Urgency: "urgent"}}}}},
			nil,
			"invalid urgency",
		},
		{
			"bad mode",
			[]Topic{{Key: "hunger", Bundle: model.Bundle{VolunteerOpportunities: []model.VolunteerOpportunity{{ID: "1", Mode: "virtual"}}}}},
			nil,
			"invalid type",
		},
		{
			"missing micro action id",
			[]Topic{{Key: "hunger", Bundle: model.Bundle{MicroActions: []model.MicroAction{{Title: "x"}}}}},
			nil,
			"empty id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.topics, tt.aliases, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestNew_IDsUniquePerListOnly(t *testing.T) {
	b := model.Bundle{
		Organizations: []model.Organization{{ID: "1"}},
		Campaigns:     []model.Campaign{{ID: "1", Urgency: model.UrgencyLow}},
		MicroActions:  []model.MicroAction{{ID: "1"}},
	}
	_, err := New([]Topic{{Key: "hunger", Bundle: b}}, nil, nil)
	assert.NoError(t, err)
}

func TestNew_NormalizesAliases(t *testing.T) {
	c, err := New([]Topic{{Key: "hunger"}}, []Alias{{Keyword: "  FOOD ", Topic: "hunger"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []Alias{{Keyword: "food", Topic: "hunger"}}, c.Aliases())
}
