package resolver

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/impact-search/internal/catalog"
	"github.com/sells-group/impact-search/internal/model"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	return New(catalog.Default())
}

func TestSearch_ExactKeys(t *testing.T) {
	r := newTestResolver(t)
	c := r.Catalog()

	for _, key := range c.Keys() {
		t.Run(key, func(t *testing.T) {
			got, ok := r.Search(key)
			require.True(t, ok)
			want, _ := c.Lookup(key)
			assert.Equal(t, want, got)
			assert.Equal(t, MatchExact, r.Resolve(key).Kind)
		})
	}
}

func TestSearch_CaseAndWhitespaceInsensitive(t *testing.T) {
	r := newTestResolver(t)

	a, okA := r.Search(" Climate Change ")
	b, okB := r.Search("climate change")
	require.True(t, okA)
	require.True(t, okB)
	assert.Equal(t, b, a)
	assert.Equal(t, MatchExact, r.Resolve("\tMENTAL HEALTH\n").Kind)
}

func TestSearch_EveryAlias(t *testing.T) {
	r := newTestResolver(t)

	for _, a := range r.Catalog().Aliases() {
		t.Run(a.Keyword, func(t *testing.T) {
			got, ok := r.Search(a.Keyword)
			require.True(t, ok)
			assert.Equal(t, a.Topic, got.Query)

			m := r.Resolve(a.Keyword)
			assert.Equal(t, MatchAlias, m.Kind)
			assert.Equal(t, a.Keyword, m.Alias)
		})
	}
}

func TestSearch_AliasExamples(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		query string
		want  string
	}{
		{"global warming", "climate change"},
		{"Depression", "mental health"},
		{"stop plastic pollution", "ocean"},
		{"free school lunches", "education"},
		{"world poverty", "hunger"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, ok := r.Search(tt.query)
			require.True(t, ok)
			assert.Equal(t, tt.want, got.Query)
		})
	}
}

func TestSearch_AliasTableOrderWins(t *testing.T) {
	r := newTestResolver(t)

	// "food" is declared before "plastic".
	m := r.Resolve("plastic food packaging")
	assert.Equal(t, "hunger", m.Topic)
	assert.Equal(t, "food", m.Alias)
}

func TestSearch_NoMatch(t *testing.T) {
	r := newTestResolver(t)

	got, ok := r.Search("not a real topic")
	assert.False(t, ok)
	assert.Equal(t, model.Bundle{}, got)
	assert.False(t, r.Resolve("not a real topic").Found())
}

func TestSearch_EmptyQuery(t *testing.T) {
	r := newTestResolver(t)

	for _, q := range []string{"", "   ", "\t\n"} {
		_, ok := r.Search(q)
		assert.False(t, ok, "query %q", q)
	}
}

func TestSearch_Substring(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		query string
		want  string
	}{
		{"climate change now", "climate change"},
		{"Ocean Conservation", "ocean"},
		{"health", "mental health"},
		{"climate", "climate change"},
		// Keys are checked in catalog order; hunger precedes education.
		{"hunger and education", "hunger"},
		// A single letter is contained in the first key.
		{"e", "climate change"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			m := r.Resolve(tt.query)
			assert.Equal(t, MatchSubstring, m.Kind)
			assert.Equal(t, tt.want, m.Topic)
		})
	}
}

func TestSearch_SubstringBeatsAlias(t *testing.T) {
	r := newTestResolver(t)

	// Contains both the key "ocean" and the hunger alias "food".
	m := r.Resolve("food from the ocean")
	assert.Equal(t, MatchSubstring, m.Kind)
	assert.Equal(t, "ocean", m.Topic)
}

func TestSearch_Idempotent(t *testing.T) {
	r := newTestResolver(t)

	first, ok := r.Search("marine life")
	require.True(t, ok)
	first.Organizations[0].Name = "mutated by caller"

	for i := 0; i < 3; i++ {
		again, ok := r.Search("marine life")
		require.True(t, ok)
		assert.Equal(t, "Ocean Conservancy", again.Organizations[0].Name)
	}
}

func TestAll_Concatenates(t *testing.T) {
	r := newTestResolver(t)
	all := r.All()

	var orgs, camps, vols, acts int
	for _, tp := range r.Catalog().Topics() {
		orgs += len(tp.Bundle.Organizations)
		camps += len(tp.Bundle.Campaigns)
		vols += len(tp.Bundle.VolunteerOpportunities)
		acts += len(tp.Bundle.MicroActions)
	}

	assert.Equal(t, model.AllQuery, all.Query)
	assert.Len(t, all.Organizations, orgs)
	assert.Len(t, all.Campaigns, camps)
	assert.Len(t, all.VolunteerOpportunities, vols)
	assert.Len(t, all.MicroActions, acts)

	assert.Equal(t, 16, orgs)
	assert.Equal(t, 9, camps)
	assert.Equal(t, 10, vols)
	assert.Equal(t, 12, acts)
}

func TestAll_CatalogOrder(t *testing.T) {
	all := newTestResolver(t).All()

	assert.Equal(t, "350.org", all.Organizations[0].Name)
	assert.Equal(t, "World Food Programme", all.Organizations[4].Name)
	assert.Equal(t, "Surfrider Foundation", all.Organizations[len(all.Organizations)-1].Name)
}

func TestAll_DoesNotAliasCatalog(t *testing.T) {
	r := newTestResolver(t)

	all := r.All()
	all.Organizations[0].Name = "mutated"

	assert.Equal(t, "350.org", r.All().Organizations[0].Name)
}

func TestResolver_ConcurrentUse(t *testing.T) {
	r := newTestResolver(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, q := range []string{"hunger", "global warming", "nothing here", "ocean"} {
				r.Search(q)
			}
			r.All()
		}()
	}
	wg.Wait()
}
