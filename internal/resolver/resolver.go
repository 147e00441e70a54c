// Package resolver maps free-text queries onto catalog topics.
package resolver

import (
	"strings"

	"github.com/sells-group/impact-search/internal/catalog"
	"github.com/sells-group/impact-search/internal/model"
)

// MatchKind records which rule resolved a query.
type MatchKind string

const (
	MatchNone      MatchKind = "none"
	MatchExact     MatchKind = "exact"
	MatchSubstring MatchKind = "substring"
	MatchAlias     MatchKind = "alias"
)

// Match describes how a query resolved.
type Match struct {
	Query      string    `json:"query"`
	Normalized string    `json:"normalized"`
	Topic      string    `json:"topic,omitempty"`
	Kind       MatchKind `json:"kind"`
	Alias      string    `json:"alias,omitempty"`
}

// Found reports whether the query resolved to a topic.
func (m Match) Found() bool {
	return m.Kind != MatchNone
}

// Resolver is a pure lookup over an immutable catalog. It is safe for
// concurrent use.
type Resolver struct {
	catalog *catalog.Catalog
	keys    []string
	aliases []catalog.Alias
}

// New returns a Resolver over c.
func New(c *catalog.Catalog) *Resolver {
	return &Resolver{
		catalog: c,
		keys:    c.Keys(),
		aliases: c.Aliases(),
	}
}

// Catalog returns the catalog the resolver reads from.
func (r *Resolver) Catalog() *catalog.Catalog {
	return r.catalog
}

// Resolve works out which topic query refers to. Rules are tried in order and
// the first hit wins:
//
//  1. the normalized query equals a topic key;
//  2. a topic key contains the query, or the query contains a topic key,
//     checking keys in catalog order;
//  3. the query contains an alias keyword, checking aliases in table order.
//
// An empty query after normalization never matches.
func (r *Resolver) Resolve(query string) Match {
	q := catalog.Normalize(query)
	m := Match{Query: query, Normalized: q, Kind: MatchNone}
	if q == "" {
		return m
	}

	if _, ok := r.catalog.Lookup(q); ok {
		m.Topic, m.Kind = q, MatchExact
		return m
	}

	for _, key := range r.keys {
		if strings.Contains(key, q) || strings.Contains(q, key) {
			m.Topic, m.Kind = key, MatchSubstring
			return m
		}
	}

	for _, a := range r.aliases {
		if strings.Contains(q, a.Keyword) {
			m.Topic, m.Kind, m.Alias = a.Topic, MatchAlias, a.Keyword
			return m
		}
	}

	return m
}

// Search returns the bundle query resolves to. The boolean is false when no
// topic matched.
func (r *Resolver) Search(query string) (model.Bundle, bool) {
	m := r.Resolve(query)
	if !m.Found() {
		return model.Bundle{}, false
	}
	return r.catalog.Lookup(m.Topic)
}

// All returns every topic's records concatenated in catalog order.
func (r *Resolver) All() model.Bundle {
	agg := model.Bundle{
		Query:                  model.AllQuery,
		Organizations:          []model.Organization{},
		Campaigns:              []model.Campaign{},
		VolunteerOpportunities: []model.VolunteerOpportunity{},
		MicroActions:           []model.MicroAction{},
	}
	for _, t := range r.catalog.Topics() {
		agg.Append(t.Bundle)
	}
	return agg
}
