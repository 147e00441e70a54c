package model

import (
	"slices"

	"github.com/rotisserie/eris"
)

// AllQuery labels the aggregate bundle.
const AllQuery = "all"

// Bundle groups the four result lists for one topic (or for the aggregate view).
type Bundle struct {
	Query                  string                 `json:"query" yaml:"-"`
	Organizations          []Organization         `json:"organizations" yaml:"organizations"`
	Campaigns              []Campaign             `json:"campaigns" yaml:"campaigns"`
	VolunteerOpportunities []VolunteerOpportunity `json:"volunteer_opportunities" yaml:"volunteer_opportunities"`
	MicroActions           []MicroAction          `json:"micro_actions" yaml:"micro_actions"`
}

// Clone returns a copy whose slices do not alias b's.
func (b Bundle) Clone() Bundle {
	return Bundle{
		Query:                  b.Query,
		Organizations:          slices.Clone(b.Organizations),
		Campaigns:              slices.Clone(b.Campaigns),
		VolunteerOpportunities: slices.Clone(b.VolunteerOpportunities),
		MicroActions:           slices.Clone(b.MicroActions),
	}
}

// Append concatenates other's lists onto b's.
func (b *Bundle) Append(other Bundle) {
	b.Organizations = append(b.Organizations, other.Organizations...)
	b.Campaigns = append(b.Campaigns, other.Campaigns...)
	b.VolunteerOpportunities = append(b.VolunteerOpportunities, other.VolunteerOpportunities...)
	b.MicroActions = append(b.MicroActions, other.MicroActions...)
}

// Filter selects which lists of a bundle a caller wants to see.
type Filter string

const (
	FilterAll           Filter = "all"
	FilterOrganizations Filter = "organizations"
	FilterCampaigns     Filter = "campaigns"
	FilterVolunteer     Filter = "volunteer"
	FilterActions       Filter = "actions"
)

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterOrganizations, FilterCampaigns, FilterVolunteer, FilterActions}

// ParseFilter converts s to a Filter. The empty string means FilterAll.
func ParseFilter(s string) (Filter, error) {
	if s == "" {
		return FilterAll, nil
	}
	f := Filter(s)
	if !slices.Contains(Filters, f) {
		return "", eris.Errorf("model: unknown filter %q", s)
	}
	return f, nil
}

// Title is the heading shown for a filter when there is no query.
func (f Filter) Title() string {
	switch f {
	case FilterOrganizations:
		return "Find NGOs"
	case FilterCampaigns:
		return "Join Campaigns"
	case FilterVolunteer:
		return "Volunteer Opportunities"
	case FilterActions:
		return "Micro-Actions"
	default:
		return "All Results"
	}
}

func (f Filter) shows(list Filter) bool {
	return f == FilterAll || f == list
}

// Filter returns a copy of b with every list not selected by f emptied.
func (b Bundle) Filter(f Filter) Bundle {
	out := b.Clone()
	if !f.shows(FilterOrganizations) {
		out.Organizations = []Organization{}
	}
	if !f.shows(FilterCampaigns) {
		out.Campaigns = []Campaign{}
	}
	if !f.shows(FilterVolunteer) {
		out.VolunteerOpportunities = []VolunteerOpportunity{}
	}
	if !f.shows(FilterActions) {
		out.MicroActions = []MicroAction{}
	}
	return out
}

// Count returns the number of records in the lists selected by f.
func (b Bundle) Count(f Filter) int {
	n := 0
	if f.shows(FilterOrganizations) {
		n += len(b.Organizations)
	}
	if f.shows(FilterCampaigns) {
		n += len(b.Campaigns)
	}
	if f.shows(FilterVolunteer) {
		n += len(b.VolunteerOpportunities)
	}
	if f.shows(FilterActions) {
		n += len(b.MicroActions)
	}
	return n
}
