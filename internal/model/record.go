package model

// Urgency ranks how time-sensitive a campaign is.
type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

// Valid reports whether u is one of the known urgency levels.
func (u Urgency) Valid() bool {
	switch u {
	case UrgencyHigh, UrgencyMedium, UrgencyLow:
		return true
	}
	return false
}

// Mode describes where a volunteer opportunity takes place.
type Mode string

const (
	ModeRemote Mode = "remote"
	ModeOnsite Mode = "onsite"
	ModeHybrid Mode = "hybrid"
)

// Valid reports whether m is one of the known volunteer modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeRemote, ModeOnsite, ModeHybrid:
		return true
	}
	return false
}

// Organization is a nonprofit working on a cause.
type Organization struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Website     string `json:"website" yaml:"website"`
	Logo        string `json:"logo,omitempty" yaml:"logo,omitempty"`
	Category    string `json:"category" yaml:"category"`
}

// Campaign is a time-boxed call to action run by an organization.
type Campaign struct {
	ID           string  `json:"id" yaml:"id"`
	Title        string  `json:"title" yaml:"title"`
	Organization string  `json:"organization" yaml:"organization"`
	Description  string  `json:"description" yaml:"description"`
	Link         string  `json:"link" yaml:"link"`
	Urgency      Urgency `json:"urgency" yaml:"urgency"`
	EndDate      string  `json:"end_date,omitempty" yaml:"end_date,omitempty"`
}

// VolunteerOpportunity is a role someone can sign up for.
type VolunteerOpportunity struct {
	ID           string `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	Organization string `json:"organization" yaml:"organization"`
	Location     string `json:"location" yaml:"location"`
	Mode         Mode   `json:"type" yaml:"type"`
	Commitment   string `json:"commitment" yaml:"commitment"`
	Link         string `json:"link" yaml:"link"`
}

// MicroAction is a small thing a person can do right now.
type MicroAction struct {
	ID           string `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	Description  string `json:"description" yaml:"description"`
	TimeRequired string `json:"time_required" yaml:"time_required"`
	Impact       string `json:"impact" yaml:"impact"`
	Link         string `json:"link,omitempty" yaml:"link,omitempty"`
}
