package model

import "time"

// SearchEvent records one query made against the catalog.
type SearchEvent struct {
	ID          string    `json:"id"`
	Query       string    `json:"query"`
	Normalized  string    `json:"normalized"`
	Topic       string    `json:"topic,omitempty"` // empty when nothing matched
	Filter      Filter    `json:"filter"`
	ResultCount int       `json:"result_count"`
	SearchedAt  time.Time `json:"searched_at"`
}

// Matched reports whether the search resolved to a topic.
func (e SearchEvent) Matched() bool {
	return e.Topic != ""
}

// QueryCount aggregates search events by normalized query.
type QueryCount struct {
	Query        string    `json:"query"`
	Topic        string    `json:"topic,omitempty"`
	Count        int       `json:"count"`
	LastSearched time.Time `json:"last_searched"`
}

// TopicCount is the number of searches that resolved to a topic.
type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}
