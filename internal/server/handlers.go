package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/impact-search/internal/history"
	"github.com/sells-group/impact-search/internal/model"
	"github.com/sells-group/impact-search/internal/resolver"
	"github.com/sells-group/impact-search/internal/store"
)

const maxTopLimit = 100

type errorResponse struct {
	Error string `json:"error"`
	Query string `json:"query,omitempty"`
}

type searchResponse struct {
	Query   string             `json:"query"`
	Topic   string             `json:"topic"`
	Match   resolver.MatchKind `json:"match"`
	Filter  model.Filter       `json:"filter"`
	Title   string             `json:"title"`
	Total   int                `json:"total"`
	Results model.Bundle       `json:"results"`
}

type topicSummary struct {
	Key                    string `json:"key"`
	Organizations          int    `json:"organizations"`
	Campaigns              int    `json:"campaigns"`
	VolunteerOpportunities int    `json:"volunteer_opportunities"`
	MicroActions           int    `json:"micro_actions"`
	Total                  int    `json:"total"`
}

type trendingCause struct {
	Label string `json:"label"`
	Topic string `json:"topic,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("server: encode response", zap.Error(err))
	}
}

func filterParam(w http.ResponseWriter, r *http.Request) (model.Filter, bool) {
	f, err := model.ParseFilter(r.URL.Query().Get("filter"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return "", false
	}
	return f, true
}

func newSearchResponse(query string, m resolver.MatchKind, f model.Filter, b model.Bundle) searchResponse {
	return searchResponse{
		Query:   query,
		Topic:   b.Query,
		Match:   m,
		Filter:  f,
		Title:   f.Title(),
		Total:   b.Count(f),
		Results: b.Filter(f),
	}
}

// HandleSearch resolves ?q= against the catalog. An empty query with a
// narrowing filter browses the aggregate view instead.
func (s *Server) HandleSearch(w http.ResponseWriter, r *http.Request) {
	f, ok := filterParam(w, r)
	if !ok {
		return
	}
	q := r.URL.Query().Get("q")

	if strings.TrimSpace(q) == "" && f != model.FilterAll {
		writeJSON(w, http.StatusOK, newSearchResponse(q, resolver.MatchNone, f, s.resolver.All()))
		return
	}

	m := s.resolver.Resolve(q)
	var (
		b     model.Bundle
		found bool
	)
	if m.Found() {
		b, found = s.resolver.Catalog().Lookup(m.Topic)
	}

	total := 0
	if found {
		total = b.Count(f)
	}
	s.metrics.ObserveSearch(string(m.Kind), m.Topic, total)
	if s.recorder != nil && m.Normalized != "" {
		s.recorder.Record(history.EventFor(m, f, total))
	}

	if !found {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no results", Query: q})
		return
	}
	writeJSON(w, http.StatusOK, newSearchResponse(q, m.Kind, f, b))
}

func (s *Server) HandleAll(w http.ResponseWriter, r *http.Request) {
	f, ok := filterParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newSearchResponse(model.AllQuery, resolver.MatchNone, f, s.resolver.All()))
}

func (s *Server) HandleTopics(w http.ResponseWriter, r *http.Request) {
	topics := s.resolver.Catalog().Topics()
	out := make([]topicSummary, 0, len(topics))
	for _, t := range topics {
		out = append(out, topicSummary{
			Key:                    t.Key,
			Organizations:          len(t.Bundle.Organizations),
			Campaigns:              len(t.Bundle.Campaigns),
			VolunteerOpportunities: len(t.Bundle.VolunteerOpportunities),
			MicroActions:           len(t.Bundle.MicroActions),
			Total:                  t.Bundle.Count(model.FilterAll),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) HandleTrending(w http.ResponseWriter, r *http.Request) {
	labels := s.resolver.Catalog().Trending()
	out := make([]trendingCause, 0, len(labels))
	for _, l := range labels {
		out = append(out, trendingCause{Label: l, Topic: s.resolver.Resolve(l).Topic})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) HandleTopQueries(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "search history is disabled"})
		return
	}

	limit := store.DefaultTopLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = min(n, maxTopLimit)
	}

	top, err := s.history.TopQueries(r.Context(), limit)
	if err != nil {
		zap.L().Error("server: load top queries", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load search history"})
		return
	}
	if top == nil {
		top = []model.QueryCount{}
	}
	writeJSON(w, http.StatusOK, top)
}
