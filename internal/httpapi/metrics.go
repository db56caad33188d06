package httpapi

import (
	"net/http"

	"eventdesk-console-go/internal/metrics"
)

type MetricsHistoryResponse struct {
	Items []metrics.Sample `json:"items"`
}

func (s *Server) MetricsHistory(w http.ResponseWriter, r *http.Request) {
	limit := parseInt(r.URL.Query().Get("limit"), 120)
	if limit > 500 {
		limit = 500
	}
	WriteJSON(w, http.StatusOK, MetricsHistoryResponse{Items: s.Metrics.History(limit)})
}

func (s *Server) MetricsSocket(w http.ResponseWriter, r *http.Request) {
	serveSocket(s.Sessions, s.Metrics.Hub, w, r)
}
