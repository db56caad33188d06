package httpapi

import (
	"net/http"

	"github.com/gorilla/websocket"

	"eventdesk-console-go/internal/notify"
	"eventdesk-console-go/internal/push"
)

type NoticeHistoryResponse struct {
	Items []notify.Notice `json:"items"`
}

func (s *Server) NoticeHistory(w http.ResponseWriter, r *http.Request) {
	limit := parseInt(r.URL.Query().Get("limit"), 50)
	if limit > 100 {
		limit = 100
	}
	WriteJSON(w, http.StatusOK, NoticeHistoryResponse{Items: s.Notices.Recent(limit)})
}

func (s *Server) NoticeSocket(w http.ResponseWriter, r *http.Request) {
	serveSocket(s.Sessions, s.Notices.Hub, w, r)
}

// serveSocket upgrades the connection after checking the session token passed
// as a query parameter; websocket clients cannot set an Authorization header.
func serveSocket[T any](sessions SessionService, hub *push.Hub[T], w http.ResponseWriter, r *http.Request) {
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	if _, err := sessions.Parse(tokenStr); err != nil {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	hub.Add(conn)
	defer func() {
		hub.Remove(conn)
		_ = conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
