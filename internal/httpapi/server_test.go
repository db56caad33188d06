package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventdesk-console-go/internal/config"
	"eventdesk-console-go/internal/metrics"
	"eventdesk-console-go/internal/notify"
	"eventdesk-console-go/internal/screens"
	"eventdesk-console-go/internal/token"
	"eventdesk-console-go/internal/upstream"
)

// fakeUpstream stands in for the remote event-management API.
func fakeUpstream(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /bookings", func(w http.ResponseWriter, r *http.Request) {
		// envelope shape on purpose; the events endpoint uses a bare array
		w.Write([]byte(`{"success":true,"data":[
			{"bookingId":1,"eventId":10,"venueId":5,"requestedBy":"ana@example.com","startTime":"2026-09-01T10:00:00Z","endTime":"2026-09-01T12:00:00Z","status":"Pending"},
			{"bookingId":2,"eventId":11,"venueId":5,"requestedBy":"bob@example.com","startTime":"2026-09-02T10:00:00Z","endTime":"2026-09-02T12:00:00Z","status":"Approved"},
			{"bookingId":3,"eventId":10,"venueId":6,"requestedBy":"ana@example.com","startTime":"2026-09-03T10:00:00Z","endTime":"2026-09-03T12:00:00Z","status":"Pending"}
		]}`))
	})
	mux.HandleFunc("PUT /bookings/1/status", func(w http.ResponseWriter, r *http.Request) {
		var decision upstream.BookingDecision
		require.NoError(t, json.NewDecoder(r.Body).Decode(&decision))
		assert.Equal(t, "Approved", decision.Status)
		w.Write([]byte(`{"success":true,"data":{"bookingId":1,"eventId":10,"venueId":5,"requestedBy":"ana@example.com","startTime":"2026-09-01T10:00:00Z","endTime":"2026-09-01T12:00:00Z","status":"Approved"}}`))
	})
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req upstream.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != "hunter2" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"error":"bad credentials"}`))
			return
		}
		w.Write([]byte(`{"success":true,"data":{"token":"upstream-bearer","expiresAt":1790000000,"userId":42,"fullName":"Ana Admin","role":"admin"}}`))
	})
	return httptest.NewServer(mux)
}

func newTestServer(t *testing.T, upstreamURL string) *Server {
	cfg := config.Config{
		UpstreamURL:       upstreamURL,
		TokenPath:         filepath.Join(t.TempDir(), "token"),
		SessionSecret:     "test-secret",
		SessionIssuer:     "eventdesk-console",
		SessionTTLSeconds: 3600,
		PageSize:          2,
		MetricsDiskPath:   t.TempDir(),
	}
	tokens, err := token.NewStore(cfg.TokenPath)
	require.NoError(t, err)
	client := upstream.New(cfg.UpstreamURL, tokens)
	notices := notify.NewCenter()
	set := screens.NewSet(client, notices, cfg.PageSize)
	return NewServer(cfg, client, set, notices, metrics.NewRecorder(cfg.MetricsDiskPath), tokens)
}

func sessionToken(t *testing.T, s *Server) string {
	signed, _, err := s.Sessions.Issue(42, "Ana Admin", "admin")
	require.NoError(t, err)
	return signed
}

func TestScreenEndpointRequiresSession(t *testing.T) {
	remote := fakeUpstream(t)
	defer remote.Close()
	s := newTestServer(t, remote.URL)
	router := s.Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/screens/bookings/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBookingsScreenFiltersAndPaginates(t *testing.T) {
	remote := fakeUpstream(t)
	defer remote.Close()
	s := newTestServer(t, remote.URL)
	router := s.Router()
	auth := "Bearer " + sessionToken(t, s)

	get := func(target string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		req.Header.Set("Authorization", auth)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	rec := get("/api/screens/bookings/?status=Pending")
	require.Equal(t, http.StatusOK, rec.Code)
	var view screens.View[upstream.Booking]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, 2, view.Total)
	assert.Equal(t, 1, view.TotalPages)
	assert.Len(t, view.Items, 2)
	assert.Equal(t, 1, view.Items[0].BookingID)
	assert.Equal(t, 3, view.Items[1].BookingID)

	// free-text search over requester, page clamped from far out of range
	rec = get("/api/screens/bookings/?search=ANA&page=9")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, 2, view.Total)
	assert.Equal(t, 1, view.Page)
}

func TestBookingApprovalAction(t *testing.T) {
	remote := fakeUpstream(t)
	defer remote.Close()
	s := newTestServer(t, remote.URL)
	router := s.Router()
	auth := "Bearer " + sessionToken(t, s)

	req := httptest.NewRequest(http.MethodPost, "/api/screens/bookings/1/status", strings.NewReader(`{"status":"Approved"}`))
	req.Header.Set("Authorization", auth)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// the approval lands as a success notice
	recent := s.Notices.Recent(10)
	require.NotEmpty(t, recent)
	assert.Equal(t, notify.LevelSuccess, recent[len(recent)-1].Level)
}

func TestLoginStoresBearerToken(t *testing.T) {
	remote := fakeUpstream(t)
	defer remote.Close()
	s := newTestServer(t, remote.URL)
	router := s.Router()

	req := httptest.NewRequest(http.MethodPost, "/api/session/login", strings.NewReader(`{"email":"ana@example.com","password":"hunter2"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Ana Admin", resp.FullName)
	assert.Equal(t, "upstream-bearer", s.Tokens.Token())

	// the minted console token is accepted by the session guard
	infoReq := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	infoReq.Header.Set("Authorization", "Bearer "+resp.Token)
	infoRec := httptest.NewRecorder()
	router.ServeHTTP(infoRec, infoReq)
	assert.Equal(t, http.StatusOK, infoRec.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	remote := fakeUpstream(t)
	defer remote.Close()
	s := newTestServer(t, remote.URL)
	router := s.Router()

	req := httptest.NewRequest(http.MethodPost, "/api/session/login", strings.NewReader(`{"email":"ana@example.com","password":"wrong"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, s.Tokens.Token())
}
