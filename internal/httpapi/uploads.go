package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"eventdesk-console-go/internal/upstream"
)

const maxUploadBytes = 10 << 20

type UploadResponse struct {
	URL string `json:"url"`
}

// EventBanner relays a banner image to the upstream media endpoint and
// refreshes the events screen so the new URL shows up.
func (s *Server) EventBanner(w http.ResponseWriter, r *http.Request) {
	s.relayUpload(w, r, "banner", s.Client.UploadEventBanner, func(ctx context.Context) error {
		return s.Screens.Events.Load(ctx)
	})
}

func (s *Server) VenueImage(w http.ResponseWriter, r *http.Request) {
	s.relayUpload(w, r, "image", s.Client.UploadVenueImage, func(ctx context.Context) error {
		return s.Screens.Venues.Load(ctx)
	})
}

func (s *Server) relayUpload(w http.ResponseWriter, r *http.Request, field string, upload func(context.Context, int, upstream.FormFile) (string, error), refresh func(context.Context) error) {
	id := parseInt(chi.URLParam(r, "id"), 0)
	if id <= 0 {
		WriteError(w, http.StatusBadRequest, "Missing identifier")
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid multipart body")
		return
	}
	file, header, err := r.FormFile(field)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Missing "+field+" file")
		return
	}
	defer file.Close()

	url, err := upload(r.Context(), id, upstream.FormFile{
		Field:    field,
		Name:     header.Filename,
		Contents: file,
	})
	if err != nil {
		writeActionError(w, err)
		return
	}
	if err := refresh(r.Context()); err != nil {
		WriteError(w, http.StatusBadGateway, loadFailure(err))
		return
	}
	WriteJSON(w, http.StatusOK, UploadResponse{URL: url})
}
