package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"eventdesk-console-go/internal/listview"
	"eventdesk-console-go/internal/screens"
	"eventdesk-console-go/internal/upstream"
)

// mountScreen wires one list controller under a resource path. Every screen
// gets the same surface: a filtered, paginated list plus status, delete, and
// form actions where the controller supports them. Extras register
// screen-specific routes, like the media uploads, on the same subrouter.
func mountScreen[T any](r chi.Router, path string, ctrl *screens.Controller[T], extras ...func(chi.Router)) {
	r.Route(path, func(screen chi.Router) {
		screen.Get("/", listHandler(ctrl))
		screen.Post("/", createHandler(ctrl))
		screen.Put("/{id}", updateHandler(ctrl))
		screen.Delete("/{id}", deleteHandler(ctrl))
		screen.Post("/{id}/status", statusHandler(ctrl))
		for _, extra := range extras {
			extra(screen)
		}
	})
}

func listHandler[T any](ctrl *screens.Controller[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()
		if params.Get("refresh") == "1" {
			if err := ctrl.Load(r.Context()); err != nil {
				WriteError(w, http.StatusBadGateway, loadFailure(err))
				return
			}
		} else if err := ctrl.Ensure(r.Context()); err != nil {
			WriteError(w, http.StatusBadGateway, loadFailure(err))
			return
		}

		query := listview.Query{
			Search:  params.Get("search"),
			Filters: map[string]string{},
		}
		for _, name := range ctrl.Dimensions() {
			if value := params.Get(name); value != "" {
				query.Filters[name] = value
			}
		}
		view, err := ctrl.View(query, parseInt(params.Get("page"), 1))
		if err != nil {
			WriteError(w, http.StatusBadGateway, loadFailure(err))
			return
		}
		WriteJSON(w, http.StatusOK, view)
	}
}

type statusRequest struct {
	Status string `json:"status"`
}

func statusHandler[T any](ctrl *screens.Controller[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req statusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		id := parseInt(chi.URLParam(r, "id"), 0)
		if err := ctrl.ChangeStatus(r.Context(), id, req.Status); err != nil {
			writeActionError(w, err)
			return
		}
		WriteMessage(w, http.StatusOK, "Status updated")
	}
}

func deleteHandler[T any](ctrl *screens.Controller[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := parseInt(chi.URLParam(r, "id"), 0)
		if err := ctrl.Remove(r.Context(), id); err != nil {
			writeActionError(w, err)
			return
		}
		WriteMessage(w, http.StatusOK, "Deleted")
	}
}

func createHandler[T any](ctrl *screens.Controller[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := decodeForm(w, r)
		if !ok {
			return
		}
		if err := ctrl.Submit(r.Context(), form); err != nil {
			writeActionError(w, err)
			return
		}
		WriteMessage(w, http.StatusCreated, "Created")
	}
}

func updateHandler[T any](ctrl *screens.Controller[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := decodeForm(w, r)
		if !ok {
			return
		}
		id := parseInt(chi.URLParam(r, "id"), 0)
		if err := ctrl.Revise(r.Context(), id, form); err != nil {
			writeActionError(w, err)
			return
		}
		WriteMessage(w, http.StatusOK, "Updated")
	}
}

func decodeForm(w http.ResponseWriter, r *http.Request) (screens.Form, bool) {
	form := screens.Form{}
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	return form, true
}

// writeActionError maps a dispatch failure onto the console's response: form
// and guard failures are the caller's fault, everything else is the
// upstream's.
func writeActionError(w http.ResponseWriter, err error) {
	var validation screens.ValidationError
	if errors.As(err, &validation) {
		WriteError(w, http.StatusBadRequest, validation.Error())
		return
	}
	var apiErr upstream.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if status < 400 {
			status = http.StatusBadGateway
		}
		WriteError(w, status, apiErr.Error())
		return
	}
	WriteError(w, http.StatusBadRequest, err.Error())
}

func loadFailure(err error) string {
	if msg := upstream.ServerMessage(err); msg != "" {
		return msg
	}
	return "Failed to load data"
}

func parseInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
