package screens

import (
	"context"

	"eventdesk-console-go/internal/listview"
	"eventdesk-console-go/internal/upstream"
)

func newEventsScreen(client *upstream.Client, notifier Notifier, pageSize int) *Controller[upstream.Event] {
	return NewController(Config[upstream.Event]{
		Name:     "event",
		PageSize: pageSize,
		ID:       func(e upstream.Event) int { return e.EventID },
		SearchFields: func(e upstream.Event) []string {
			return []string{e.Title, e.Location}
		},
		Dimensions: []listview.Dimension[upstream.Event]{
			{Name: "status", Value: func(e upstream.Event) string { return e.Status }},
			{Name: "category", Value: func(e upstream.Event) string { return e.Category }},
		},
		Statuses: []string{
			upstream.EventStatusActive,
			upstream.EventStatusDraft,
			upstream.EventStatusCompleted,
		},
		Reconcile: ReconcilePatch,
		ApplyStatus: func(e upstream.Event, status string) upstream.Event {
			e.Status = status
			return e
		},
		List: client.ListEvents,
		SetStatus: func(ctx context.Context, id int, status string) error {
			_, err := client.SetEventStatus(ctx, id, status)
			return err
		},
		Delete: client.DeleteEvent,
		Create: func(ctx context.Context, form Form) error {
			_, err := client.CreateEvent(ctx, eventRequest(form))
			return err
		},
		Update: func(ctx context.Context, id int, form Form) error {
			_, err := client.UpdateEvent(ctx, id, eventRequest(form))
			return err
		},
		Required: []string{"title", "location", "category", "startTime", "endTime"},
		Numeric:  []string{"maxSeats", "venueId"},
	}, notifier)
}

func eventRequest(form Form) upstream.EventRequest {
	return upstream.EventRequest{
		Title:       form.text("title"),
		Description: form.optText("description"),
		Location:    form.text("location"),
		Category:    form.text("category"),
		StartTime:   form.text("startTime"),
		EndTime:     form.text("endTime"),
		MaxSeats:    form.integer("maxSeats"),
		VenueID:     form.optInteger("venueId"),
		Status:      form.text("status"),
	}
}
