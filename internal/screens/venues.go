package screens

import (
	"context"

	"eventdesk-console-go/internal/listview"
	"eventdesk-console-go/internal/upstream"
)

func newVenuesScreen(client *upstream.Client, notifier Notifier, pageSize int) *Controller[upstream.Venue] {
	return NewController(Config[upstream.Venue]{
		Name:     "venue",
		PageSize: pageSize,
		ID:       func(v upstream.Venue) int { return v.VenueID },
		SearchFields: func(v upstream.Venue) []string {
			fields := []string{v.VenueName}
			if v.Location != nil {
				fields = append(fields, *v.Location)
			}
			return fields
		},
		Dimensions: []listview.Dimension[upstream.Venue]{
			{Name: "status", Value: func(v upstream.Venue) string { return v.Status }},
		},
		Statuses: []string{upstream.VenueStatusActive, upstream.VenueStatusInactive},
		List:     client.ListVenues,
		SetStatus: func(ctx context.Context, id int, status string) error {
			_, err := client.SetVenueStatus(ctx, id, status)
			return err
		},
		Delete: client.DeleteVenue,
		Create: func(ctx context.Context, form Form) error {
			_, err := client.CreateVenue(ctx, venueRequest(form))
			return err
		},
		Update: func(ctx context.Context, id int, form Form) error {
			_, err := client.UpdateVenue(ctx, id, venueRequest(form))
			return err
		},
		Required: []string{"venueName"},
		Numeric:  []string{"capacity"},
	}, notifier)
}

func venueRequest(form Form) upstream.VenueRequest {
	return upstream.VenueRequest{
		VenueName: form.text("venueName"),
		Location:  form.optText("location"),
		Capacity:  form.optInteger("capacity"),
		Status:    form.text("status"),
	}
}

func newResourcesScreen(client *upstream.Client, notifier Notifier, pageSize int) *Controller[upstream.Resource] {
	return NewController(Config[upstream.Resource]{
		Name:     "resource",
		PageSize: pageSize,
		ID:       func(r upstream.Resource) int { return r.ResourceID },
		SearchFields: func(r upstream.Resource) []string {
			return []string{r.ResourceName, r.Type}
		},
		Dimensions: []listview.Dimension[upstream.Resource]{
			{Name: "status", Value: func(r upstream.Resource) string { return r.Status }},
			{Name: "type", Value: func(r upstream.Resource) string { return r.Type }},
		},
		Statuses: []string{
			upstream.ResourceStatusAvailable,
			upstream.ResourceStatusInUse,
			upstream.ResourceStatusRetired,
		},
		List: client.ListResources,
		SetStatus: func(ctx context.Context, id int, status string) error {
			_, err := client.SetResourceStatus(ctx, id, status)
			return err
		},
		Delete: client.DeleteResource,
		Create: func(ctx context.Context, form Form) error {
			_, err := client.CreateResource(ctx, resourceRequest(form))
			return err
		},
		Update: func(ctx context.Context, id int, form Form) error {
			_, err := client.UpdateResource(ctx, id, resourceRequest(form))
			return err
		},
		Required: []string{"resourceName", "type"},
		Numeric:  []string{"quantity", "venueId"},
	}, notifier)
}

func resourceRequest(form Form) upstream.ResourceRequest {
	return upstream.ResourceRequest{
		ResourceName: form.text("resourceName"),
		Type:         form.text("type"),
		VenueID:      form.optInteger("venueId"),
		Quantity:     form.optInteger("quantity"),
		Status:       form.text("status"),
	}
}
