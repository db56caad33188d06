package screens

import (
	"context"
	"strconv"

	"eventdesk-console-go/internal/listview"
	"eventdesk-console-go/internal/upstream"
)

func newRegistrationsScreen(client *upstream.Client, notifier Notifier, pageSize int) *Controller[upstream.Registration] {
	return NewController(Config[upstream.Registration]{
		Name:     "registration",
		PageSize: pageSize,
		ID:       func(r upstream.Registration) int { return r.RegistrationID },
		SearchFields: func(r upstream.Registration) []string {
			return []string{r.AttendeeName, r.AttendeeEmail}
		},
		Dimensions: []listview.Dimension[upstream.Registration]{
			{Name: "status", Value: func(r upstream.Registration) string { return r.Status }},
			{Name: "eventId", Value: func(r upstream.Registration) string { return itoa(r.EventID) }},
		},
		Statuses: []string{
			upstream.RegistrationStatusPending,
			upstream.RegistrationStatusConfirmed,
			upstream.RegistrationStatusCancelled,
		},
		List: client.ListRegistrations,
		SetStatus: func(ctx context.Context, id int, status string) error {
			_, err := client.SetRegistrationStatus(ctx, id, status)
			return err
		},
		Delete: client.DeleteRegistration,
	}, notifier)
}

func newTicketsScreen(client *upstream.Client, notifier Notifier, pageSize int) *Controller[upstream.Ticket] {
	return NewController(Config[upstream.Ticket]{
		Name:     "ticket",
		PageSize: pageSize,
		ID:       func(t upstream.Ticket) int { return t.TicketID },
		SearchFields: func(t upstream.Ticket) []string {
			return []string{t.HolderEmail, t.TicketCode}
		},
		Dimensions: []listview.Dimension[upstream.Ticket]{
			{Name: "status", Value: func(t upstream.Ticket) string { return t.Status }},
			{Name: "category", Value: func(t upstream.Ticket) string { return t.Category }},
			{Name: "eventId", Value: func(t upstream.Ticket) string { return itoa(t.EventID) }},
		},
		Statuses: []string{
			upstream.TicketStatusActive,
			upstream.TicketStatusUsed,
			upstream.TicketStatusCancelled,
		},
		List: client.ListTickets,
		SetStatus: func(ctx context.Context, id int, status string) error {
			_, err := client.SetTicketStatus(ctx, id, status)
			return err
		},
		Delete: client.DeleteTicket,
	}, notifier)
}

func itoa(id int) string {
	return strconv.Itoa(id)
}
