package screens

import (
	"strconv"
	"strings"

	"eventdesk-console-go/internal/upstream"
)

// Set is every admin screen in the console, one configured controller per
// remote collection.
type Set struct {
	Events        *Controller[upstream.Event]
	Venues        *Controller[upstream.Venue]
	Resources     *Controller[upstream.Resource]
	Users         *Controller[upstream.User]
	Organizations *Controller[upstream.Organization]
	Bookings      *Controller[upstream.Booking]
	Payments      *Controller[upstream.Payment]
	Registrations *Controller[upstream.Registration]
	Tickets       *Controller[upstream.Ticket]
}

func NewSet(client *upstream.Client, notifier Notifier, pageSize int) *Set {
	return &Set{
		Events:        newEventsScreen(client, notifier, pageSize),
		Venues:        newVenuesScreen(client, notifier, pageSize),
		Resources:     newResourcesScreen(client, notifier, pageSize),
		Users:         newUsersScreen(client, notifier, pageSize),
		Organizations: newOrganizationsScreen(client, notifier, pageSize),
		Bookings:      newBookingsScreen(client, notifier, pageSize),
		Payments:      newPaymentsScreen(client, notifier, pageSize),
		Registrations: newRegistrationsScreen(client, notifier, pageSize),
		Tickets:       newTicketsScreen(client, notifier, pageSize),
	}
}

// Form readers. Validation has already run by the time these are called, so
// parse failures fall back to zero values.

func (f Form) text(key string) string {
	return strings.TrimSpace(f[key])
}

func (f Form) optText(key string) *string {
	value := f.text(key)
	if value == "" {
		return nil
	}
	return &value
}

func (f Form) integer(key string) int {
	value, _ := strconv.Atoi(f.text(key))
	return value
}

func (f Form) optInteger(key string) *int {
	raw := f.text(key)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}
