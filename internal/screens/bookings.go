package screens

import (
	"context"

	"eventdesk-console-go/internal/listview"
	"eventdesk-console-go/internal/upstream"
)

// The bookings screen is the approval workflow: pending requests are approved
// or rejected in place, so it reconciles optimistically instead of refetching
// after every decision.
func newBookingsScreen(client *upstream.Client, notifier Notifier, pageSize int) *Controller[upstream.Booking] {
	return NewController(Config[upstream.Booking]{
		Name:     "booking",
		PageSize: pageSize,
		ID:       func(b upstream.Booking) int { return b.BookingID },
		SearchFields: func(b upstream.Booking) []string {
			fields := []string{b.RequestedBy}
			if b.EventTitle != nil {
				fields = append(fields, *b.EventTitle)
			}
			if b.VenueName != nil {
				fields = append(fields, *b.VenueName)
			}
			return fields
		},
		Dimensions: []listview.Dimension[upstream.Booking]{
			{Name: "status", Value: func(b upstream.Booking) string { return b.Status }},
			{Name: "eventId", Value: func(b upstream.Booking) string { return itoa(b.EventID) }},
		},
		Statuses: []string{
			upstream.BookingStatusPending,
			upstream.BookingStatusApproved,
			upstream.BookingStatusRejected,
		},
		Reconcile: ReconcilePatch,
		ApplyStatus: func(b upstream.Booking, status string) upstream.Booking {
			b.Status = status
			return b
		},
		List: client.ListBookings,
		SetStatus: func(ctx context.Context, id int, status string) error {
			_, err := client.DecideBooking(ctx, id, upstream.BookingDecision{Status: status})
			return err
		},
		Delete: client.DeleteBooking,
		Create: func(ctx context.Context, form Form) error {
			_, err := client.CreateBooking(ctx, bookingRequest(form))
			return err
		},
		Update: func(ctx context.Context, id int, form Form) error {
			_, err := client.UpdateBooking(ctx, id, bookingRequest(form))
			return err
		},
		Required: []string{"eventId", "venueId", "requestedBy", "startTime", "endTime"},
		Numeric:  []string{"eventId", "venueId"},
	}, notifier)
}

func bookingRequest(form Form) upstream.BookingRequest {
	return upstream.BookingRequest{
		EventID:     form.integer("eventId"),
		VenueID:     form.integer("venueId"),
		RequestedBy: form.text("requestedBy"),
		StartTime:   form.text("startTime"),
		EndTime:     form.text("endTime"),
		Note:        form.optText("note"),
	}
}

func newPaymentsScreen(client *upstream.Client, notifier Notifier, pageSize int) *Controller[upstream.Payment] {
	return NewController(Config[upstream.Payment]{
		Name:     "payment",
		PageSize: pageSize,
		ID:       func(p upstream.Payment) int { return p.PaymentID },
		SearchFields: func(p upstream.Payment) []string {
			return []string{p.PayerEmail, p.Method}
		},
		Dimensions: []listview.Dimension[upstream.Payment]{
			{Name: "status", Value: func(p upstream.Payment) string { return p.Status }},
			{Name: "method", Value: func(p upstream.Payment) string { return p.Method }},
		},
		Statuses: []string{
			upstream.PaymentStatusPending,
			upstream.PaymentStatusPaid,
			upstream.PaymentStatusRefunded,
		},
		List: client.ListPayments,
		SetStatus: func(ctx context.Context, id int, status string) error {
			_, err := client.SetPaymentStatus(ctx, id, status)
			return err
		},
	}, notifier)
}
