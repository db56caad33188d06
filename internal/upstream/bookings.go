package upstream

import "context"

// Booking approval states.
const (
	BookingStatusPending  = "Pending"
	BookingStatusApproved = "Approved"
	BookingStatusRejected = "Rejected"
)

// Booking references its event and venue by id only; the console does not
// validate those references, the upstream does.
type Booking struct {
	BookingID   int     `json:"bookingId"`
	EventID     int     `json:"eventId"`
	EventTitle  *string `json:"eventTitle,omitempty"`
	VenueID     int     `json:"venueId"`
	VenueName   *string `json:"venueName,omitempty"`
	RequestedBy string  `json:"requestedBy"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Note        *string `json:"note,omitempty"`
	Status      string  `json:"status"`
}

type BookingRequest struct {
	EventID     int     `json:"eventId"`
	VenueID     int     `json:"venueId"`
	RequestedBy string  `json:"requestedBy"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Note        *string `json:"note,omitempty"`
}

// BookingDecision carries an approval or rejection plus the reviewer's note.
type BookingDecision struct {
	Status string  `json:"status"`
	Reason *string `json:"reason,omitempty"`
}

func (c *Client) ListBookings(ctx context.Context) ([]Booking, error) {
	raw, err := c.get(ctx, "/bookings")
	if err != nil {
		return nil, err
	}
	return decodeItems[Booking](raw)
}

func (c *Client) GetBooking(ctx context.Context, id int) (Booking, error) {
	raw, err := c.get(ctx, idPath("/bookings", id))
	if err != nil {
		return Booking{}, err
	}
	return decodeItem[Booking](raw)
}

func (c *Client) CreateBooking(ctx context.Context, in BookingRequest) (Booking, error) {
	raw, err := c.post(ctx, "/bookings", in)
	if err != nil {
		return Booking{}, err
	}
	return decodeItem[Booking](raw)
}

func (c *Client) UpdateBooking(ctx context.Context, id int, in BookingRequest) (Booking, error) {
	raw, err := c.put(ctx, idPath("/bookings", id), in)
	if err != nil {
		return Booking{}, err
	}
	return decodeItem[Booking](raw)
}

func (c *Client) DeleteBooking(ctx context.Context, id int) error {
	_, err := c.delete(ctx, idPath("/bookings", id))
	return err
}

func (c *Client) DecideBooking(ctx context.Context, id int, decision BookingDecision) (Booking, error) {
	raw, err := c.put(ctx, idPath("/bookings", id)+"/status", decision)
	if err != nil {
		return Booking{}, err
	}
	return decodeItem[Booking](raw)
}
