package upstream

import "context"

const (
	RegistrationStatusPending   = "Pending"
	RegistrationStatusConfirmed = "Confirmed"
	RegistrationStatusCancelled = "Cancelled"
)

type Registration struct {
	RegistrationID int     `json:"registrationId"`
	EventID        int     `json:"eventId"`
	EventTitle     *string `json:"eventTitle,omitempty"`
	AttendeeName   string  `json:"attendeeName"`
	AttendeeEmail  string  `json:"attendeeEmail"`
	RegisteredAt   *string `json:"registeredAt,omitempty"`
	Status         string  `json:"status"`
}

func (c *Client) ListRegistrations(ctx context.Context) ([]Registration, error) {
	raw, err := c.get(ctx, "/registrations")
	if err != nil {
		return nil, err
	}
	return decodeItems[Registration](raw)
}

func (c *Client) GetRegistration(ctx context.Context, id int) (Registration, error) {
	raw, err := c.get(ctx, idPath("/registrations", id))
	if err != nil {
		return Registration{}, err
	}
	return decodeItem[Registration](raw)
}

func (c *Client) DeleteRegistration(ctx context.Context, id int) error {
	_, err := c.delete(ctx, idPath("/registrations", id))
	return err
}

func (c *Client) SetRegistrationStatus(ctx context.Context, id int, status string) (Registration, error) {
	raw, err := c.put(ctx, idPath("/registrations", id)+"/status", statusChange{Status: status})
	if err != nil {
		return Registration{}, err
	}
	return decodeItem[Registration](raw)
}
