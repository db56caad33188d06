package upstream

import "context"

const (
	TicketStatusActive    = "Active"
	TicketStatusUsed      = "Used"
	TicketStatusCancelled = "Cancelled"
)

type Ticket struct {
	TicketID    int     `json:"ticketId"`
	EventID     int     `json:"eventId"`
	EventTitle  *string `json:"eventTitle,omitempty"`
	HolderEmail string  `json:"holderEmail"`
	TicketCode  string  `json:"ticketCode"`
	Category    string  `json:"category"`
	Price       *float64 `json:"price,omitempty"`
	Status      string  `json:"status"`
}

func (c *Client) ListTickets(ctx context.Context) ([]Ticket, error) {
	raw, err := c.get(ctx, "/tickets")
	if err != nil {
		return nil, err
	}
	return decodeItems[Ticket](raw)
}

func (c *Client) GetTicket(ctx context.Context, id int) (Ticket, error) {
	raw, err := c.get(ctx, idPath("/tickets", id))
	if err != nil {
		return Ticket{}, err
	}
	return decodeItem[Ticket](raw)
}

func (c *Client) DeleteTicket(ctx context.Context, id int) error {
	_, err := c.delete(ctx, idPath("/tickets", id))
	return err
}

func (c *Client) SetTicketStatus(ctx context.Context, id int, status string) (Ticket, error) {
	raw, err := c.put(ctx, idPath("/tickets", id)+"/status", statusChange{Status: status})
	if err != nil {
		return Ticket{}, err
	}
	return decodeItem[Ticket](raw)
}
