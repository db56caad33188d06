package upstream

import "context"

const (
	ResourceStatusAvailable = "Available"
	ResourceStatusInUse     = "InUse"
	ResourceStatusRetired   = "Retired"
)

// Resource is a bookable piece of equipment or a room attached to a venue.
type Resource struct {
	ResourceID   int     `json:"resourceId"`
	ResourceName string  `json:"resourceName"`
	Type         string  `json:"type"`
	VenueID      *int    `json:"venueId,omitempty"`
	VenueName    *string `json:"venueName,omitempty"`
	Quantity     *int    `json:"quantity,omitempty"`
	Status       string  `json:"status"`
}

type ResourceRequest struct {
	ResourceName string `json:"resourceName"`
	Type         string `json:"type"`
	VenueID      *int   `json:"venueId,omitempty"`
	Quantity     *int   `json:"quantity,omitempty"`
	Status       string `json:"status,omitempty"`
}

func (c *Client) ListResources(ctx context.Context) ([]Resource, error) {
	raw, err := c.get(ctx, "/resources")
	if err != nil {
		return nil, err
	}
	return decodeItems[Resource](raw)
}

func (c *Client) GetResource(ctx context.Context, id int) (Resource, error) {
	raw, err := c.get(ctx, idPath("/resources", id))
	if err != nil {
		return Resource{}, err
	}
	return decodeItem[Resource](raw)
}

func (c *Client) CreateResource(ctx context.Context, in ResourceRequest) (Resource, error) {
	raw, err := c.post(ctx, "/resources", in)
	if err != nil {
		return Resource{}, err
	}
	return decodeItem[Resource](raw)
}

func (c *Client) UpdateResource(ctx context.Context, id int, in ResourceRequest) (Resource, error) {
	raw, err := c.put(ctx, idPath("/resources", id), in)
	if err != nil {
		return Resource{}, err
	}
	return decodeItem[Resource](raw)
}

func (c *Client) DeleteResource(ctx context.Context, id int) error {
	_, err := c.delete(ctx, idPath("/resources", id))
	return err
}

func (c *Client) SetResourceStatus(ctx context.Context, id int, status string) (Resource, error) {
	raw, err := c.put(ctx, idPath("/resources", id)+"/status", statusChange{Status: status})
	if err != nil {
		return Resource{}, err
	}
	return decodeItem[Resource](raw)
}
