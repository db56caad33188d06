package upstream

import (
	"context"
	"strconv"
)

const (
	VenueStatusActive   = "Active"
	VenueStatusInactive = "Inactive"
)

type Venue struct {
	VenueID   int     `json:"venueId"`
	VenueName string  `json:"venueName"`
	Location  *string `json:"location,omitempty"`
	Capacity  *int    `json:"capacity,omitempty"`
	ImageURL  *string `json:"imageUrl,omitempty"`
	Status    string  `json:"status"`
}

type VenueRequest struct {
	VenueName string  `json:"venueName"`
	Location  *string `json:"location,omitempty"`
	Capacity  *int    `json:"capacity,omitempty"`
	Status    string  `json:"status,omitempty"`
}

func (c *Client) ListVenues(ctx context.Context) ([]Venue, error) {
	raw, err := c.get(ctx, "/venues")
	if err != nil {
		return nil, err
	}
	return decodeItems[Venue](raw)
}

func (c *Client) GetVenue(ctx context.Context, id int) (Venue, error) {
	raw, err := c.get(ctx, idPath("/venues", id))
	if err != nil {
		return Venue{}, err
	}
	return decodeItem[Venue](raw)
}

func (c *Client) CreateVenue(ctx context.Context, in VenueRequest) (Venue, error) {
	raw, err := c.post(ctx, "/venues", in)
	if err != nil {
		return Venue{}, err
	}
	return decodeItem[Venue](raw)
}

func (c *Client) UpdateVenue(ctx context.Context, id int, in VenueRequest) (Venue, error) {
	raw, err := c.put(ctx, idPath("/venues", id), in)
	if err != nil {
		return Venue{}, err
	}
	return decodeItem[Venue](raw)
}

func (c *Client) DeleteVenue(ctx context.Context, id int) error {
	_, err := c.delete(ctx, idPath("/venues", id))
	return err
}

func (c *Client) SetVenueStatus(ctx context.Context, id int, status string) (Venue, error) {
	raw, err := c.put(ctx, idPath("/venues", id)+"/status", statusChange{Status: status})
	if err != nil {
		return Venue{}, err
	}
	return decodeItem[Venue](raw)
}

func (c *Client) UploadVenueImage(ctx context.Context, id int, file FormFile) (string, error) {
	body := &FormBody{
		Fields: map[string]string{"venueId": strconv.Itoa(id)},
		Files:  []FormFile{file},
	}
	raw, err := c.post(ctx, idPath("/venues", id)+"/image", body)
	if err != nil {
		return "", err
	}
	uploaded, err := decodeItem[uploadResult](raw)
	if err != nil {
		return "", err
	}
	return uploaded.URL, nil
}
