package upstream

import (
	"context"
	"strconv"
)

// Event statuses used by the admin screens.
const (
	EventStatusActive    = "Active"
	EventStatusDraft     = "Draft"
	EventStatusCompleted = "Completed"
)

type Event struct {
	EventID     int     `json:"eventId"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Location    string  `json:"location"`
	Category    string  `json:"category"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	MaxSeats    int     `json:"maxSeats"`
	BannerURL   *string `json:"bannerUrl,omitempty"`
	VenueID     *int    `json:"venueId,omitempty"`
	VenueName   *string `json:"venueName,omitempty"`
	Status      string  `json:"status"`
}

type EventRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Location    string  `json:"location"`
	Category    string  `json:"category"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	MaxSeats    int     `json:"maxSeats"`
	VenueID     *int    `json:"venueId,omitempty"`
	Status      string  `json:"status,omitempty"`
}

func (c *Client) ListEvents(ctx context.Context) ([]Event, error) {
	raw, err := c.get(ctx, "/events")
	if err != nil {
		return nil, err
	}
	return decodeItems[Event](raw)
}

func (c *Client) GetEvent(ctx context.Context, id int) (Event, error) {
	raw, err := c.get(ctx, idPath("/events", id))
	if err != nil {
		return Event{}, err
	}
	return decodeItem[Event](raw)
}

func (c *Client) CreateEvent(ctx context.Context, in EventRequest) (Event, error) {
	raw, err := c.post(ctx, "/events", in)
	if err != nil {
		return Event{}, err
	}
	return decodeItem[Event](raw)
}

func (c *Client) UpdateEvent(ctx context.Context, id int, in EventRequest) (Event, error) {
	raw, err := c.put(ctx, idPath("/events", id), in)
	if err != nil {
		return Event{}, err
	}
	return decodeItem[Event](raw)
}

func (c *Client) DeleteEvent(ctx context.Context, id int) error {
	_, err := c.delete(ctx, idPath("/events", id))
	return err
}

func (c *Client) SetEventStatus(ctx context.Context, id int, status string) (Event, error) {
	raw, err := c.put(ctx, idPath("/events", id)+"/status", statusChange{Status: status})
	if err != nil {
		return Event{}, err
	}
	return decodeItem[Event](raw)
}

// UploadEventBanner sends a multipart payload: the image file plus the owning
// event id as a plain field.
func (c *Client) UploadEventBanner(ctx context.Context, id int, file FormFile) (string, error) {
	body := &FormBody{
		Fields: map[string]string{"eventId": strconv.Itoa(id)},
		Files:  []FormFile{file},
	}
	raw, err := c.post(ctx, idPath("/events", id)+"/banner", body)
	if err != nil {
		return "", err
	}
	uploaded, err := decodeItem[uploadResult](raw)
	if err != nil {
		return "", err
	}
	return uploaded.URL, nil
}

type statusChange struct {
	Status string `json:"status"`
}

type uploadResult struct {
	URL string `json:"url"`
}
