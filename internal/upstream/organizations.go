package upstream

import "context"

const (
	OrganizationStatusActive    = "Active"
	OrganizationStatusSuspended = "Suspended"
)

type Organization struct {
	OrganizationID int     `json:"organizationId"`
	Name           string  `json:"name"`
	ContactEmail   string  `json:"contactEmail"`
	Phone          *string `json:"phone,omitempty"`
	Address        *string `json:"address,omitempty"`
	Status         string  `json:"status"`
}

type OrganizationRequest struct {
	Name         string  `json:"name"`
	ContactEmail string  `json:"contactEmail"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	Status       string  `json:"status,omitempty"`
}

func (c *Client) ListOrganizations(ctx context.Context) ([]Organization, error) {
	raw, err := c.get(ctx, "/organizations")
	if err != nil {
		return nil, err
	}
	return decodeItems[Organization](raw)
}

func (c *Client) GetOrganization(ctx context.Context, id int) (Organization, error) {
	raw, err := c.get(ctx, idPath("/organizations", id))
	if err != nil {
		return Organization{}, err
	}
	return decodeItem[Organization](raw)
}

func (c *Client) CreateOrganization(ctx context.Context, in OrganizationRequest) (Organization, error) {
	raw, err := c.post(ctx, "/organizations", in)
	if err != nil {
		return Organization{}, err
	}
	return decodeItem[Organization](raw)
}

func (c *Client) UpdateOrganization(ctx context.Context, id int, in OrganizationRequest) (Organization, error) {
	raw, err := c.put(ctx, idPath("/organizations", id), in)
	if err != nil {
		return Organization{}, err
	}
	return decodeItem[Organization](raw)
}

func (c *Client) DeleteOrganization(ctx context.Context, id int) error {
	_, err := c.delete(ctx, idPath("/organizations", id))
	return err
}

func (c *Client) SetOrganizationStatus(ctx context.Context, id int, status string) (Organization, error) {
	raw, err := c.put(ctx, idPath("/organizations", id)+"/status", statusChange{Status: status})
	if err != nil {
		return Organization{}, err
	}
	return decodeItem[Organization](raw)
}
