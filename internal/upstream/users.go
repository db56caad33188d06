package upstream

import "context"

const (
	UserStatusActive    = "Active"
	UserStatusSuspended = "Suspended"
)

type User struct {
	UserID         int     `json:"userId"`
	FullName       string  `json:"fullName"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone,omitempty"`
	Role           string  `json:"role"`
	OrganizationID *int    `json:"organizationId,omitempty"`
	Status         string  `json:"status"`
}

type UserRequest struct {
	FullName       string  `json:"fullName"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone,omitempty"`
	Role           string  `json:"role"`
	OrganizationID *int    `json:"organizationId,omitempty"`
	Status         string  `json:"status,omitempty"`
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	raw, err := c.get(ctx, "/users")
	if err != nil {
		return nil, err
	}
	return decodeItems[User](raw)
}

func (c *Client) GetUser(ctx context.Context, id int) (User, error) {
	raw, err := c.get(ctx, idPath("/users", id))
	if err != nil {
		return User{}, err
	}
	return decodeItem[User](raw)
}

func (c *Client) CreateUser(ctx context.Context, in UserRequest) (User, error) {
	raw, err := c.post(ctx, "/users", in)
	if err != nil {
		return User{}, err
	}
	return decodeItem[User](raw)
}

func (c *Client) UpdateUser(ctx context.Context, id int, in UserRequest) (User, error) {
	raw, err := c.put(ctx, idPath("/users", id), in)
	if err != nil {
		return User{}, err
	}
	return decodeItem[User](raw)
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	_, err := c.delete(ctx, idPath("/users", id))
	return err
}

func (c *Client) SetUserStatus(ctx context.Context, id int, status string) (User, error) {
	raw, err := c.put(ctx, idPath("/users", id)+"/status", statusChange{Status: status})
	if err != nil {
		return User{}, err
	}
	return decodeItem[User](raw)
}
