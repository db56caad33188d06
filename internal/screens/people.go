package screens

import (
	"context"

	"eventdesk-console-go/internal/listview"
	"eventdesk-console-go/internal/upstream"
)

func newUsersScreen(client *upstream.Client, notifier Notifier, pageSize int) *Controller[upstream.User] {
	return NewController(Config[upstream.User]{
		Name:     "user",
		PageSize: pageSize,
		ID:       func(u upstream.User) int { return u.UserID },
		SearchFields: func(u upstream.User) []string {
			return []string{u.FullName, u.Email}
		},
		Dimensions: []listview.Dimension[upstream.User]{
			{Name: "status", Value: func(u upstream.User) string { return u.Status }},
			{Name: "role", Value: func(u upstream.User) string { return u.Role }},
		},
		Statuses: []string{upstream.UserStatusActive, upstream.UserStatusSuspended},
		List:     client.ListUsers,
		SetStatus: func(ctx context.Context, id int, status string) error {
			_, err := client.SetUserStatus(ctx, id, status)
			return err
		},
		Delete: client.DeleteUser,
		Create: func(ctx context.Context, form Form) error {
			_, err := client.CreateUser(ctx, userRequest(form))
			return err
		},
		Update: func(ctx context.Context, id int, form Form) error {
			_, err := client.UpdateUser(ctx, id, userRequest(form))
			return err
		},
		Required: []string{"fullName", "email", "role"},
		Numeric:  []string{"organizationId"},
	}, notifier)
}

func userRequest(form Form) upstream.UserRequest {
	return upstream.UserRequest{
		FullName:       form.text("fullName"),
		Email:          form.text("email"),
		Phone:          form.optText("phone"),
		Role:           form.text("role"),
		OrganizationID: form.optInteger("organizationId"),
		Status:         form.text("status"),
	}
}

func newOrganizationsScreen(client *upstream.Client, notifier Notifier, pageSize int) *Controller[upstream.Organization] {
	return NewController(Config[upstream.Organization]{
		Name:     "organization",
		PageSize: pageSize,
		ID:       func(o upstream.Organization) int { return o.OrganizationID },
		SearchFields: func(o upstream.Organization) []string {
			return []string{o.Name, o.ContactEmail}
		},
		Dimensions: []listview.Dimension[upstream.Organization]{
			{Name: "status", Value: func(o upstream.Organization) string { return o.Status }},
		},
		Statuses: []string{
			upstream.OrganizationStatusActive,
			upstream.OrganizationStatusSuspended,
		},
		List: client.ListOrganizations,
		SetStatus: func(ctx context.Context, id int, status string) error {
			_, err := client.SetOrganizationStatus(ctx, id, status)
			return err
		},
		Delete: client.DeleteOrganization,
		Create: func(ctx context.Context, form Form) error {
			_, err := client.CreateOrganization(ctx, organizationRequest(form))
			return err
		},
		Update: func(ctx context.Context, id int, form Form) error {
			_, err := client.UpdateOrganization(ctx, id, organizationRequest(form))
			return err
		},
		Required: []string{"name", "contactEmail"},
	}, notifier)
}

func organizationRequest(form Form) upstream.OrganizationRequest {
	return upstream.OrganizationRequest{
		Name:         form.text("name"),
		ContactEmail: form.text("contactEmail"),
		Phone:        form.optText("phone"),
		Address:      form.optText("address"),
		Status:       form.text("status"),
	}
}
