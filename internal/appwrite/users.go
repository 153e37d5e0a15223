package appwrite

import (
	"context"
	"net/http"
	"net/url"
)

// Users exposes the slice of the Appwrite Users API this service consumes:
// the auth directory that owns account email and display name
type Users struct {
	client *Client
}

// NewUsers creates a Users service
func NewUsers(client *Client) *Users {
	return &Users{client: client}
}

// User is an auth directory account
type User struct {
	ID        string `json:"$id"`
	CreatedAt string `json:"$createdAt"`
	UpdatedAt string `json:"$updatedAt"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Status    bool   `json:"status"`
}

// UserList is a page of directory accounts
type UserList struct {
	Total int64  `json:"total"`
	Users []User `json:"users"`
}

// Get fetches a single directory account by id
func (u *Users) Get(ctx context.Context, userID string) (*User, error) {
	var user User
	if err := u.client.call(ctx, http.MethodGet, "/users/"+userID, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// List fetches up to limit directory accounts
func (u *Users) List(ctx context.Context, limit int) (*UserList, error) {
	values := url.Values{}
	values.Add("queries[]", QueryLimit(limit))

	var list UserList
	if err := u.client.call(ctx, http.MethodGet, "/users", values, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// UpdateName changes the display name of a directory account
func (u *Users) UpdateName(ctx context.Context, userID, name string) error {
	body := map[string]string{"name": name}
	return u.client.call(ctx, http.MethodPatch, "/users/"+userID+"/name", nil, body, nil)
}
