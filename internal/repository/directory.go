package repository

import (
	"context"

	"hackconnect-backend/internal/appwrite"
	apperrors "hackconnect-backend/internal/errors"
)

// Directory adapts the Appwrite Users API to the user directory consumed by
// profile merging and membership enrichment
type Directory struct {
	users *appwrite.Users
}

// NewDirectory creates a new directory
func NewDirectory(users *appwrite.Users) *Directory {
	return &Directory{users: users}
}

// Get resolves one directory account by id
func (d *Directory) Get(ctx context.Context, userID string) (*appwrite.User, error) {
	user, err := d.users.Get(ctx, userID)
	if err != nil {
		if appwrite.IsNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// List fetches up to limit directory accounts
func (d *Directory) List(ctx context.Context, limit int) ([]appwrite.User, error) {
	list, err := d.users.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	return list.Users, nil
}

// UpdateName changes the display name of a directory account
func (d *Directory) UpdateName(ctx context.Context, userID, name string) error {
	if err := d.users.UpdateName(ctx, userID, name); err != nil {
		if appwrite.IsNotFound(err) {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	return nil
}
