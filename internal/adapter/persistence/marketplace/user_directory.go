package marketplace

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"blind_negotiation/internal/domain/entities"
	"blind_negotiation/internal/usecase/interfaces"
)

const selectUser = `SELECT id, name, email, phone, profile_image, company_name FROM users WHERE id = ?`

// UserDirectory reads public profiles from the marketplace users table.
type UserDirectory struct {
	db *sql.DB
}

var _ interfaces.IUserDirectory = (*UserDirectory)(nil)

func NewUserDirectory(db *sql.DB) *UserDirectory {
	return &UserDirectory{db: db}
}

// GetProfile returns nil, nil for unknown users.
func (d *UserDirectory) GetProfile(ctx context.Context, userID string) (*entities.UserProfile, error) {
	if d == nil || d.db == nil {
		return nil, errors.New("user directory not configured")
	}

	var id, name, email, phone, image, company sql.NullString
	err := d.db.QueryRowContext(ctx, selectUser, userID).Scan(&id, &name, &email, &phone, &image, &company)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("user lookup %s: %w", userID, err)
	}
	return &entities.UserProfile{
		ID:          id.String,
		Name:        name.String,
		Email:       email.String,
		Phone:       phone.String,
		Image:       image.String,
		CompanyName: company.String,
	}, nil
}
