package domain

import (
	"context"
	"time"
)

// User represents a registered account. A user can author articles, comment,
// favorite articles and follow other users.
type User struct {
	ID        int64     // Unique identifier
	Email     string    // Login email (unique)
	Username  string    // Display/handle name (unique)
	Password  string    // Bcrypt hashed password
	Bio       string    // Free-text bio
	Image     string    // Avatar URL
	CreatedAt time.Time // Account creation timestamp
	UpdatedAt time.Time // Last profile update timestamp
}

// Profile returns the user as seen by a viewer with the given follow state.
func (u User) Profile(following bool) Profile {
	return Profile{
		Username:  u.Username,
		Bio:       u.Bio,
		Image:     u.Image,
		Following: following,
	}
}

// AuthenticatedUser is a user plus a freshly issued token.
type AuthenticatedUser struct {
	User
	Token string
}

// UserUpdate carries the optional fields of a profile update; nil fields
// retain their stored values.
type UserUpdate struct {
	Email    *string
	Username *string
	Password *string
	Bio      *string
	Image    *string
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by id. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id int64) (User, error)

	// GetByIDs retrieves users for the given id set in one query.
	GetByIDs(ctx context.Context, ids []int64) ([]User, error)

	// GetByEmail retrieves a user by email. Used during login.
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByUsername retrieves a user by username.
	GetByUsername(ctx context.Context, username string) (User, error)

	// Insert creates a new account and backfills the ID.
	// Returns ErrConflict when email or username is taken.
	Insert(ctx context.Context, u *User) error

	// Update modifies an existing user's information.
	Update(ctx context.Context, u *User) error
}

// UserUsecase handles registration, authentication and account updates.
// The article pipeline never sees credentials or tokens, only resolved ids.
type UserUsecase interface {
	// Register creates an account. Returns ErrConflict when the email or
	// username already exists.
	Register(ctx context.Context, email, username, password string) (AuthenticatedUser, error)

	// Login verifies credentials and returns the user with a fresh token.
	// Returns ErrNotFound for an unknown email and ErrBadParamInput for a
	// wrong password.
	Login(ctx context.Context, email, password string) (AuthenticatedUser, error)

	// GetCurrent returns the user behind an already-resolved id with a
	// fresh token.
	GetCurrent(ctx context.Context, userID int64) (AuthenticatedUser, error)

	// Update merges the non-nil fields; a supplied password is re-hashed.
	Update(ctx context.Context, userID int64, upd UserUpdate) (AuthenticatedUser, error)
}
