package model

import "time"

// User is an identity record owned by the external auth provider. Identifiers
// are provider-issued opaque strings, not UUIDs, so User does not embed Base.
type User struct {
	ID            string    `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Email         string    `json:"email" db:"email"`
	EmailVerified bool      `json:"email_verified" db:"email_verified"`
	Image         *string   `json:"image,omitempty" db:"image"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// Session is an active login. Sessions are issued by the auth provider; this
// API only resolves them by token.
type Session struct {
	ID        string    `json:"id" db:"id"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	Token     string    `json:"-" db:"token"`
	IPAddress *string   `json:"ip_address,omitempty" db:"ip_address"`
	UserAgent *string   `json:"user_agent,omitempty" db:"user_agent"`
	UserID    string    `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Account links a user to a credential or OAuth provider.
type Account struct {
	ID                    string     `json:"id" db:"id"`
	AccountID             string     `json:"account_id" db:"account_id"`
	ProviderID            string     `json:"provider_id" db:"provider_id"`
	UserID                string     `json:"user_id" db:"user_id"`
	AccessToken           *string    `json:"-" db:"access_token"`
	RefreshToken          *string    `json:"-" db:"refresh_token"`
	IDToken               *string    `json:"-" db:"id_token"`
	AccessTokenExpiresAt  *time.Time `json:"access_token_expires_at,omitempty" db:"access_token_expires_at"`
	RefreshTokenExpiresAt *time.Time `json:"refresh_token_expires_at,omitempty" db:"refresh_token_expires_at"`
	Scope                 *string    `json:"scope,omitempty" db:"scope"`
	Password              *string    `json:"-" db:"password"`
	CreatedAt             time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at" db:"updated_at"`
}

// Verification is a pending verification challenge (email confirmation,
// password reset). Not linked to a user row.
type Verification struct {
	ID         string    `json:"id" db:"id"`
	Identifier string    `json:"identifier" db:"identifier"`
	Value      string    `json:"-" db:"value"`
	ExpiresAt  time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// SessionUser is what session resolution yields: the session joined with its
// owning user.
type SessionUser struct {
	Session Session `json:"session"`
	User    User    `json:"user"`
}
