package usecases

import "github.com/estatedesk/estatedesk/internal/shared/authorization"

type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify returns an error when password does not match hash.
	Verify(hash, password string) error
}

// TokenIssuer mints access tokens for staff sessions.
type TokenIssuer interface {
	Issue(adminID uint, name string, role authorization.AdminRole) (token string, expiresIn int64, err error)
}
