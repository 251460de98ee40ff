package auth

import "github.com/kruttikastudy/icd-website/internal/domain"

// LoginResult is returned by Login.
type LoginResult struct {
	Token   string // signed session token for the cookie
	Session *domain.Session
	User    *domain.User
}
