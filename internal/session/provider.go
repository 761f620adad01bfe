package session

import (
	"errors"

	"billed-fe-svc/internal/models"
)

// ErrNoSession is returned when no user is signed in
var ErrNoSession = errors.New("no active session")

// Provider gives components the signed-in user
type Provider interface {
	CurrentUser() (*models.Session, error)
}

// Static is a Provider bound to one already decoded session
type Static struct {
	Session *models.Session
}

// CurrentUser implements Provider
func (s Static) CurrentUser() (*models.Session, error) {
	if s.Session == nil {
		return nil, ErrNoSession
	}
	return s.Session, nil
}
