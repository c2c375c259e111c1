package security

import (
	"github.com/cockroachdb/errors"

	"github.com/replyflow/replyflow-backend/models"
)

type EnforceSecurity interface {
	ReadOwned(ownerUserId string) error
	WriteOwned(ownerUserId string) error
	Admin() error
	Authenticated() error
}

type EnforceSecurityImpl struct {
	Credentials models.Credentials
}

func (e *EnforceSecurityImpl) Authenticated() error {
	if e.Credentials.UserId == "" {
		return errors.Wrap(models.UnAuthorizedError, "authentication required")
	}
	return nil
}

// ReadOwned allows access to records owned by the caller. Admins can read
// any user's records for the back-office surface.
func (e *EnforceSecurityImpl) ReadOwned(ownerUserId string) error {
	if err := e.Authenticated(); err != nil {
		return err
	}
	if e.Credentials.UserId == ownerUserId || e.Credentials.Role == models.RoleAdmin {
		return nil
	}
	return errors.Wrap(models.ForbiddenError, "record belongs to another user")
}

// WriteOwned allows mutation only by the owner themselves. Guest sessions
// are not durable and may not write.
func (e *EnforceSecurityImpl) WriteOwned(ownerUserId string) error {
	if err := e.Authenticated(); err != nil {
		return err
	}
	if e.Credentials.Guest {
		return errors.Wrap(models.ForbiddenError, "guest sessions cannot modify data")
	}
	if e.Credentials.UserId == ownerUserId || e.Credentials.Role == models.RoleAdmin {
		return nil
	}
	return errors.Wrap(models.ForbiddenError, "record belongs to another user")
}

func (e *EnforceSecurityImpl) Admin() error {
	if err := e.Authenticated(); err != nil {
		return err
	}
	if e.Credentials.Role != models.RoleAdmin {
		return errors.Wrap(models.ForbiddenError, "admin role required")
	}
	return nil
}
