package auth

import (
	"strings"

	"github.com/kruttikastudy/icd-website/internal/domain"
)

const (
	maxUsernameLength = 50
	maxEmailLength    = 100
	minPasswordLength = 8
	// bcrypt ignores input beyond 72 bytes.
	maxPasswordLength = 72
)

// RegisterInput holds parameters for creating an editor account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Validate validates the register input. Username and Email are expected
// to be normalized already.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Username == "":
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	case len(i.Username) > maxUsernameLength:
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	switch {
	case i.Email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(i.Email) > maxEmailLength:
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	case !strings.Contains(i.Email, "@"):
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(i.Password) < minPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	case len(i.Password) > maxPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LoginInput holds login credentials. Identifier is a username or an email.
type LoginInput struct {
	Identifier string
	Password   string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Identifier == "" {
		errs = append(errs, domain.FieldError{Field: "identifier", Message: "required"})
	} else if len(i.Identifier) > maxEmailLength {
		errs = append(errs, domain.FieldError{Field: "identifier", Message: "too long"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
