package auth

import (
	"errors"
	"strings"

	"github.com/kvolkov/gymtrack-backend/internal/auth"
	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Username string
	Password string
}

// LoginInput carries the fields of a login request.
type LoginInput struct {
	Username string
	Password string
}

func (in *RegisterInput) validate() error {
	var fieldErrs []domain.FieldError

	in.Username = strings.TrimSpace(in.Username)
	if len(in.Username) < 3 {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "username", Message: "must be at least 3 characters"})
	}
	if len(in.Username) > 64 {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "username", Message: "must be at most 64 characters"})
	}

	if err := auth.ValidatePassword(in.Password); err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			fieldErrs = append(fieldErrs, vErr.Errors...)
		} else {
			return err
		}
	}

	if len(fieldErrs) > 0 {
		return domain.NewValidationErrors(fieldErrs)
	}
	return nil
}

func (in *LoginInput) validate() error {
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" || in.Password == "" {
		return domain.NewValidationError("credentials", "username and password are required")
	}
	return nil
}
