package user

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/BookShelfServices01/books-management-api/internal/domain/book"
	"github.com/BookShelfServices01/books-management-api/internal/httperr"
	"github.com/BookShelfServices01/books-management-api/internal/models"
	"github.com/BookShelfServices01/books-management-api/internal/validators"
)

type LoginInput struct {
	Email    string
	Password string
}

type Login struct {
	repo domain.Repository
}

func NewLogin(repo domain.Repository) *Login {
	return &Login{repo: repo}
}

// Execute checks the credentials and returns the matching user. A wrong
// email and a wrong password produce the same error so the response
// does not reveal which one failed.
func (uc *Login) Execute(
	ctx context.Context,
	in LoginInput,
) (*models.User, error) {

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !validators.IsPresent(email) {
		return nil, httperr.Validation("email is required")
	}
	if !validators.IsValidEmail(email) {
		return nil, httperr.Validation("email should be a valid email address")
	}

	if !validators.IsPresent(in.Password) {
		return nil, httperr.Validation("password is required")
	}

	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.Authentication("invalid login credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(strings.TrimSpace(in.Password)),
	); err != nil {
		return nil, httperr.Authentication("invalid login credentials")
	}

	return user, nil
}
