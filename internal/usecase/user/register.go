package user

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BookShelfServices01/books-management-api/internal/audit"
	domain "github.com/BookShelfServices01/books-management-api/internal/domain/book"
	"github.com/BookShelfServices01/books-management-api/internal/httperr"
	"github.com/BookShelfServices01/books-management-api/internal/models"
	"github.com/BookShelfServices01/books-management-api/internal/validators"
)

type RegisterInput struct {
	Title    string
	Name     string
	Phone    string
	Email    string
	Password string
}

type Register struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegister(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Register {
	return &Register{
		repo:  repo,
		audit: audit,
	}
}

// Execute validates the candidate field by field, failing on the first
// violation, and persists the user with a bcrypt password hash.
func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.User, error) {

	title := strings.TrimSpace(in.Title)
	if !validators.IsPresent(title) {
		return nil, httperr.Validation("title is required")
	}
	if !validators.IsValidUserTitle(title) {
		return nil, httperr.Validation("title should be among Mr, Mrs, Miss")
	}

	if !validators.IsPresent(in.Name) {
		return nil, httperr.Validation("name is required")
	}

	phone := strings.TrimSpace(in.Phone)
	if !validators.IsPresent(phone) {
		return nil, httperr.Validation("phone number is required")
	}
	if !validators.IsValidPhone(phone) {
		return nil, httperr.Validation("phone number should be a valid 10 digit number")
	}

	phoneTaken, err := uc.repo.PhoneExists(ctx, phone)
	if err != nil {
		return nil, err
	}
	if phoneTaken {
		return nil, httperr.Conflict(fmt.Sprintf("%s is already registered", phone))
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !validators.IsPresent(email) {
		return nil, httperr.Validation("email is required")
	}
	if !validators.IsValidEmail(email) {
		return nil, httperr.Validation("email should be a valid email address")
	}

	emailTaken, err := uc.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, httperr.Conflict(fmt.Sprintf("%s email address is already registered", email))
	}

	password := strings.TrimSpace(in.Password)
	if !validators.IsPresent(password) {
		return nil, httperr.Validation("password is required")
	}
	if !validators.IsValidPassword(password) {
		return nil, httperr.Validation("password length should be between 8-15")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Title:        title,
		Name:         in.Name,
		Phone:        phone,
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return user, nil
}
