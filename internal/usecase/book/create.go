package book

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BookShelfServices01/books-management-api/internal/audit"
	domain "github.com/BookShelfServices01/books-management-api/internal/domain/book"
	"github.com/BookShelfServices01/books-management-api/internal/httperr"
	"github.com/BookShelfServices01/books-management-api/internal/models"
	"github.com/BookShelfServices01/books-management-api/internal/validators"
)

type CreateBookInput struct {
	Title       string
	Excerpt     string
	UserID      string
	ISBN        string
	Category    string
	Subcategory string
	ReleasedAt  string
	Reviews     int
	IsDeleted   bool
}

type CreateBook struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBook(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBook {
	return &CreateBook{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateBook) Execute(
	ctx context.Context,
	in CreateBookInput,
) (*models.Book, error) {

	if !validators.IsPresent(in.Title) {
		return nil, httperr.Validation("book title is required")
	}

	titleTaken, err := uc.repo.TitleExists(ctx, in.Title)
	if err != nil {
		return nil, err
	}
	if titleTaken {
		return nil, httperr.Conflict(fmt.Sprintf("%s is already registered", in.Title))
	}

	if !validators.IsPresent(in.Excerpt) {
		return nil, httperr.Validation("excerpt is required")
	}

	if !validators.IsPresent(in.UserID) {
		return nil, httperr.Validation("userId is required")
	}
	if !validators.IsValidID(in.UserID) {
		return nil, httperr.Validation("userId is not a valid id")
	}

	if !validators.IsPresent(in.ISBN) {
		return nil, httperr.Validation("ISBN is required")
	}

	isbnTaken, err := uc.repo.ISBNExists(ctx, in.ISBN)
	if err != nil {
		return nil, err
	}
	if isbnTaken {
		return nil, httperr.Conflict(fmt.Sprintf("%s should be unique", in.ISBN))
	}

	if !validators.IsPresent(in.Category) {
		return nil, httperr.Validation("book category is required")
	}
	if !validators.IsPresent(in.Subcategory) {
		return nil, httperr.Validation("book subcategory is required")
	}

	if !validators.IsPresent(in.ReleasedAt) {
		return nil, httperr.Validation("releasedAt is required")
	}
	if !validators.IsValidDate(in.ReleasedAt) {
		return nil, httperr.Validation(`releasedAt must match "YYYY-MM-DD" with digits only`)
	}

	if _, err := uc.repo.GetUserByID(ctx, in.UserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.Validation("user does not exist")
		}
		return nil, err
	}

	book := &models.Book{
		Title:       in.Title,
		Excerpt:     in.Excerpt,
		UserID:      in.UserID,
		ISBN:        in.ISBN,
		Category:    in.Category,
		Subcategory: in.Subcategory,
		ReleasedAt:  in.ReleasedAt,
		Reviews:     in.Reviews,
		IsDeleted:   in.IsDeleted,
	}

	// A book may be created already soft-deleted; in that case the
	// deletion timestamp is the creation time.
	if in.IsDeleted {
		now := time.Now()
		book.DeletedAt = &now
	}

	if err := uc.repo.CreateBook(ctx, book); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &book.UserID,
		Action:   "book_created",
		Entity:   "book",
		EntityID: &book.ID,
	})

	return book, nil
}
