package book

import (
	"context"
	"errors"

	"github.com/BookShelfServices01/books-management-api/internal/audit"
	domain "github.com/BookShelfServices01/books-management-api/internal/domain/book"
	"github.com/BookShelfServices01/books-management-api/internal/httperr"
	"github.com/BookShelfServices01/books-management-api/internal/models"
	"github.com/BookShelfServices01/books-management-api/internal/validators"
)

type UpdateBookInput struct {
	BookID       string
	ActingUserID string

	Title      *string
	Excerpt    *string
	ISBN       *string
	ReleasedAt *string
}

type UpdateBook struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBook(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBook {
	return &UpdateBook{
		repo:  repo,
		audit: audit,
	}
}

// Execute merges the present patch fields into the book. The update is
// scoped to {id, not deleted, owned by the acting user}; a mismatch on
// any of the three reports one undifferentiated outcome.
func (uc *UpdateBook) Execute(
	ctx context.Context,
	in UpdateBookInput,
) (*models.Book, error) {

	if !validators.IsValidID(in.BookID) {
		return nil, httperr.Validation("bookId is not valid")
	}

	fields := map[string]any{}

	if in.Title != nil {
		if !validators.IsPresent(*in.Title) {
			return nil, httperr.Validation("title is not valid")
		}
		fields["title"] = *in.Title
	}

	if in.Excerpt != nil {
		if !validators.IsPresent(*in.Excerpt) {
			return nil, httperr.Validation("excerpt is not valid")
		}
		fields["excerpt"] = *in.Excerpt
	}

	if in.ISBN != nil {
		if !validators.IsPresent(*in.ISBN) {
			return nil, httperr.Validation("ISBN is not valid")
		}
		fields["isbn"] = *in.ISBN
	}

	if in.ReleasedAt != nil {
		if !validators.IsPresent(*in.ReleasedAt) {
			return nil, httperr.Validation("releasedAt is not valid")
		}
		if !validators.IsValidDate(*in.ReleasedAt) {
			return nil, httperr.Validation(`releasedAt must match "YYYY-MM-DD" with digits only`)
		}
		fields["released_at"] = *in.ReleasedAt
	}

	if len(fields) == 0 {
		return nil, httperr.Validation("no updatable field provided")
	}

	book, err := uc.repo.UpdateBookOwned(ctx, in.BookID, in.ActingUserID, fields)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFoundOrForbidden("either the book is deleted or you are not allowed to update it")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ActingUserID,
		Action:   "book_updated",
		Entity:   "book",
		EntityID: &book.ID,
	})

	return book, nil
}
