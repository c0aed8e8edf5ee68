package book

import (
	"context"
	"errors"
	"time"

	"github.com/BookShelfServices01/books-management-api/internal/audit"
	domain "github.com/BookShelfServices01/books-management-api/internal/domain/book"
	"github.com/BookShelfServices01/books-management-api/internal/httperr"
	"github.com/BookShelfServices01/books-management-api/internal/validators"
)

type SoftDeleteBook struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSoftDeleteBook(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SoftDeleteBook {
	return &SoftDeleteBook{
		repo:  repo,
		audit: audit,
	}
}

// Execute marks the book deleted and stamps the deletion time. A book
// that is already deleted matches nothing, so a repeated delete fails
// without touching the original timestamp. Reviews are not cascaded.
func (uc *SoftDeleteBook) Execute(
	ctx context.Context,
	bookID string,
	actingUserID string,
) error {

	if !validators.IsValidID(bookID) {
		return httperr.Validation("bookId is not valid")
	}

	err := uc.repo.SoftDeleteBookOwned(ctx, bookID, actingUserID, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.NotFoundOrForbidden("either the book is deleted or you are not allowed to delete it")
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actingUserID,
		Action:   "book_deleted",
		Entity:   "book",
		EntityID: &bookID,
	})

	return nil
}
