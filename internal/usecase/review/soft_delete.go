package review

import (
	"context"
	"errors"

	"github.com/BookShelfServices01/books-management-api/internal/audit"
	domain "github.com/BookShelfServices01/books-management-api/internal/domain/book"
	"github.com/BookShelfServices01/books-management-api/internal/httperr"
	"github.com/BookShelfServices01/books-management-api/internal/validators"
)

type SoftDeleteReview struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSoftDeleteReview(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SoftDeleteReview {
	return &SoftDeleteReview{
		repo:  repo,
		audit: audit,
	}
}

// Execute marks the review deleted, then recomputes the book's live
// review list and count. The recomputed view is returned even when the
// review was already deleted and the delete matched nothing.
func (uc *SoftDeleteReview) Execute(
	ctx context.Context,
	bookID string,
	reviewID string,
) (*BookWithReviews, error) {

	if !validators.IsValidID(bookID) {
		return nil, httperr.Validation("bookId is not valid")
	}
	if !validators.IsValidID(reviewID) {
		return nil, httperr.Validation("reviewId is not valid")
	}

	book, err := uc.repo.GetBookByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFoundOrForbidden("book does not exist or is deleted")
		}
		return nil, err
	}

	matched, err := uc.repo.SoftDeleteReview(ctx, reviewID, bookID)
	if err != nil {
		return nil, err
	}

	remaining, err := uc.repo.ListReviewsForBook(ctx, bookID, false)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.SetBookReviewCount(ctx, bookID, len(remaining)); err != nil {
		return nil, err
	}
	book.Reviews = len(remaining)

	if matched {
		uc.audit.Dispatch(audit.Event{
			Action:   "review_deleted",
			Entity:   "review",
			EntityID: &reviewID,
		})
	}

	return &BookWithReviews{
		Book:        *book,
		ReviewsData: remaining,
	}, nil
}
