package review

import (
	"context"
	"errors"

	"github.com/BookShelfServices01/books-management-api/internal/audit"
	domain "github.com/BookShelfServices01/books-management-api/internal/domain/book"
	"github.com/BookShelfServices01/books-management-api/internal/httperr"
	"github.com/BookShelfServices01/books-management-api/internal/models"
	"github.com/BookShelfServices01/books-management-api/internal/validators"
)

type UpdateReviewInput struct {
	BookID   string
	ReviewID string

	// ReviewedAt is applied as given, with no date-shape check.
	ReviewedAt *string
	ReviewedBy *string
	Rating     *float64
	Text       *string
}

type UpdateReview struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateReview(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateReview {
	return &UpdateReview{
		repo:  repo,
		audit: audit,
	}
}

// Execute updates a non-deleted review that belongs to the path book.
// Every present patch field is applied.
func (uc *UpdateReview) Execute(
	ctx context.Context,
	in UpdateReviewInput,
) (*models.Review, error) {

	if !validators.IsValidID(in.BookID) {
		return nil, httperr.Validation("bookId is not valid")
	}
	if !validators.IsValidID(in.ReviewID) {
		return nil, httperr.Validation("reviewId is not valid")
	}

	review, err := uc.repo.GetReviewForBook(ctx, in.ReviewID, in.BookID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFoundOrForbidden("review does not exist for this book or is deleted")
		}
		return nil, err
	}

	if _, err := uc.repo.GetBookByID(ctx, in.BookID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFoundOrForbidden("book does not exist or is deleted")
		}
		return nil, err
	}

	if in.ReviewedBy != nil {
		if !validators.IsPresent(*in.ReviewedBy) {
			return nil, httperr.Validation("reviewedBy is not valid")
		}
		review.ReviewedBy = *in.ReviewedBy
	}

	if in.Text != nil {
		if !validators.IsPresent(*in.Text) {
			return nil, httperr.Validation("review text is not valid")
		}
		review.Review = *in.Text
	}

	if in.Rating != nil {
		rating, err := checkRating(in.Rating)
		if err != nil {
			return nil, err
		}
		review.Rating = rating
	}

	if in.ReviewedAt != nil {
		review.ReviewedAt = *in.ReviewedAt
	}

	if err := uc.repo.UpdateReview(ctx, review); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "review_updated",
		Entity:   "review",
		EntityID: &review.ID,
	})

	return review, nil
}
