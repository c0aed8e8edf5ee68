package review

import (
	"context"
	"errors"
	"math"

	"github.com/BookShelfServices01/books-management-api/internal/audit"
	domain "github.com/BookShelfServices01/books-management-api/internal/domain/book"
	"github.com/BookShelfServices01/books-management-api/internal/httperr"
	"github.com/BookShelfServices01/books-management-api/internal/models"
	"github.com/BookShelfServices01/books-management-api/internal/validators"
)

type AddReviewInput struct {
	PathBookID string

	BookID     string
	ReviewedAt string
	ReviewedBy string
	Rating     *float64
	Text       string
}

type AddReview struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAddReview(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AddReview {
	return &AddReview{
		repo:  repo,
		audit: audit,
	}
}

// Execute adds a review to a non-deleted book. No identity is required:
// anyone may review any book.
func (uc *AddReview) Execute(
	ctx context.Context,
	in AddReviewInput,
) (*models.Review, error) {

	if !validators.IsValidID(in.PathBookID) {
		return nil, httperr.Validation("bookId in path is not valid")
	}

	if !validators.IsPresent(in.BookID) {
		return nil, httperr.Validation("bookId is required")
	}
	if !validators.IsValidID(in.BookID) {
		return nil, httperr.Validation("bookId in body is not valid")
	}
	if in.BookID != in.PathBookID {
		return nil, httperr.Validation("bookId in body must match the bookId in path")
	}

	if !validators.IsPresent(in.ReviewedAt) {
		return nil, httperr.Validation("reviewedAt is required")
	}
	if !validators.IsValidDate(in.ReviewedAt) {
		return nil, httperr.Validation(`reviewedAt must match "YYYY-MM-DD" with digits only`)
	}

	if !validators.IsPresent(in.ReviewedBy) {
		return nil, httperr.Validation("reviewedBy is required")
	}

	if !validators.IsPresent(in.Text) {
		return nil, httperr.Validation("review text is required")
	}

	rating, err := checkRating(in.Rating)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetBookByID(ctx, in.PathBookID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFoundOrForbidden("book does not exist or is deleted")
		}
		return nil, err
	}

	review := &models.Review{
		BookID:     in.BookID,
		ReviewedAt: in.ReviewedAt,
		ReviewedBy: in.ReviewedBy,
		Rating:     rating,
		Review:     in.Text,
	}

	if err := uc.repo.CreateReview(ctx, review); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "review_added",
		Entity:   "review",
		EntityID: &review.ID,
	})

	return review, nil
}

// checkRating accepts only the integers 1 through 5; fractional values
// like 3.5 are rejected.
func checkRating(rating *float64) (int, error) {
	if rating == nil {
		return 0, httperr.Validation("rating is required")
	}
	if *rating != math.Trunc(*rating) || !validators.IsValidRating(int(*rating)) {
		return 0, httperr.Validation("rating should be an integer between 1 and 5")
	}
	return int(*rating), nil
}
