package review

import (
	"context"
	"errors"

	domain "github.com/BookShelfServices01/books-management-api/internal/domain/book"
	"github.com/BookShelfServices01/books-management-api/internal/httperr"
	"github.com/BookShelfServices01/books-management-api/internal/models"
	"github.com/BookShelfServices01/books-management-api/internal/validators"
)

// BookWithReviews is a book together with its review list. With no
// reviews the list is omitted and the bare book is returned.
type BookWithReviews struct {
	models.Book
	ReviewsData []models.Review `json:"reviewsData,omitempty"`
}

type GetBookWithReviews struct {
	repo domain.Repository
}

func NewGetBookWithReviews(repo domain.Repository) *GetBookWithReviews {
	return &GetBookWithReviews{repo: repo}
}

// Execute returns the book with every review ever written for it,
// deleted ones included, and persists that total as the book's review
// count. The delete path counts only live reviews; this read does not.
func (uc *GetBookWithReviews) Execute(
	ctx context.Context,
	bookID string,
) (*BookWithReviews, error) {

	if !validators.IsValidID(bookID) {
		return nil, httperr.Validation("bookId is not valid")
	}

	book, err := uc.repo.GetBookByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFoundOrForbidden("book does not exist or is deleted")
		}
		return nil, err
	}

	reviews, err := uc.repo.ListReviewsForBook(ctx, bookID, true)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.SetBookReviewCount(ctx, bookID, len(reviews)); err != nil {
		return nil, err
	}
	book.Reviews = len(reviews)

	return &BookWithReviews{
		Book:        *book,
		ReviewsData: reviews,
	}, nil
}
