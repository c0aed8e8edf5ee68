package book

import (
	"context"

	domain "github.com/BookShelfServices01/books-management-api/internal/domain/book"
	"github.com/BookShelfServices01/books-management-api/internal/dto"
	"github.com/BookShelfServices01/books-management-api/internal/httperr"
	"github.com/BookShelfServices01/books-management-api/internal/validators"
)

type ListBooksInput struct {
	ActingUserID string
	UserID       string
	Category     string
	Subcategory  string
}

type ListBooks struct {
	repo domain.Repository
}

func NewListBooks(repo domain.Repository) *ListBooks {
	return &ListBooks{repo: repo}
}

// Execute lists non-deleted books matching the supplied constraints,
// sorted by title. At least one constraint is required, and an empty
// result is reported as an error rather than an empty list.
func (uc *ListBooks) Execute(
	ctx context.Context,
	in ListBooksInput,
) ([]dto.BookSummary, error) {

	filter := domain.ListFilter{}

	if in.UserID != "" {
		if !validators.IsValidID(in.UserID) {
			return nil, httperr.Validation("userId is not valid")
		}
		if in.UserID != in.ActingUserID {
			return nil, httperr.NotFoundOrForbidden("you are not allowed to view another user's books")
		}
		filter.UserID = in.UserID
	}

	if in.Category != "" {
		if !validators.IsPresent(in.Category) {
			return nil, httperr.Validation("book category is not valid")
		}
		filter.Category = in.Category
	}

	if in.Subcategory != "" {
		if !validators.IsPresent(in.Subcategory) {
			return nil, httperr.Validation("book subcategory is not valid")
		}
		filter.Subcategory = in.Subcategory
	}

	if filter == (domain.ListFilter{}) {
		return nil, httperr.Validation("no filter parameter provided")
	}

	books, err := uc.repo.ListBooks(ctx, filter)
	if err != nil {
		return nil, err
	}

	if len(books) == 0 {
		return nil, httperr.NotFoundOrForbidden("either the books are deleted or you are not allowed to see them")
	}

	return books, nil
}
