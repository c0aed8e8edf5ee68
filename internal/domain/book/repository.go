package book

import (
	"context"
	"errors"
	"time"

	"github.com/BookShelfServices01/books-management-api/internal/dto"
	"github.com/BookShelfServices01/books-management-api/internal/models"
)

// ErrNotFound is returned by repository reads and scoped writes that
// match no record. Callers decide how to report it.
var ErrNotFound = errors.New("record not found")

// ListFilter holds the optional constraints of a book listing. Empty
// fields are not applied; the non-deleted constraint is always applied.
type ListFilter struct {
	UserID      string
	Category    string
	Subcategory string
}

type Repository interface {
	// -------- Users --------
	CreateUser(
		ctx context.Context,
		user *models.User,
	) error

	GetUserByID(
		ctx context.Context,
		id string,
	) (*models.User, error)

	GetUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	PhoneExists(
		ctx context.Context,
		phone string,
	) (bool, error)

	EmailExists(
		ctx context.Context,
		email string,
	) (bool, error)

	// -------- Books --------
	CreateBook(
		ctx context.Context,
		book *models.Book,
	) error

	// TitleExists and ISBNExists look at every book, deleted or not:
	// soft-deleting a book does not release its title or ISBN.
	TitleExists(
		ctx context.Context,
		title string,
	) (bool, error)

	ISBNExists(
		ctx context.Context,
		isbn string,
	) (bool, error)

	ListBooks(
		ctx context.Context,
		filter ListFilter,
	) ([]dto.BookSummary, error)

	GetBookByID(
		ctx context.Context,
		id string,
	) (*models.Book, error)

	// UpdateBookOwned applies fields to the book scoped by
	// {id, owner, not deleted} and returns the updated record, or
	// ErrNotFound when the scope matches nothing.
	UpdateBookOwned(
		ctx context.Context,
		bookID string,
		userID string,
		fields map[string]any,
	) (*models.Book, error)

	SoftDeleteBookOwned(
		ctx context.Context,
		bookID string,
		userID string,
		now time.Time,
	) error

	SetBookReviewCount(
		ctx context.Context,
		bookID string,
		count int,
	) error

	// -------- Reviews --------
	CreateReview(
		ctx context.Context,
		review *models.Review,
	) error

	GetReviewForBook(
		ctx context.Context,
		reviewID string,
		bookID string,
	) (*models.Review, error)

	UpdateReview(
		ctx context.Context,
		review *models.Review,
	) error

	// SoftDeleteReview reports whether a live review matched; deleting
	// an already-deleted review is not an error for the caller.
	SoftDeleteReview(
		ctx context.Context,
		reviewID string,
		bookID string,
	) (bool, error)

	ListReviewsForBook(
		ctx context.Context,
		bookID string,
		includeDeleted bool,
	) ([]models.Review, error)
}
