package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/BookShelfServices01/books-management-api/internal/domain/book"
	"github.com/BookShelfServices01/books-management-api/internal/dto"
	"github.com/BookShelfServices01/books-management-api/internal/models"
)

type BookGormRepository struct {
	db *gorm.DB
}

func NewBookGormRepository(db *gorm.DB) *BookGormRepository {
	return &BookGormRepository{db: db}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *BookGormRepository) CreateUser(
	ctx context.Context,
	user *models.User,
) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *BookGormRepository) GetUserByID(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *BookGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *BookGormRepository) PhoneExists(
	ctx context.Context,
	phone string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("phone = ?", phone).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookGormRepository) EmailExists(
	ctx context.Context,
	email string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Books
// --------------------------------------------------

func (r *BookGormRepository) CreateBook(
	ctx context.Context,
	book *models.Book,
) error {
	return r.db.WithContext(ctx).Create(book).Error
}

func (r *BookGormRepository) TitleExists(
	ctx context.Context,
	title string,
) (bool, error) {

	// No is_deleted filter here on purpose.
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Where("title = ?", title).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookGormRepository) ISBNExists(
	ctx context.Context,
	isbn string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Where("isbn = ?", isbn).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookGormRepository) ListBooks(
	ctx context.Context,
	filter domain.ListFilter,
) ([]dto.BookSummary, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Where("is_deleted = ?", false)

	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Subcategory != "" {
		q = q.Where("subcategory = ?", filter.Subcategory)
	}

	var books []dto.BookSummary
	if err := q.
		Select("id", "title", "excerpt", "user_id", "category", "released_at", "reviews").
		Order("title ASC").
		Find(&books).Error; err != nil {
		return nil, err
	}

	return books, nil
}

func (r *BookGormRepository) GetBookByID(
	ctx context.Context,
	id string,
) (*models.Book, error) {

	var book models.Book
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&book).Error; err != nil {
		return nil, translate(err)
	}
	return &book, nil
}

func (r *BookGormRepository) UpdateBookOwned(
	ctx context.Context,
	bookID string,
	userID string,
	fields map[string]any,
) (*models.Book, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Where("id = ? AND is_deleted = ? AND user_id = ?", bookID, false, userID).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}

	var book models.Book
	if err := r.db.WithContext(ctx).
		Where("id = ?", bookID).
		First(&book).Error; err != nil {
		return nil, translate(err)
	}
	return &book, nil
}

func (r *BookGormRepository) SoftDeleteBookOwned(
	ctx context.Context,
	bookID string,
	userID string,
	now time.Time,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Where("id = ? AND is_deleted = ? AND user_id = ?", bookID, false, userID).
		Updates(map[string]any{
			"is_deleted": true,
			"deleted_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BookGormRepository) SetBookReviewCount(
	ctx context.Context,
	bookID string,
	count int,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Book{}).
		Where("id = ?", bookID).
		Update("reviews", count).Error
}

// --------------------------------------------------
// Reviews
// --------------------------------------------------

func (r *BookGormRepository) CreateReview(
	ctx context.Context,
	review *models.Review,
) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *BookGormRepository) GetReviewForBook(
	ctx context.Context,
	reviewID string,
	bookID string,
) (*models.Review, error) {

	var review models.Review
	if err := r.db.WithContext(ctx).
		Where("id = ? AND book_id = ? AND is_deleted = ?", reviewID, bookID, false).
		First(&review).Error; err != nil {
		return nil, translate(err)
	}
	return &review, nil
}

func (r *BookGormRepository) UpdateReview(
	ctx context.Context,
	review *models.Review,
) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *BookGormRepository) SoftDeleteReview(
	ctx context.Context,
	reviewID string,
	bookID string,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("id = ? AND book_id = ? AND is_deleted = ?", reviewID, bookID, false).
		Update("is_deleted", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *BookGormRepository) ListReviewsForBook(
	ctx context.Context,
	bookID string,
	includeDeleted bool,
) ([]models.Review, error) {

	q := r.db.WithContext(ctx).Where("book_id = ?", bookID)
	if !includeDeleted {
		q = q.Where("is_deleted = ?", false)
	}

	var reviews []models.Review
	if err := q.
		Order("created_at ASC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*BookGormRepository)(nil)
