package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BookShelfServices01/books-management-api/internal/audit"
	"github.com/BookShelfServices01/books-management-api/internal/config"
	"github.com/BookShelfServices01/books-management-api/internal/handlers"
	infraRepo "github.com/BookShelfServices01/books-management-api/internal/infra/repository"
	"github.com/BookShelfServices01/books-management-api/internal/middleware"
	ucBook "github.com/BookShelfServices01/books-management-api/internal/usecase/book"
	ucReview "github.com/BookShelfServices01/books-management-api/internal/usecase/review"
	ucUser "github.com/BookShelfServices01/books-management-api/internal/usecase/user"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	r.Use(middleware.CORSMiddleware())

	// ------------------------------
	// INFRA (SINGLETONS)
	// ------------------------------
	repo := infraRepo.NewBookGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ------------------------------
	// USE CASES
	// ------------------------------
	registerUC := ucUser.NewRegister(repo, auditDispatcher)
	loginUC := ucUser.NewLogin(repo)

	createBookUC := ucBook.NewCreateBook(repo, auditDispatcher)
	listBooksUC := ucBook.NewListBooks(repo)
	updateBookUC := ucBook.NewUpdateBook(repo, auditDispatcher)
	deleteBookUC := ucBook.NewSoftDeleteBook(repo, auditDispatcher)

	addReviewUC := ucReview.NewAddReview(repo, auditDispatcher)
	updateReviewUC := ucReview.NewUpdateReview(repo, auditDispatcher)
	deleteReviewUC := ucReview.NewSoftDeleteReview(repo, auditDispatcher)
	getWithReviewsUC := ucReview.NewGetBookWithReviews(repo)

	// ------------------------------
	// HANDLERS
	// ------------------------------
	userHandler := handlers.NewUserHandler(registerUC, loginUC, cfg)
	bookHandler := handlers.NewBookHandler(
		createBookUC,
		listBooksUC,
		updateBookUC,
		deleteBookUC,
		getWithReviewsUC,
	)
	reviewHandler := handlers.NewReviewHandler(
		addReviewUC,
		updateReviewUC,
		deleteReviewUC,
	)

	// ------------------------------
	// AUTH
	// ------------------------------
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)

	// ------------------------------
	// BOOKS (owner-scoped, token required)
	// ------------------------------
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.POST("/books", bookHandler.Create)
		secured.GET("/books", bookHandler.List)
		secured.PUT("/books/:bookId", bookHandler.Update)
		secured.DELETE("/books/:bookId", bookHandler.Delete)
	}

	// ------------------------------
	// REVIEWS + SINGLE-BOOK READ (public: any caller may act on any
	// book's reviews)
	// ------------------------------
	r.GET("/books/:bookId", bookHandler.GetWithReviews)
	r.POST("/books/:bookId/review", reviewHandler.Add)
	r.PUT("/books/:bookId/review/:reviewId", reviewHandler.Update)
	r.DELETE("/books/:bookId/review/:reviewId", reviewHandler.Delete)
}
