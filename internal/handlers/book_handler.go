package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BookShelfServices01/books-management-api/internal/httperr"
	"github.com/BookShelfServices01/books-management-api/internal/httpresp"
	"github.com/BookShelfServices01/books-management-api/internal/middleware"
	ucBook "github.com/BookShelfServices01/books-management-api/internal/usecase/book"
	ucReview "github.com/BookShelfServices01/books-management-api/internal/usecase/review"
)

type BookHandler struct {
	createUC         *ucBook.CreateBook
	listUC           *ucBook.ListBooks
	updateUC         *ucBook.UpdateBook
	deleteUC         *ucBook.SoftDeleteBook
	getWithReviewsUC *ucReview.GetBookWithReviews
}

func NewBookHandler(
	createUC *ucBook.CreateBook,
	listUC *ucBook.ListBooks,
	updateUC *ucBook.UpdateBook,
	deleteUC *ucBook.SoftDeleteBook,
	getWithReviewsUC *ucReview.GetBookWithReviews,
) *BookHandler {
	return &BookHandler{
		createUC:         createUC,
		listUC:           listUC,
		updateUC:         updateUC,
		deleteUC:         deleteUC,
		getWithReviewsUC: getWithReviewsUC,
	}
}

// --------- Requests ---------

type CreateBookRequest struct {
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	UserID      string `json:"userId"`
	ISBN        string `json:"ISBN"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	ReleasedAt  string `json:"releasedAt"`
	Reviews     int    `json:"reviews"`
	IsDeleted   bool   `json:"isDeleted"`
}

type UpdateBookRequest struct {
	Title      *string `json:"title,omitempty"`
	Excerpt    *string `json:"excerpt,omitempty"`
	ISBN       *string `json:"ISBN,omitempty"`
	ReleasedAt *string `json:"releasedAt,omitempty"`
}

// --------- Handlers ---------

func (h *BookHandler) Create(c *gin.Context) {
	if !requireBody(c, "invalid request parameters, please provide book details") {
		return
	}

	var req CreateBookRequest
	if !bindBody(c, &req) {
		return
	}

	book, err := h.createUC.Execute(c.Request.Context(), ucBook.CreateBookInput{
		Title:       req.Title,
		Excerpt:     req.Excerpt,
		UserID:      req.UserID,
		ISBN:        req.ISBN,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		ReleasedAt:  req.ReleasedAt,
		Reviews:     req.Reviews,
		IsDeleted:   req.IsDeleted,
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	httpresp.Created(c, "new book created successfully", book)
}

func (h *BookHandler) List(c *gin.Context) {
	actingUserID := c.MustGet(middleware.ContextUserID).(string)

	books, err := h.listUC.Execute(c.Request.Context(), ucBook.ListBooksInput{
		ActingUserID: actingUserID,
		UserID:       c.Query("userId"),
		Category:     c.Query("category"),
		Subcategory:  c.Query("subcategory"),
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	httpresp.OK(c, "books list", books)
}

func (h *BookHandler) Update(c *gin.Context) {
	actingUserID := c.MustGet(middleware.ContextUserID).(string)

	if !requireBody(c, "body is empty") {
		return
	}

	var req UpdateBookRequest
	if !bindBody(c, &req) {
		return
	}

	book, err := h.updateUC.Execute(c.Request.Context(), ucBook.UpdateBookInput{
		BookID:       c.Param("bookId"),
		ActingUserID: actingUserID,
		Title:        req.Title,
		Excerpt:      req.Excerpt,
		ISBN:         req.ISBN,
		ReleasedAt:   req.ReleasedAt,
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	httpresp.OK(c, "success", book)
}

func (h *BookHandler) Delete(c *gin.Context) {
	actingUserID := c.MustGet(middleware.ContextUserID).(string)

	err := h.deleteUC.Execute(c.Request.Context(), c.Param("bookId"), actingUserID)
	if err != nil {
		httperr.Write(c, err)
		return
	}

	httpresp.OK(c, "book deleted successfully", nil)
}

func (h *BookHandler) GetWithReviews(c *gin.Context) {
	result, err := h.getWithReviewsUC.Execute(c.Request.Context(), c.Param("bookId"))
	if err != nil {
		httperr.Write(c, err)
		return
	}

	httpresp.OK(c, "book found", result)
}
