package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BookShelfServices01/books-management-api/internal/httperr"
	"github.com/BookShelfServices01/books-management-api/internal/httpresp"
	ucReview "github.com/BookShelfServices01/books-management-api/internal/usecase/review"
)

type ReviewHandler struct {
	addUC    *ucReview.AddReview
	updateUC *ucReview.UpdateReview
	deleteUC *ucReview.SoftDeleteReview
}

func NewReviewHandler(
	addUC *ucReview.AddReview,
	updateUC *ucReview.UpdateReview,
	deleteUC *ucReview.SoftDeleteReview,
) *ReviewHandler {
	return &ReviewHandler{
		addUC:    addUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// --------- Requests ---------

type AddReviewRequest struct {
	BookID     string   `json:"bookId"`
	ReviewedAt string   `json:"reviewedAt"`
	ReviewedBy string   `json:"reviewedBy"`
	Rating     *float64 `json:"rating"`
	Review     string   `json:"review"`
}

type UpdateReviewRequest struct {
	ReviewedAt *string  `json:"reviewedAt,omitempty"`
	ReviewedBy *string  `json:"reviewedBy,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
	Review     *string  `json:"review,omitempty"`
}

// --------- Handlers ---------

func (h *ReviewHandler) Add(c *gin.Context) {
	if !requireBody(c, "invalid request parameters, please provide review details") {
		return
	}

	var req AddReviewRequest
	if !bindBody(c, &req) {
		return
	}

	review, err := h.addUC.Execute(c.Request.Context(), ucReview.AddReviewInput{
		PathBookID: c.Param("bookId"),
		BookID:     req.BookID,
		ReviewedAt: req.ReviewedAt,
		ReviewedBy: req.ReviewedBy,
		Rating:     req.Rating,
		Text:       req.Review,
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	httpresp.Created(c, "review added successfully", review)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	if !requireBody(c, "invalid request parameters, please provide review details") {
		return
	}

	var req UpdateReviewRequest
	if !bindBody(c, &req) {
		return
	}

	review, err := h.updateUC.Execute(c.Request.Context(), ucReview.UpdateReviewInput{
		BookID:     c.Param("bookId"),
		ReviewID:   c.Param("reviewId"),
		ReviewedAt: req.ReviewedAt,
		ReviewedBy: req.ReviewedBy,
		Rating:     req.Rating,
		Text:       req.Review,
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	httpresp.OK(c, "review updated successfully", review)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	result, err := h.deleteUC.Execute(
		c.Request.Context(),
		c.Param("bookId"),
		c.Param("reviewId"),
	)
	if err != nil {
		httperr.Write(c, err)
		return
	}

	httpresp.OK(c, "review deleted successfully", result)
}
