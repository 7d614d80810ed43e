package handler

import (
	"net/http"

	"gamereview/backend/internal/models"
	"gamereview/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// ReviewInput is the body of a create request. game_id and user_id are
// checked only by the database's foreign key constraints.
type ReviewInput struct {
	Score   *int    `json:"score" binding:"required" example:"9"`
	Comment *string `json:"comment" binding:"required" example:"One more run."`
	GameID  *uint   `json:"game_id" binding:"required" example:"1"`
	UserID  *uint   `json:"user_id" binding:"required" example:"1"`
}

// ReviewPatch is the body of an update request. A review cannot move to
// another game or user.
type ReviewPatch struct {
	Score   *int    `json:"score"`
	Comment *string `json:"comment"`
}

var reviewMutableFields = []string{"score", "comment"}

func (p ReviewPatch) apply(review *models.Review) (changed bool) {
	if p.Score != nil {
		review.Score, changed = *p.Score, true
	}
	if p.Comment != nil {
		review.Comment, changed = *p.Comment, true
	}
	return changed
}

type ReviewResponse struct {
	ID      uint   `json:"id"`
	Score   int    `json:"score"`
	Comment string `json:"comment"`
	GameID  uint   `json:"game_id"`
	UserID  uint   `json:"user_id"`
}

func newReviewResponse(review models.Review) ReviewResponse {
	return ReviewResponse{
		ID:      review.ID,
		Score:   review.Score,
		Comment: review.Comment,
		GameID:  review.GameID,
		UserID:  review.UserID,
	}
}

// endregion

// GetReviews godoc
// @Summary      List reviews
// @Tags         reviews
// @Produce      json
// @Success      200  {array}   ReviewResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /reviews [get]
func (h *Handler) GetReviews(c *gin.Context) {
	reviews, err := store.List[models.Review](c.Request.Context(), h.store)
	if err != nil {
		h.storeFailure(c, err)
		return
	}

	response := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		response = append(response, newReviewResponse(review))
	}
	c.JSON(http.StatusOK, response)
}

// CreateReview godoc
// @Summary      Create a new review
// @Description  Creates a review of a game by a user. A dangling game_id or user_id is rejected by the database.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        input body ReviewInput true "Review Info"
// @Success      201  {object}  ReviewResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /reviews [post]
func (h *Handler) CreateReview(c *gin.Context) {
	var input ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondMessage(c, http.StatusBadRequest, msgInvalidInput)
		return
	}

	review := models.Review{
		Score:   *input.Score,
		Comment: *input.Comment,
		GameID:  *input.GameID,
		UserID:  *input.UserID,
	}

	if err := store.Create(c.Request.Context(), h.store, &review); err != nil {
		h.storeFailure(c, err)
		return
	}

	c.JSON(http.StatusCreated, newReviewResponse(review))
}

// GetReviewByID godoc
// @Summary      Get a single review by ID
// @Tags         reviews
// @Produce      json
// @Param        id path int true "Review ID"
// @Success      200 {object} ReviewResponse
// @Failure      404 {object} ErrorResponse "Review not found"
// @Router       /reviews/{id} [get]
func (h *Handler) GetReviewByID(c *gin.Context) {
	review, ok := fetch[models.Review](h, c, "Review")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newReviewResponse(*review))
}

// UpdateReview godoc
// @Summary      Update a review
// @Description  Overwrites the score and/or comment of a review.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id    path      int         true  "Review ID"
// @Param        input body      ReviewPatch true  "Fields to change"
// @Success      200   {object}  ReviewResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse "Review not found"
// @Failure      500   {object}  ErrorResponse
// @Router       /reviews/{id} [patch]
func (h *Handler) UpdateReview(c *gin.Context) {
	review, ok := fetch[models.Review](h, c, "Review")
	if !ok {
		return
	}

	var patch ReviewPatch
	if !bindPatch(c, &patch, reviewMutableFields) {
		return
	}
	if !patch.apply(review) {
		respondMessage(c, http.StatusBadRequest, msgInvalidInput)
		return
	}

	save(h, c, review, "Review", newReviewResponse)
}

// DeleteReview godoc
// @Summary      Delete a review
// @Tags         reviews
// @Produce      json
// @Param        id path int true "Review ID"
// @Success      200 {object} DeleteResponse
// @Failure      404 {object} ErrorResponse "Review not found"
// @Failure      500 {object} ErrorResponse
// @Router       /reviews/{id} [delete]
func (h *Handler) DeleteReview(c *gin.Context) {
	review, ok := fetch[models.Review](h, c, "Review")
	if !ok {
		return
	}
	remove(h, c, review, "Review")
}
