package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"

	"gamereview/backend/internal/middleware"
	"gamereview/backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

const msgInvalidInput = "Invalid input."

// Handler serves the game, review and user resources.
type Handler struct {
	store *store.Store
	log   *zap.Logger
}

// New creates a Handler that persists through s.
func New(s *store.Store, log *zap.Logger) *Handler {
	return &Handler{store: s, log: log}
}

// region --- DTOs ---

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message" example:"Game not found."`
}

// DeleteResponse confirms a successful delete.
type DeleteResponse struct {
	DeleteSuccessful bool   `json:"delete_successful" example:"true"`
	Message          string `json:"message" example:"Game deleted."`
}

// endregion

// Register mounts every resource route on r.
func (h *Handler) Register(r gin.IRouter) {
	games := r.Group("/games")
	{
		games.GET("", h.GetGames)
		games.POST("", h.CreateGame)
		games.GET("/:id", h.GetGameByID)
		games.PATCH("/:id", h.UpdateGame)
		games.DELETE("/:id", h.DeleteGame)
	}

	reviews := r.Group("/reviews")
	{
		reviews.GET("", h.GetReviews)
		reviews.POST("", h.CreateReview)
		reviews.GET("/:id", h.GetReviewByID)
		reviews.PATCH("/:id", h.UpdateReview)
		reviews.DELETE("/:id", h.DeleteReview)
	}

	users := r.Group("/users")
	{
		users.GET("", h.GetUsers)
		users.POST("", h.CreateUser)
		users.GET("/:id", h.GetUserByID)
		users.PATCH("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}
}

// region --- Helpers ---

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Message: message})
}

// storeFailure answers a rejected store operation with the raw error text.
func (h *Handler) storeFailure(c *gin.Context, err error) {
	h.log.Error("store operation failed",
		zap.Error(err),
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.String("path", c.Request.URL.Path),
	)
	_ = c.Error(err)
	respondMessage(c, http.StatusInternalServerError, err.Error())
}

// fetch loads the T named by the :id path parameter. On failure the
// response has already been written and ok is false.
func fetch[T any](h *Handler, c *gin.Context, resource string) (rec *T, ok bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondMessage(c, http.StatusNotFound, resource+" not found.")
		return nil, false
	}

	rec, err = store.Get[T](c.Request.Context(), h.store, uint(id))
	if errors.Is(err, store.ErrNotFound) {
		respondMessage(c, http.StatusNotFound, resource+" not found.")
		return nil, false
	}
	if err != nil {
		h.storeFailure(c, err)
		return nil, false
	}
	return rec, true
}

// save writes an updated rec and answers with its response DTO.
func save[T, R any](h *Handler, c *gin.Context, rec *T, resource string, toResponse func(T) R) {
	if err := store.Save(c.Request.Context(), h.store, rec); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondMessage(c, http.StatusNotFound, resource+" not found.")
			return
		}
		h.storeFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(*rec))
}

// remove deletes rec and confirms with a DeleteResponse.
func remove[T any](h *Handler, c *gin.Context, rec *T, resource string) {
	if err := store.Delete(c.Request.Context(), h.store, rec); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondMessage(c, http.StatusNotFound, resource+" not found.")
			return
		}
		h.storeFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{
		DeleteSuccessful: true,
		Message:          resource + " deleted.",
	})
}

// bindPatch decodes a PATCH body into dst. The body must be a non-empty
// JSON object whose keys all appear in mutable. On failure the 400
// response has already been written and ok is false.
func bindPatch(c *gin.Context, dst any, mutable []string) (ok bool) {
	raw, err := c.GetRawData()
	if err != nil {
		respondMessage(c, http.StatusBadRequest, msgInvalidInput)
		return false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || len(fields) == 0 {
		respondMessage(c, http.StatusBadRequest, msgInvalidInput)
		return false
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		if !slices.Contains(mutable, key) {
			respondMessage(c, http.StatusBadRequest, fmt.Sprintf("Field '%s' cannot be updated.", key))
			return false
		}
	}

	if err := binding.JSON.BindBody(raw, dst); err != nil {
		respondMessage(c, http.StatusBadRequest, msgInvalidInput)
		return false
	}
	return true
}

// endregion
