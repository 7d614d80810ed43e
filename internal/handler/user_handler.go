package handler

import (
	"net/http"

	"gamereview/backend/internal/models"
	"gamereview/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// UserInput is the body of a create request.
type UserInput struct {
	Name *string `json:"name" binding:"required" example:"alice"`
}

// UserPatch is the body of an update request.
type UserPatch struct {
	Name *string `json:"name"`
}

var userMutableFields = []string{"name"}

func (p UserPatch) apply(user *models.User) bool {
	if p.Name == nil {
		return false
	}
	user.Name = *p.Name
	return true
}

// UserResponse defines the structure of a user record.
type UserResponse struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"alice"`
}

func newUserResponse(user models.User) UserResponse {
	return UserResponse{ID: user.ID, Name: user.Name}
}

// endregion

// GetUsers godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   UserResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users [get]
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := store.List[models.User](c.Request.Context(), h.store)
	if err != nil {
		h.storeFailure(c, err)
		return
	}

	response := make([]UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, newUserResponse(user))
	}
	c.JSON(http.StatusOK, response)
}

// CreateUser godoc
// @Summary      Create a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        input body UserInput true "User Info"
// @Success      201  {object}  UserResponse
// @Failure      400  {object}  ErrorResponse "Name is required"
// @Failure      500  {object}  ErrorResponse
// @Router       /users [post]
func (h *Handler) CreateUser(c *gin.Context) {
	var input UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondMessage(c, http.StatusBadRequest, "Name is required.")
		return
	}

	user := models.User{Name: *input.Name}
	if err := store.Create(c.Request.Context(), h.store, &user); err != nil {
		h.storeFailure(c, err)
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(user))
}

// GetUserByID godoc
// @Summary      Get user by ID
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  UserResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [get]
func (h *Handler) GetUserByID(c *gin.Context) {
	user, ok := fetch[models.User](h, c, "User")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newUserResponse(*user))
}

// UpdateUser godoc
// @Summary      Rename a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int       true  "User ID"
// @Param        input body      UserPatch true  "Fields to change"
// @Success      200   {object}  UserResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /users/{id} [patch]
func (h *Handler) UpdateUser(c *gin.Context) {
	user, ok := fetch[models.User](h, c, "User")
	if !ok {
		return
	}

	var patch UserPatch
	if !bindPatch(c, &patch, userMutableFields) {
		return
	}
	if !patch.apply(user) {
		respondMessage(c, http.StatusBadRequest, msgInvalidInput)
		return
	}

	save(h, c, user, "User", newUserResponse)
}

// DeleteUser godoc
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  DeleteResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users/{id} [delete]
func (h *Handler) DeleteUser(c *gin.Context) {
	user, ok := fetch[models.User](h, c, "User")
	if !ok {
		return
	}
	remove(h, c, user, "User")
}
