package handler

import (
	"net/http"

	"gamereview/backend/internal/models"
	"gamereview/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// GameInput is the body of a create request. Every field must be present.
type GameInput struct {
	Title    *string  `json:"title" binding:"required" example:"Hades"`
	Genre    *string  `json:"genre" binding:"required" example:"Roguelike"`
	Platform *string  `json:"platform" binding:"required" example:"Switch"`
	Price    *float64 `json:"price" binding:"required" example:"24.99"`
}

// GamePatch is the body of an update request. Absent fields are left untouched.
type GamePatch struct {
	Title    *string  `json:"title"`
	Genre    *string  `json:"genre"`
	Platform *string  `json:"platform"`
	Price    *float64 `json:"price"`
}

var gameMutableFields = []string{"title", "genre", "platform", "price"}

func (p GamePatch) apply(game *models.Game) (changed bool) {
	if p.Title != nil {
		game.Title, changed = *p.Title, true
	}
	if p.Genre != nil {
		game.Genre, changed = *p.Genre, true
	}
	if p.Platform != nil {
		game.Platform, changed = *p.Platform, true
	}
	if p.Price != nil {
		game.Price, changed = *p.Price, true
	}
	return changed
}

type GameResponse struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	Genre    string  `json:"genre"`
	Platform string  `json:"platform"`
	Price    float64 `json:"price"`
}

// GameSummary is a game as it appears in the collection listing.
type GameSummary struct {
	Title    string  `json:"title"`
	Genre    string  `json:"genre"`
	Platform string  `json:"platform"`
	Price    float64 `json:"price"`
}

func newGameResponse(game models.Game) GameResponse {
	return GameResponse{
		ID:       game.ID,
		Title:    game.Title,
		Genre:    game.Genre,
		Platform: game.Platform,
		Price:    game.Price,
	}
}

// endregion

// GetGames godoc
// @Summary      List games
// @Description  Retrieves every game in insertion order.
// @Tags         games
// @Produce      json
// @Success      200  {array}   GameSummary
// @Failure      500  {object}  ErrorResponse
// @Router       /games [get]
func (h *Handler) GetGames(c *gin.Context) {
	games, err := store.List[models.Game](c.Request.Context(), h.store)
	if err != nil {
		h.storeFailure(c, err)
		return
	}

	response := make([]GameSummary, 0, len(games))
	for _, game := range games {
		response = append(response, GameSummary{
			Title:    game.Title,
			Genre:    game.Genre,
			Platform: game.Platform,
			Price:    game.Price,
		})
	}
	c.JSON(http.StatusOK, response)
}

// CreateGame godoc
// @Summary      Create a new game
// @Description  Creates a new game. title, genre, platform and price are required.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        input body GameInput true "Game Info"
// @Success      201  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /games [post]
func (h *Handler) CreateGame(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondMessage(c, http.StatusBadRequest, msgInvalidInput)
		return
	}

	game := models.Game{
		Title:    *input.Title,
		Genre:    *input.Genre,
		Platform: *input.Platform,
		Price:    *input.Price,
	}

	if err := store.Create(c.Request.Context(), h.store, &game); err != nil {
		h.storeFailure(c, err)
		return
	}

	c.JSON(http.StatusCreated, newGameResponse(game))
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} GameResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func (h *Handler) GetGameByID(c *gin.Context) {
	game, ok := fetch[models.Game](h, c, "Game")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newGameResponse(*game))
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Overwrites the named fields of a game. Only title, genre, platform and price may be changed.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        id    path      int       true  "Game ID"
// @Param        input body      GamePatch true  "Fields to change"
// @Success      200   {object}  GameResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse "Game not found"
// @Failure      500   {object}  ErrorResponse
// @Router       /games/{id} [patch]
func (h *Handler) UpdateGame(c *gin.Context) {
	game, ok := fetch[models.Game](h, c, "Game")
	if !ok {
		return
	}

	var patch GamePatch
	if !bindPatch(c, &patch, gameMutableFields) {
		return
	}
	if !patch.apply(game) {
		respondMessage(c, http.StatusBadRequest, msgInvalidInput)
		return
	}

	save(h, c, game, "Game", newGameResponse)
}

// DeleteGame godoc
// @Summary      Delete a game
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} DeleteResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Failure      500 {object} ErrorResponse
// @Router       /games/{id} [delete]
func (h *Handler) DeleteGame(c *gin.Context) {
	game, ok := fetch[models.Game](h, c, "Game")
	if !ok {
		return
	}
	remove(h, c, game, "Game")
}
