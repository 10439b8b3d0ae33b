package mazeapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/vinom-pathfinder/api/middleware"
	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultLeaderboardLimit = 10

// MazeController serves maze generation, lookup and search.
type MazeController struct {
	mazeService i.MazeService
	defaults    maze.Config
}

// NewMazeController initializes a MazeController. defaults fills fields a create request omits.
func NewMazeController(ms i.MazeService, defaults maze.Config) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("maze controller requires a maze service")
	}
	return &MazeController{
		mazeService: ms,
		defaults:    defaults,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.create)
		mazes.GET("/:ID", mc.byID)
	}
	route.GET("/leaderboard", mc.leaderboard)
	route.GET("/shared/:token", mc.shared)
	route.POST("/solve", mc.solve)
}

// RegisterProtected registers routes that need the maze token.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	route.DELETE("/mazes/:ID", mc.delete)
}

// create handles maze generation requests.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, token, err := mc.mazeService.Create(ctx, mc.configFor(request), request.Seed)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response := newMazeResponse(record, wantsRender(ctx))
	response.Token = token
	ctx.JSON(http.StatusCreated, response)
}

// byID retrieves a stored maze.
func (mc *MazeController) byID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return
	}

	record, err := mc.mazeService.ByID(ctx, id)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(record, wantsRender(ctx)))
}

// delete removes a stored maze owned by the bearer token.
func (mc *MazeController) delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return
	}

	if err := mc.mazeService.Delete(ctx, id, middleware.Claims(ctx)); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// leaderboard lists the mazes with the longest paths.
func (mc *MazeController) leaderboard(ctx *gin.Context) {
	limit, err := strconv.ParseInt(ctx.DefaultQuery("limit", strconv.Itoa(defaultLeaderboardLimit)), 10, 64)
	if err != nil || limit <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return
	}

	records, err := mc.mazeService.Hardest(ctx, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response := make([]*MazeResponse, 0, len(records))
	for _, r := range records {
		response = append(response, newMazeResponse(r, false))
	}
	ctx.JSON(http.StatusOK, response)
}

// shared carves the maze a token describes.
func (mc *MazeController) shared(ctx *gin.Context) {
	record, err := mc.mazeService.Shared(ctx, ctx.Params.ByName("token"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(record, wantsRender(ctx)))
}

// solve searches a caller supplied grid.
func (mc *MazeController) solve(ctx *gin.Context) {
	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := mc.mazeService.Solve(request.Width, request.Height, request.Walls, request.Start, request.Goal)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newPathResponse(result))
}

func (mc *MazeController) configFor(request CreateMazeRequest) maze.Config {
	cfg := mc.defaults
	if request.Width != nil {
		cfg.Width = *request.Width
	}
	if request.Height != nil {
		cfg.Height = *request.Height
	}
	if request.Start != nil {
		cfg.Start = *request.Start
	}
	if request.Goal != nil {
		cfg.Goal = *request.Goal
	}
	return cfg
}

func wantsRender(ctx *gin.Context) bool {
	render, _ := strconv.ParseBool(ctx.Query("render"))
	return render
}

// writeError maps service errors to HTTP statuses.
func writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, maze.ErrInvalidConfig):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidToken):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, dmn.ErrMazeNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
