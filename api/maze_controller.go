package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	maze "github.com/yalue/dfs_maze"
	"github.com/yalue/dfs_maze/export"
)

// Largest pixels-per-entity the PNG endpoint accepts.
const maxScale = 32

// MazeController generates a fresh maze for every request.
type MazeController struct {
	defaultHeight int
	defaultWidth  int
	maxDimension  int
	maxPixels     int64
	logger        *slog.Logger
}

// MazeControllerConfig holds the limits and defaults for a MazeController.
type MazeControllerConfig struct {
	DefaultHeight int
	DefaultWidth  int
	MaxDimension  int
	MaxPixels     int64        // Largest scaled image area, in pixels
	Logger        *slog.Logger // Passed to the generator; may be nil
}

// NewMazeController initializes a MazeController.
func NewMazeController(config MazeControllerConfig) *MazeController {
	return &MazeController{
		defaultHeight: config.DefaultHeight,
		defaultWidth:  config.DefaultWidth,
		maxDimension:  config.MaxDimension,
		maxPixels:     config.MaxPixels,
		logger:        config.Logger,
	}
}

// Register registers the maze routes.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	route.GET("/maze", mc.mazeJSON)
	route.GET("/maze.png", mc.mazePNG)
	route.GET("/maze.txt", mc.mazeText)
}

// generate parses the request and carves a new maze for it. On failure it
// writes the error response itself and returns nil.
func (mc *MazeController) generate(ctx *gin.Context) (*maze.Grid, *MazeRequest, uuid.UUID) {
	var request MazeRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, uuid.Nil
	}
	height, width := mc.defaultHeight, mc.defaultWidth
	if request.Height != nil {
		height = *request.Height
	}
	if request.Width != nil {
		width = *request.Width
	}
	if (height > mc.maxDimension) || (width > mc.maxDimension) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf(
			"height and width must not exceed %d", mc.maxDimension)})
		return nil, nil, uuid.Nil
	}
	if request.Scale == 0 {
		request.Scale = 1
	}
	if (request.Scale < 1) || (request.Scale > maxScale) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf(
			"scale must be between 1 and %d", maxScale)})
		return nil, nil, uuid.Nil
	}
	// Scale and dimensions are only bounded separately above, so their
	// product needs its own limit.
	pixels := int64(height*request.Scale) * int64(width*request.Scale)
	if pixels > mc.maxPixels {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf(
			"scaled image would have %d pixels, the limit is %d", pixels,
			mc.maxPixels)})
		return nil, nil, uuid.Nil
	}
	if request.Seed <= 0 {
		request.Seed = time.Now().UnixNano()
	}

	grid, err := maze.NewGrid(height, width)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, uuid.Nil
	}
	gen := maze.NewGenerator(maze.WithSeed(request.Seed),
		maze.WithLogger(mc.logger))
	start := maze.Coordinate{X: request.StartX, Y: request.StartY}
	err = gen.Generate(ctx.Request.Context(), grid, start)
	switch {
	case err == nil:
	case errors.Is(err, maze.ErrInvalidStart):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, uuid.Nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "generation cancelled"})
		return nil, nil, uuid.Nil
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return nil, nil, uuid.Nil
	}

	ID := uuid.New()
	ctx.Header("X-Maze-ID", ID.String())
	return grid, &request, ID
}

// mazeJSON responds with the maze's bitmap and metadata.
func (mc *MazeController) mazeJSON(ctx *gin.Context) {
	grid, request, ID := mc.generate(ctx)
	if grid == nil {
		return
	}
	bitmap := grid.Bitmap()
	rows := make([][]int, len(bitmap))
	for y, row := range bitmap {
		rows[y] = make([]int, len(row))
		for x, v := range row {
			rows[y][x] = int(v)
		}
	}
	response := &MazeResponse{
		ID:     ID,
		Height: grid.Height(),
		Width:  grid.Width(),
		Seed:   request.Seed,
		StartX: request.StartX,
		StartY: request.StartY,
		Info:   grid.GetInfo(),
		Bitmap: rows,
	}
	ctx.JSON(http.StatusOK, response)
}

// mazePNG responds with the maze's bitmap as a PNG image.
func (mc *MazeController) mazePNG(ctx *gin.Context) {
	grid, request, _ := mc.generate(ctx)
	if grid == nil {
		return
	}
	ctx.Header("Content-Type", "image/png")
	ctx.Status(http.StatusOK)
	if err := export.WritePNG(ctx.Writer, grid, export.Options{Scale: request.Scale}); err != nil {
		_ = ctx.Error(err)
	}
}

// mazeText responds with the maze's text dump.
func (mc *MazeController) mazeText(ctx *gin.Context) {
	grid, _, _ := mc.generate(ctx)
	if grid == nil {
		return
	}
	ctx.String(http.StatusOK, grid.String())
}
