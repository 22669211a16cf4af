package api

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewMazeController(MazeControllerConfig{
		DefaultHeight: 5,
		DefaultWidth:  5,
		MaxDimension:  51,
		MaxPixels:     100 * 100,
	})
	return NewRouter(Config{
		BaseURL:     "/api",
		Controllers: []Controller{controller},
	}).Engine()
}

func doGet(engine *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestMazeJSON(t *testing.T) {
	engine := newTestEngine()

	t.Run("Defaults", func(t *testing.T) {
		w := doGet(engine, "/api/v1/maze?seed=9")
		require.Equal(t, http.StatusOK, w.Code)
		var response MazeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotEqual(t, uuid.Nil, response.ID)
		assert.Equal(t, response.ID.String(), w.Header().Get("X-Maze-ID"))
		assert.Equal(t, 5, response.Height)
		assert.Equal(t, 5, response.Width)
		assert.Equal(t, int64(9), response.Seed)
		ones := 0
		for _, row := range response.Bitmap {
			for _, v := range row {
				ones += v
			}
		}
		assert.Equal(t, 17, ones)
	})

	t.Run("Same seed gives the same maze", func(t *testing.T) {
		var a, b MazeResponse
		w := doGet(engine, "/api/v1/maze?height=15&width=21&seed=4&start_x=2&start_y=4")
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &a))
		w = doGet(engine, "/api/v1/maze?height=15&width=21&seed=4&start_x=2&start_y=4")
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
		assert.Equal(t, a.Bitmap, b.Bitmap)
		assert.NotEqual(t, a.ID, b.ID)
		assert.Equal(t, 2, a.StartX)
		assert.Equal(t, 4, a.StartY)
	})

	t.Run("Bad requests", func(t *testing.T) {
		for _, url := range []string{
			"/api/v1/maze?height=4",
			"/api/v1/maze?width=-3",
			"/api/v1/maze?height=53",
			"/api/v1/maze?start_x=1",
			"/api/v1/maze?start_x=10",
			"/api/v1/maze?height=abc",
			"/api/v1/maze?scale=100",
			"/api/v1/maze?height=0",
			"/api/v1/maze?width=0",
		} {
			w := doGet(engine, url)
			assert.Equal(t, http.StatusBadRequest, w.Code, url)
			assert.Contains(t, w.Body.String(), "error", url)
		}
	})
}

func TestMazePNG(t *testing.T) {
	engine := newTestEngine()
	w := doGet(engine, "/api/v1/maze.png?height=7&width=9&seed=3&scale=2")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	pic, err := png.Decode(w.Body)
	require.NoError(t, err)
	assert.Equal(t, 18, pic.Bounds().Dx())
	assert.Equal(t, 14, pic.Bounds().Dy())
}

func TestMazePNGTooLarge(t *testing.T) {
	engine := newTestEngine()
	// Each dimension is within limits, but the scaled area isn't.
	w := doGet(engine, "/api/v1/maze.png?height=51&width=51&scale=32")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "limit")
	assert.Empty(t, w.Header().Get("X-Maze-ID"))

	w = doGet(engine, "/api/v1/maze.png?height=51&width=51&scale=1")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMazeText(t *testing.T) {
	engine := newTestEngine()
	w := doGet(engine, "/api/v1/maze.txt?height=3&width=3&seed=1")
	require.Equal(t, http.StatusOK, w.Code)
	lines := strings.Split(strings.TrimSuffix(w.Body.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Len(t, line, 9)
	}
	// A 2x2 maze of cells always opens exactly 3 of its 4 walls.
	assert.Equal(t, 3, strings.Count(w.Body.String(), " n "))
}
