package api

import (
	"github.com/google/uuid"
)

// MazeRequest holds the query parameters accepted by the maze endpoints.
// A missing height or width means the server default; an explicit value is
// always validated.
type MazeRequest struct {
	Height *int  `form:"height"`
	Width  *int  `form:"width"`
	Seed   int64 `form:"seed"`
	StartX int   `form:"start_x"`
	StartY int   `form:"start_y"`
	Scale  int   `form:"scale"`
}

// MazeResponse represents a generated maze, with its bitmap as rows of 0s
// and 1s.
type MazeResponse struct {
	ID     uuid.UUID `json:"id"`
	Height int       `json:"height"`
	Width  int       `json:"width"`
	Seed   int64     `json:"seed"`
	StartX int       `json:"start_x"`
	StartY int       `json:"start_y"`
	Info   string    `json:"info"`
	Bitmap [][]int   `json:"bitmap"`
}
