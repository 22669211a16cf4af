// This defines a basic executable for generating an image of a maze.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/gg"
	maze "github.com/yalue/dfs_maze"
	"github.com/yalue/dfs_maze/config"
	"github.com/yalue/dfs_maze/export"
	"github.com/yalue/dfs_maze/render"
)

// Holds the parsed command-line arguments.
type options struct {
	height, width  int
	startX, startY int
	randomSeed     int64
	gapSize        int
	scale, border  int
	style          string
	outFilename    string
	printText      bool
	verbose        bool
}

// Writes the maze to the output file as a scaled black-and-white bitmap.
func saveBitmap(m *maze.Grid, opts *options) error {
	f, e := os.Create(opts.outFilename)
	if e != nil {
		return fmt.Errorf("Error creating output file %s: %w",
			opts.outFilename, e)
	}
	defer f.Close()
	return export.WritePNG(f, m, export.Options{
		Scale:  opts.scale,
		Border: opts.border,
	})
}

// Generates the maze while drawing it, then writes the drawing to the output
// file.
func generateRendered(m *maze.Grid, gen []maze.GeneratorOption,
	opts *options) error {
	r, e := render.New(m, opts.gapSize)
	if e != nil {
		return e
	}
	defer r.Close()
	e = r.DrawAll()
	if e != nil {
		return e
	}
	gen = append(gen, maze.WithObserver(r.Observer()))
	e = maze.NewGenerator(gen...).Generate(context.Background(), m,
		maze.Coordinate{X: opts.startX, Y: opts.startY})
	if e != nil {
		return fmt.Errorf("Failed generating maze: %w", e)
	}
	e = r.ObserverErr()
	if e != nil {
		return e
	}
	return r.SavePNG(opts.outFilename)
}

func run() int {
	cfg := config.Load()
	var opts options
	flag.IntVar(&opts.height, "height", cfg.Height,
		"The height of the grid, counting cells and walls. Must be odd.")
	flag.IntVar(&opts.width, "width", cfg.Width,
		"The width of the grid, counting cells and walls. Must be odd.")
	flag.IntVar(&opts.startX, "start_x", 0,
		"The column of the starting cell. Must be even.")
	flag.IntVar(&opts.startY, "start_y", 0,
		"The row of the starting cell. Must be even.")
	flag.Int64Var(&opts.randomSeed, "random_seed", cfg.RandomSeed,
		"If positive, specifies the random seed to use.")
	flag.IntVar(&opts.gapSize, "gap_size", cfg.GapSize,
		"The size of a cell, in pixels, for the \"render\" style.")
	flag.IntVar(&opts.scale, "scale", 1,
		"Pixels per grid entity for the \"bitmap\" style.")
	flag.IntVar(&opts.border, "border", 0,
		"Border width, in pixels, for the \"bitmap\" style.")
	flag.StringVar(&opts.style, "style", "bitmap",
		"Either \"bitmap\" or \"render\".")
	flag.StringVar(&opts.outFilename, "output_file", "",
		"The name of the .png file to which the maze will be saved.")
	flag.BoolVar(&opts.printText, "print_text", false,
		"If set, prints a text dump of the grid.")
	flag.BoolVar(&opts.verbose, "verbose", false,
		"If set, logs every generation step to stderr.")
	flag.Parse()
	if (opts.outFilename == "") ||
		((opts.style != "bitmap") && (opts.style != "render")) {
		fmt.Println("Invalid or missing argument.")
		fmt.Println("Run with -help for more information.")
		return 1
	}

	m, e := maze.NewGrid(opts.height, opts.width)
	if e != nil {
		fmt.Printf("Invalid maze size: %s\n", e)
		return 1
	}
	if opts.randomSeed <= 0 {
		opts.randomSeed = time.Now().UnixNano()
	}
	genOpts := []maze.GeneratorOption{maze.WithSeed(opts.randomSeed)}
	if opts.verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug}))
		genOpts = append(genOpts, maze.WithLogger(logger))
		gg.SetLogger(logger)
	}

	if opts.style == "render" {
		e = generateRendered(m, genOpts, &opts)
		if e != nil {
			fmt.Printf("%s\n", e)
			return 1
		}
	} else {
		e = maze.NewGenerator(genOpts...).Generate(context.Background(), m,
			maze.Coordinate{X: opts.startX, Y: opts.startY})
		if e != nil {
			fmt.Printf("Failed generating maze: %s\n", e)
			return 1
		}
		e = saveBitmap(m, &opts)
		if e != nil {
			fmt.Printf("Error writing image to %s: %s\n", opts.outFilename, e)
			return 1
		}
	}
	fmt.Printf("Generated %s OK.\n", m.GetInfo())
	if opts.printText {
		fmt.Print(m.String())
	}
	fmt.Printf("Image %s written OK.\n", opts.outFilename)
	return 0
}

func main() {
	os.Exit(run())
}
