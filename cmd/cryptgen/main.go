// Package main is the entry point for cryptgen, which generates a level and
// prints it as text or shows it on a terminal screen.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cryptgen/internal/game"
	"github.com/samdwyer/cryptgen/internal/gamedata"
	"github.com/samdwyer/cryptgen/internal/telemetry"
	"github.com/samdwyer/cryptgen/internal/ui"
	"github.com/samdwyer/cryptgen/internal/world"
)

func main() {
	// Load .env first so flags can override it
	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one from the clock)")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "level width in cells")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "level height in cells")
	view := flag.Bool("view", false, "show the level in a terminal screen instead of printing it")
	eye := flag.String("viewer", "", "x,y cell to show line of sight from (\"start\" for the first room)")
	radius := flag.Int("radius", 10, "line of sight radius around -viewer")
	flag.Parse()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	session, err := game.NewSession(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to generate level: %v", err)
	}

	appearance, err := gamedata.LoadAppearance()
	if err != nil {
		log.Fatalf("Failed to load tile data: %v", err)
	}

	var viewer *ui.Viewer
	if *eye != "" {
		p, err := parseViewer(session, *eye)
		if err != nil {
			log.Fatalf("Invalid -viewer: %v", err)
		}
		viewer = ui.NewViewer(session.Level, p, *radius)
	}

	summary := fmt.Sprintf("seed %d, %d rooms, %d secret passages",
		session.Seed, len(session.Level.Rooms), len(session.Passages))

	if *view {
		if err := show(session.Level, appearance, viewer, summary); err != nil {
			log.Fatalf("Display error: %v", err)
		}
		return
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	fmt.Fprintln(out, summary)
	printLevel(out, session.Level, appearance, viewer)
}

// show draws the level on a terminal screen and waits for a key press.
func show(level *world.Level, appearance *gamedata.Appearance, viewer *ui.Viewer, summary string) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Close()

	renderer := ui.NewRenderer(screen, appearance)
	for {
		renderer.Render(level, viewer)
		renderer.RenderMessage(summary+" - press any key", level.Height)

		switch screen.PollEvent().(type) {
		case *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// parseViewer reads "x,y" or "start".
func parseViewer(s *game.Session, v string) (world.Point, error) {
	if v == "start" {
		return s.StartLocation()
	}
	xs, ys, ok := strings.Cut(v, ",")
	if !ok {
		return world.Point{}, fmt.Errorf("want x,y, got %q", v)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return world.Point{}, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return world.Point{}, fmt.Errorf("y: %w", err)
	}
	p := world.Pt(x, y)
	if !s.Level.InBounds(p) {
		return world.Point{}, fmt.Errorf("(%d,%d): %w", x, y, world.ErrOutOfBounds)
	}
	return p, nil
}

// printLevel writes one glyph per cell. With a viewer, cells out of sight
// are blank.
func printLevel(w io.Writer, l *world.Level, a *gamedata.Appearance, viewer *ui.Viewer) {
	for y := 0; y < l.Height; y++ {
		var row strings.Builder
		for x := 0; x < l.Width; x++ {
			p := world.Pt(x, y)
			switch {
			case viewer != nil && p == viewer.Pos:
				row.WriteRune('@')
			case viewer != nil && !viewer.Visible[p]:
				row.WriteRune(' ')
			default:
				row.WriteRune(a.Glyph(l.Tile(p)))
			}
		}
		fmt.Fprintln(w, row.String())
	}
}
