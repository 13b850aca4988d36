package main

import (
	"context"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/thomashancock/Solar-System-Simulator/pkg/simulation"
)

// EventSource reports the single event the simulation reacts to.
type EventSource interface {
	Terminated() bool
}

// quitEvents fires on window close, Escape/Q, or when ctx is cancelled by
// a process signal.
type quitEvents struct {
	ctx context.Context
}

func (q quitEvents) Terminated() bool {
	if q.ctx.Err() != nil {
		return true
	}
	if ebiten.IsWindowBeingClosed() {
		return true
	}
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
}

// Game ---
type Game struct {
	world  *simulation.World
	proj   simulation.Projection
	events EventSource
	logger log.Logger

	face      font.Face
	fontScale float64
	size      int

	frame []simulation.Snapshot
}

func NewGame(w *simulation.World, size int, face font.Face, fontScale float64, events EventSource, logger log.Logger) (*Game, error) {
	proj, err := w.Projection(size)
	if err != nil {
		return nil, err
	}
	return &Game{
		world:     w,
		proj:      proj,
		events:    events,
		logger:    logger,
		face:      face,
		fontScale: fontScale,
		size:      size,
		frame:     w.Snapshot(),
	}, nil
}

// Update ---
func (g *Game) Update() error {
	if g.events.Terminated() {
		level.Info(g.logger).Log("msg", "quit requested", "elapsed_years", fmt.Sprintf("%.2f", g.world.ElapsedYears()))
		return ebiten.Termination
	}
	g.frame = g.world.Tick()
	return nil
}

// Draw ---
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(simulation.Black)

	for _, s := range g.frame {
		x, y := g.proj.Project(s.Position.X, s.Position.Y)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(s.RenderRadius), s.Color, true)
	}

	g.drawElapsed(screen)

	ebiten.SetWindowTitle(fmt.Sprintf("Simulation FPS: %d", int(ebiten.ActualFPS())))
}

func (g *Game) drawElapsed(screen *ebiten.Image) {
	label := fmt.Sprintf("%0.2f earth years", g.world.ElapsedYears())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.fontScale, g.fontScale)
	// text is drawn from its baseline
	op.GeoM.Translate(0, float64(g.face.Metrics().Ascent.Ceil())*g.fontScale)
	op.ColorScale.ScaleWithColor(simulation.White)
	text.DrawWithOptions(screen, label, g.face, op)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.size, g.size
}
