// Package window draws scenes in a desktop window through ebiten.
package window

import (
	"errors"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/radfield/animation"
	"github.com/lixenwraith/radfield/parameter"
	"github.com/lixenwraith/radfield/render"
)

const (
	windowSize = 800
	tps        = 60

	// ebitenutil debug font cell
	charWidth  = 6
	charHeight = 16

	strokeWidth  = 1.5
	markerRadius = 6
)

var background = color.RGBA{12, 12, 16, 255}

// Game advances the driver from ebiten's update loop
// Frames are stepped on a fixed tick clock, independent of wall time jitter
type Game struct {
	driver *animation.Driver
	scene  *render.Scene
	sink   animation.Sink

	clock Clock
	done  bool
}

// NewGame creates a game, extra receives every frame after the scene, may be nil
func NewGame(d *animation.Driver, scene *render.Scene, extra animation.Sink) *Game {
	return &Game{
		driver: d,
		scene:  scene,
		sink:   extra,
		clock:  NewClock(d.Options().Interval, time.Second/tps),
	}
}

// Run opens the window and blocks until it is closed
func Run(d *animation.Driver, scene *render.Scene, extra animation.Sink, title string) error {
	g := NewGame(d, scene, extra)
	if err := g.step(); err != nil {
		return err
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(windowSize, windowSize)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		log.Printf("window: quit requested")
		return ebiten.Termination
	}
	for n := g.clock.Tick(); n > 0; n-- {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

// step presents one frame, a finished non-looping run keeps its last frame
func (g *Game) step() error {
	if g.done {
		return nil
	}
	frame, ok := g.driver.Next()
	if !ok {
		log.Printf("window: animation finished, holding last frame")
		g.done = true
		return nil
	}
	g.scene.Update(frame)
	if g.sink != nil {
		return g.sink.Present(frame)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.scene.Draw(&canvas{img: screen})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// canvas adapts an ebiten image to render.Canvas
type canvas struct {
	img *ebiten.Image
}

func (c *canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *canvas) Aspect() float64 { return 1 }

func (c *canvas) TextSize() (float64, float64) { return charWidth, charHeight }

func (c *canvas) Line(x0, y0, x1, y1 float64, rgb render.RGB) {
	vector.StrokeLine(c.img, float32(x0), float32(y0), float32(x1), float32(y1), strokeWidth, toColor(rgb), true)
}

func (c *canvas) Arrowhead(x, y, dx, dy float64, rgb render.RGB) {
	shaft := math.Hypot(dx, dy)
	if shaft == 0 {
		return
	}
	length := shaft * parameter.ArrowHeadFraction
	angle := math.Atan2(dy, dx)
	for _, side := range [2]float64{1, -1} {
		a := angle + side*parameter.ArrowHeadAngle
		hx := x - length*math.Cos(a)
		hy := y - length*math.Sin(a)
		vector.StrokeLine(c.img, float32(x), float32(y), float32(hx), float32(hy), strokeWidth, toColor(rgb), true)
	}
}

func (c *canvas) Marker(x, y float64, rgb render.RGB) {
	vector.DrawFilledCircle(c.img, float32(x), float32(y), markerRadius, toColor(rgb), true)
}

// Text ignores color, the debug font is always white
func (c *canvas) Text(x, y float64, s string, _ render.RGB) {
	ebitenutil.DebugPrintAt(c.img, s, int(x), int(y))
}

func toColor(c render.RGB) color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 255}
}
