package game

import (
	"image"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/analog-clock/internal/clockface"
	"github.com/iburimskiy/analog-clock/internal/config"
	"github.com/iburimskiy/analog-clock/internal/widget"
)

// Scratch size for one label in the debug font.
const (
	labelWidth  = 24
	labelHeight = 16
)

// Game is the Ebiten windowing layer. It turns the game loop into the timer, paint
// and pointer callbacks of a widget.Callbacks.
type Game struct {
	cb     widget.Callbacks
	ticker *widget.Ticker
	now    func() time.Time
	onTick []func()

	label      *ebiten.Image
	dirty      bool
	bounds     image.Point
	lastCursor clockface.Point

	// input edge detection
	prevKey map[ebiten.Key]bool
}

// NewGame wires cb to the loop. onTick hooks run after every timer tick.
func NewGame(cb widget.Callbacks, onTick ...func()) *Game {
	g := &Game{
		cb:      cb,
		now:     time.Now,
		onTick:  onTick,
		dirty:   true,
		prevKey: map[ebiten.Key]bool{},
	}
	g.ticker = widget.NewTicker(config.TickInterval, g.tick)
	return g
}

// RequestRepaint marks the screen for redraw on the next frame.
func (g *Game) RequestRepaint() { g.dirty = true }

func (g *Game) tick() {
	g.cb.OnTimerTick()
	for _, fn := range g.onTick {
		fn()
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.ticker.Poll(g.now())

	cursor := screenCursor()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.cb.OnPointerDown(cursor)
	}
	if cursor != g.lastCursor {
		g.cb.OnPointerMove(cursor)
		g.lastCursor = cursor
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.cb.OnPointerUp()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	size := screen.Bounds().Size()
	if size != g.bounds {
		g.bounds = size
		g.dirty = true
	}
	if !g.dirty {
		return
	}
	g.dirty = false
	if g.label == nil {
		g.label = ebiten.NewImage(labelWidth, labelHeight)
	}
	g.cb.OnPaint(surface{img: screen, label: g.label}, clockface.Point{X: float64(size.X), Y: float64(size.Y)})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// screenCursor returns the cursor in screen coordinates. The window-local cursor
// alone moves with the window while it is being dragged.
func screenCursor() clockface.Point {
	wx, wy := ebiten.WindowPosition()
	cx, cy := ebiten.CursorPosition()
	return clockface.Point{X: float64(wx + cx), Y: float64(wy + cy)}
}

// surface draws on an ebiten.Image.
type surface struct {
	img   *ebiten.Image
	label *ebiten.Image
}

func (s surface) Fill(c color.Color) { s.img.Fill(c) }

func (s surface) StrokeCircle(center clockface.Point, radius, width float64, c color.Color) {
	vector.StrokeCircle(s.img, float32(center.X), float32(center.Y), float32(radius), float32(width), c, true)
}

func (s surface) StrokeLine(from, to clockface.Point, width float64, c color.Color) {
	vector.StrokeLine(s.img, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), float32(width), c, true)
}

// Text renders with the debug font, which is white, onto a scratch image and
// tints it to FaceColor on the way to the screen.
func (s surface) Text(str string, at clockface.Point) {
	s.label.Clear()
	ebitenutil.DebugPrintAt(s.label, str, 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(at.X, at.Y)
	r, g, b, a := widget.FaceColor.RGBA()
	op.ColorScale.Scale(float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff)
	s.img.DrawImage(s.label, op)
}

// Window moves the native window.
type Window struct{}

func (Window) Position() clockface.Point {
	x, y := ebiten.WindowPosition()
	return clockface.Point{X: float64(x), Y: float64(y)}
}

func (Window) Move(p clockface.Point) {
	log.Debug("move window", "x", p.X, "y", p.Y)
	ebiten.SetWindowPosition(int(p.X), int(p.Y))
}
