package gesturepad

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// WhitePixel is a 1x1 white image used for solid color fills.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
}

// toRGBA converts a Color to color.RGBA with alpha premultiplication.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R * c.A * 255),
		G: uint8(c.G * c.A * 255),
		B: uint8(c.B * c.A * 255),
		A: uint8(c.A * 255),
	}
}

const (
	checkerCells = 16
	checkerCell  = CanvasWidth / checkerCells

	indicatorSize = 28.0
	indicatorGap  = 12.0
	indicatorTop  = 16.0

	indicatorFadeSeconds = 0.25
)

// newCheckerCanvas builds the manipulable surface image: a square
// checkerboard with a contrasting border so scale, rotation, and
// translation all read clearly.
func newCheckerCanvas() *ebiten.Image {
	img := ebiten.NewImage(int(CanvasWidth), int(CanvasWidth))
	img.Fill(color.RGBA{R: 52, G: 58, B: 74, A: 255})

	var op ebiten.DrawImageOptions
	for row := 0; row < checkerCells; row++ {
		for col := 0; col < checkerCells; col++ {
			if (row+col)%2 == 0 {
				continue
			}
			op.GeoM.Reset()
			op.GeoM.Scale(checkerCell, checkerCell)
			op.GeoM.Translate(float64(col)*checkerCell, float64(row)*checkerCell)
			op.ColorScale.Reset()
			op.ColorScale.Scale(0.28, 0.31, 0.40, 1)
			img.DrawImage(WhitePixel, &op)
		}
	}

	// Border so the canvas edge is visible against the clear color.
	border := 8.0
	edges := [4][4]float64{
		{0, 0, CanvasWidth, border},
		{0, CanvasWidth - border, CanvasWidth, border},
		{0, 0, border, CanvasWidth},
		{CanvasWidth - border, 0, border, CanvasWidth},
	}
	for _, e := range edges {
		op.GeoM.Reset()
		op.GeoM.Scale(e[2], e[3])
		op.GeoM.Translate(e[0], e[1])
		op.ColorScale.Reset()
		op.ColorScale.Scale(0.85, 0.65, 0.25, 1)
		img.DrawImage(WhitePixel, &op)
	}
	return img
}

// indicatorVisual tracks one indicator's display alpha and its in-flight
// fade tween, if any.
type indicatorVisual struct {
	alpha float32
	tween *gween.Tween
}

// View renders a Controller: the transformed checkerboard canvas plus the
// indicator strip along the top edge. Visibility changes fade rather than
// snap; the underlying strip state stays boolean.
type View struct {
	pad        *Controller
	canvas     *ebiten.Image
	clear      color.RGBA
	showFPS    bool
	indicators []indicatorVisual
}

// NewView creates a renderer for the controller and subscribes to
// indicator changes.
func NewView(pad *Controller, cfg Config) *View {
	cfg.applyDefaults()

	v := &View{
		pad:        pad,
		canvas:     newCheckerCanvas(),
		clear:      cfg.ClearColor.toRGBA(),
		showFPS:    cfg.ShowFPS,
		indicators: make([]indicatorVisual, pad.Indicators().Len()),
	}
	for i := range v.indicators {
		if pad.Indicators().Visible(i) {
			v.indicators[i].alpha = 1
		}
	}
	pad.Indicators().SetOnChange(func(index int, visible bool) {
		if index < 0 || index >= len(v.indicators) {
			return
		}
		target := float32(0)
		if visible {
			target = 1
		}
		iv := &v.indicators[index]
		iv.tween = gween.New(iv.alpha, target, indicatorFadeSeconds, ease.OutQuad)
	})
	return v
}

// Update advances the indicator fade tweens by one tick.
func (v *View) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))
	for i := range v.indicators {
		iv := &v.indicators[i]
		if iv.tween == nil {
			continue
		}
		val, finished := iv.tween.Update(dt)
		iv.alpha = val
		if finished {
			iv.tween = nil
		}
	}
}

// Draw renders one frame to screen.
func (v *View) Draw(screen *ebiten.Image) {
	screen.Fill(v.clear)
	v.drawCanvas(screen)
	v.drawIndicators(screen)
	if v.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// drawCanvas applies the accumulated surface transform. The canvas image
// is centered on its own origin first, so the matrix's translation lands
// the canvas center at the right screen point.
func (v *View) drawCanvas(screen *ebiten.Image) {
	m := v.pad.Surface().Matrix()

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-CanvasWidth/2, -CanvasWidth/2)

	var geo ebiten.GeoM
	geo.SetElement(0, 0, m[0])
	geo.SetElement(0, 1, m[2])
	geo.SetElement(0, 2, m[4])
	geo.SetElement(1, 0, m[1])
	geo.SetElement(1, 1, m[3])
	geo.SetElement(1, 2, m[5])
	op.GeoM.Concat(geo)

	op.Filter = ebiten.FilterLinear
	screen.DrawImage(v.canvas, &op)
}

// drawIndicators draws the strip centered along the top edge: a faint
// slot for every element and a filled box at the element's fade alpha.
func (v *View) drawIndicators(screen *ebiten.Image) {
	n := len(v.indicators)
	if n == 0 {
		return
	}
	total := float64(n)*indicatorSize + float64(n-1)*indicatorGap
	left := (float64(screen.Bounds().Dx()) - total) / 2

	var op ebiten.DrawImageOptions
	for i := range v.indicators {
		x := left + float64(i)*(indicatorSize+indicatorGap)

		op.GeoM.Reset()
		op.GeoM.Scale(indicatorSize, indicatorSize)
		op.GeoM.Translate(x, indicatorTop)
		op.ColorScale.Reset()
		op.ColorScale.Scale(1, 1, 1, 0.12)
		screen.DrawImage(WhitePixel, &op)

		a := v.indicators[i].alpha
		if a <= 0 {
			continue
		}
		op.ColorScale.Reset()
		op.ColorScale.Scale(0.55*a, 0.80*a, 0.95*a, a)
		screen.DrawImage(WhitePixel, &op)
	}
}
