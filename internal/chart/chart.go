// Package chart draws bar charts of the inventory as PNG images.
package chart

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Output size in pixels.
const (
	Width  = 800
	Height = 480
)

// supersample is the factor bars are drawn at before being scaled down, which
// smooths their edges.
const supersample = 2

const (
	marginLeft   = 40
	marginRight  = 20
	marginTop    = 48
	marginBottom = 56
	lineHeight   = 13
	glyphWidth   = 7
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("no gear items to chart")

var (
	background = color.RGBA{255, 255, 255, 255}
	ink        = color.RGBA{40, 40, 40, 255}
	axis       = color.RGBA{160, 160, 160, 255}
	palette    = []color.RGBA{
		{31, 119, 180, 255},
		{255, 127, 14, 255},
		{44, 160, 44, 255},
		{214, 39, 40, 255},
		{148, 103, 189, 255},
		{140, 86, 75, 255},
		{227, 119, 194, 255},
		{127, 127, 127, 255},
	}
)

// Bar is one labelled value.
type Bar struct {
	Label string
	Value float64
	// Note is printed above the bar.
	Note string
}

// CategoryChart writes a PNG of the weight carried per category, with each
// bar's share of the total.
func CategoryChart(w io.Writer, weights map[string]decimal.Decimal) error {
	total := decimal.Zero
	for _, v := range weights {
		total = total.Add(v)
	}

	bars := make([]Bar, 0, len(weights))
	for _, name := range sortedKeys(weights) {
		v := weights[name]
		pct := 0.0
		if total.IsPositive() {
			pct = v.Div(total).InexactFloat64() * 100
		}
		bars = append(bars, Bar{
			Label: name,
			Value: v.InexactFloat64(),
			Note:  fmt.Sprintf("%s kg %.1f%%", v.StringFixed(2), pct),
		})
	}
	return encode(w, "Weight distribution by category", bars)
}

// NameChart writes a PNG of the quantity held of each item name.
func NameChart(w io.Writer, quantities map[string]int) error {
	bars := make([]Bar, 0, len(quantities))
	for _, name := range sortedKeys(quantities) {
		q := quantities[name]
		bars = append(bars, Bar{Label: name, Value: float64(q), Note: fmt.Sprint(q)})
	}
	return encode(w, "Gear items by quantity", bars)
}

func encode(w io.Writer, title string, bars []Bar) error {
	img, err := Render(title, bars)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding chart: %w", err)
	}
	return nil
}

// Render draws bars in the given order under title.
func Render(title string, bars []Bar) (*image.RGBA, error) {
	if len(bars) == 0 {
		return nil, ErrNoData
	}

	big := image.NewRGBA(image.Rect(0, 0, Width*supersample, Height*supersample))
	draw.Draw(big, big.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	maxValue := 0.0
	for _, b := range bars {
		maxValue = max(maxValue, b.Value)
	}

	plotW := Width - marginLeft - marginRight
	plotH := Height - marginTop - marginBottom
	baseline := marginTop + plotH
	slot := plotW / len(bars)
	barW := max(slot*3/4, 1)

	type placed struct {
		x, top int
	}
	positions := make([]placed, len(bars))

	for i, b := range bars {
		h := 0
		if maxValue > 0 && b.Value > 0 {
			h = int(float64(plotH) * b.Value / maxValue)
		}
		x := marginLeft + i*slot + (slot-barW)/2
		positions[i] = placed{x: x, top: baseline - h}

		rect := image.Rect(x, baseline-h, x+barW, baseline)
		fill(big, scaleRect(rect), palette[i%len(palette)])
	}
	fill(big, scaleRect(image.Rect(marginLeft, baseline, marginLeft+plotW, baseline+1)), axis)

	img := downscale(big, max(Width, Height))

	drawText(img, title, (Width-textWidth(title))/2, marginTop/2+lineHeight/2)
	maxChars := max(slot/glyphWidth, 1)
	for i, b := range bars {
		center := positions[i].x + barW/2

		label := truncate(b.Label, maxChars)
		drawText(img, label, center-textWidth(label)/2, baseline+lineHeight+4)

		note := truncate(b.Note, maxChars)
		drawText(img, note, center-textWidth(note)/2, positions[i].top-4)
	}

	return img, nil
}

func scaleRect(r image.Rectangle) image.Rectangle {
	return image.Rect(r.Min.X*supersample, r.Min.Y*supersample, r.Max.X*supersample, r.Max.Y*supersample)
}

func fill(dst *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// downscale resizes the image so neither dimension exceeds maxDim, preserving
// the aspect ratio. Uses Catmull-Rom interpolation.
func downscale(img image.Image, maxDim int) *image.RGBA {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	newW, newH := w, h
	if w > maxDim || h > maxDim {
		if w > h {
			newW = maxDim
			newH = int(float64(h) * float64(maxDim) / float64(w))
		} else {
			newH = maxDim
			newW = int(float64(w) * float64(maxDim) / float64(h))
		}
	}

	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func drawText(dst *image.RGBA, s string, x, y int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(ink),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func textWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Round()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "~"
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
