package display

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

var (
	on  = image.NewUniform(image1bit.On)
	off = image.NewUniform(image1bit.Off)
)

// Rasterize clears img and draws every command of f onto it.
// Anything outside img's bounds is clipped.
func Rasterize(f Frame, img *image1bit.VerticalLSB) {
	draw.Draw(img, img.Bounds(), off, image.Point{}, draw.Src)
	for _, cmd := range f {
		cmd.draw(img)
	}
}

func (t Text) draw(dst draw.Image) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  dst,
		Src:  on,
		Face: face,
		Dot:  fixed.P(t.X, t.Y+face.Ascent),
	}
	d.DrawString(t.S)
}

func (r Rect) draw(dst draw.Image) {
	if !r.Visible || r.W <= 0 || r.H <= 0 {
		return
	}
	b := dst.Bounds()
	outer := image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
	if r.Filled {
		draw.Draw(dst, outer.Intersect(b), on, image.Point{}, draw.Src)
		return
	}
	edges := []image.Rectangle{
		image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, outer.Min.Y+1),
		image.Rect(outer.Min.X, outer.Max.Y-1, outer.Max.X, outer.Max.Y),
		image.Rect(outer.Min.X, outer.Min.Y, outer.Min.X+1, outer.Max.Y),
		image.Rect(outer.Max.X-1, outer.Min.Y, outer.Max.X, outer.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(dst, e.Intersect(b), on, image.Point{}, draw.Src)
	}
}
