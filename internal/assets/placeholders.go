package assets

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/vovakirdan/basket-fighter/internal/core"
)

// Placeholder sprite sizes in pixels.
const (
	FruitSize    = 32
	BasketWidth  = 64
	BasketHeight = 32
)

// Palette holds the placeholder colors.
var Palette = struct {
	Apple      color.RGBA
	Banana     color.RGBA
	Cherry     color.RGBA
	Pear       color.RGBA
	Leaf       color.RGBA
	Stem       color.RGBA
	Basket     color.RGBA
	BasketWeft color.RGBA
}{
	Apple:      color.RGBA{220, 40, 40, 255},
	Banana:     color.RGBA{250, 215, 60, 255},
	Cherry:     color.RGBA{150, 10, 40, 255},
	Pear:       color.RGBA{170, 200, 70, 255},
	Leaf:       color.RGBA{40, 160, 60, 255},
	Stem:       color.RGBA{90, 60, 30, 255},
	Basket:     color.RGBA{165, 110, 55, 255},
	BasketWeft: color.RGBA{110, 70, 30, 255},
}

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5523

// Placeholders draws a catalog of simple shapes, one per sprite.
func Placeholders() Catalog {
	return Catalog{
		core.SpriteApple:  drawApple(),
		core.SpriteBanana: drawBanana(),
		core.SpriteCherry: drawCherry(),
		core.SpritePear:   drawPear(),
		core.SpriteBasket: drawBasket(),
	}
}

// shape rasterizes paths onto one image.
type shape struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

func newShape(w, h int) *shape {
	return &shape{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		z:   vector.NewRasterizer(w, h),
	}
}

// fill paints the current path and starts a new one.
func (s *shape) fill(c color.Color) {
	s.z.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{})
	b := s.img.Bounds()
	s.z.Reset(b.Dx(), b.Dy())
}

func (s *shape) ellipse(cx, cy, rx, ry float32) {
	kx, ky := rx*kappa, ry*kappa
	s.z.MoveTo(cx+rx, cy)
	s.z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	s.z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	s.z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	s.z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	s.z.ClosePath()
}

func (s *shape) rect(x0, y0, x1, y1 float32) {
	s.z.MoveTo(x0, y0)
	s.z.LineTo(x1, y0)
	s.z.LineTo(x1, y1)
	s.z.LineTo(x0, y1)
	s.z.ClosePath()
}

func drawApple() image.Image {
	s := newShape(FruitSize, FruitSize)
	s.ellipse(16, 18, 12, 11)
	s.fill(Palette.Apple)
	s.rect(15, 3, 17, 9)
	s.fill(Palette.Stem)
	s.ellipse(21, 6, 4, 2)
	s.fill(Palette.Leaf)
	return s.img
}

func drawBanana() image.Image {
	s := newShape(FruitSize, FruitSize)
	s.z.MoveTo(5, 8)
	s.z.QuadTo(10, 28, 28, 24)
	s.z.QuadTo(14, 22, 10, 6)
	s.z.ClosePath()
	s.fill(Palette.Banana)
	s.rect(4, 5, 8, 9)
	s.fill(Palette.Stem)
	return s.img
}

func drawCherry() image.Image {
	s := newShape(FruitSize, FruitSize)
	s.z.MoveTo(9, 20)
	s.z.QuadTo(14, 8, 20, 3)
	s.z.LineTo(21, 4)
	s.z.QuadTo(16, 9, 11, 20)
	s.z.ClosePath()
	s.fill(Palette.Stem)
	s.ellipse(10, 22, 6, 6)
	s.ellipse(22, 23, 6, 6)
	s.fill(Palette.Cherry)
	return s.img
}

func drawPear() image.Image {
	s := newShape(FruitSize, FruitSize)
	s.ellipse(16, 21, 10, 9)
	s.fill(Palette.Pear)
	s.ellipse(16, 12, 6, 7)
	s.fill(Palette.Pear)
	s.rect(15, 2, 17, 6)
	s.fill(Palette.Stem)
	return s.img
}

func drawBasket() image.Image {
	s := newShape(BasketWidth, BasketHeight)
	s.z.MoveTo(2, 8)
	s.z.LineTo(62, 8)
	s.z.LineTo(54, 30)
	s.z.LineTo(10, 30)
	s.z.ClosePath()
	s.fill(Palette.Basket)

	for y := float32(13); y < 30; y += 6 {
		s.rect(6, y, 58, y+2)
	}
	s.fill(Palette.BasketWeft)

	// rim
	draw.Draw(s.img, image.Rect(0, 6, BasketWidth, 9), image.NewUniform(Palette.BasketWeft), image.Point{}, draw.Over)
	return s.img
}
