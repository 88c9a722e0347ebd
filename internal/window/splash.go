package window

import (
	"image"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"

	"github.com/PixPMusic/midi-studio/internal/config"
)

// newSplash renders the boot title with freetype for anti-aliased text at a
// size fyne's label widget does not offer.
func newSplash() *canvas.Image {
	text := config.AppName

	fontBytes := theme.DefaultTextFont().Content()
	f, err := freetype.ParseFont(fontBytes)
	if err != nil {
		log.Printf("[Window] Failed to parse font: %v", err)
		return canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	}

	fontSize := float64(36)
	dpi := float64(72)

	c := freetype.NewContext()
	c.SetFont(f)
	c.SetFontSize(fontSize)
	c.SetDPI(dpi)

	opts := truetype.Options{Size: fontSize, DPI: dpi}
	face := truetype.NewFace(f, &opts)
	defer face.Close()

	textWidth := 0
	for _, r := range text {
		adv, ok := face.GlyphAdvance(r)
		if ok {
			textWidth += adv.Round()
		}
	}

	metrics := face.Metrics()
	ascent := metrics.Ascent.Round()
	height := ascent + metrics.Descent.Round()

	padding := 8
	imgWidth := textWidth + padding*2
	imgHeight := height + padding*2

	srcImg := image.NewRGBA(image.Rect(0, 0, imgWidth, imgHeight))
	c.SetClip(srcImg.Bounds())
	c.SetDst(srcImg)
	c.SetSrc(image.NewUniform(theme.ForegroundColor()))

	pt := freetype.Pt(padding, padding+ascent)
	if _, err := c.DrawString(text, pt); err != nil {
		log.Printf("[Window] Failed to draw splash text: %v", err)
	}

	img := canvas.NewImageFromImage(srcImg)
	img.FillMode = canvas.ImageFillOriginal
	img.SetMinSize(fyne.NewSize(float32(imgWidth), float32(imgHeight)))
	return img
}
