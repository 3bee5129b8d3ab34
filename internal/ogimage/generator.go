package ogimage

import (
	"bytes"
	"fmt"
	"image/color"
	"log/slog"
	"strings"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	Width  = 1200
	Height = 630
)

// Card is the text drawn on the share image.
type Card struct {
	Title    string
	Subtitle string
	Tagline  string
	Footer   string
}

// Generate draws the card as a PNG.
func Generate(card Card) ([]byte, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}

	dc := gg.NewContext(Width, Height)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	// Blue to purple wash across the top half
	grad := gg.NewLinearGradient(0, 0, Width, Height)
	grad.AddColorStop(0, color.RGBA{37, 99, 235, 90})
	grad.AddColorStop(0.5, color.RGBA{147, 51, 234, 50})
	grad.AddColorStop(1, color.RGBA{0, 0, 0, 0})
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, Width, Height)
	dc.Fill()

	// Accent bar
	dc.SetRGB255(59, 130, 246)
	dc.DrawRectangle(80, 150, 12, 250)
	dc.Fill()

	dc.SetRGB(1, 1, 1)
	dc.SetFontFace(truetype.NewFace(bold, &truetype.Options{Size: 96}))
	dc.DrawStringAnchored(strings.ToUpper(truncateText(card.Title, 22)), 130, 240, 0, 0.5)

	dc.SetRGB255(59, 130, 246)
	dc.SetFontFace(truetype.NewFace(bold, &truetype.Options{Size: 64}))
	dc.DrawStringAnchored(strings.ToUpper(card.Subtitle), 130, 330, 0, 0.5)

	dc.SetRGB255(161, 161, 170)
	dc.SetFontFace(truetype.NewFace(regular, &truetype.Options{Size: 30}))
	dc.DrawStringWrapped(card.Tagline, 130, 400, 0, 0, Width-260, 1.4, gg.AlignLeft)

	dc.SetRGB255(82, 82, 91)
	dc.SetFontFace(truetype.NewFace(regular, &truetype.Options{Size: 22}))
	dc.DrawStringAnchored(strings.ToUpper(card.Footer), Width/2, Height-50, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}

	slog.Debug("generated OG image", "title", card.Title, "bytes", buf.Len())
	return buf.Bytes(), nil
}

// Cache renders a card on first use and keeps the bytes.
type Cache struct {
	card Card
	once sync.Once
	png  []byte
	err  error
}

func NewCache(card Card) *Cache {
	return &Cache{card: card}
}

// PNG returns the rendered image, drawing it on the first call.
func (c *Cache) PNG() ([]byte, error) {
	c.once.Do(func() {
		c.png, c.err = Generate(c.card)
		if c.err != nil {
			slog.Error("failed to generate OG image", "error", c.err)
		}
	})
	return c.png, c.err
}

// truncateText truncates text to maxLength characters
func truncateText(text string, maxLength int) string {
	r := []rune(text)
	if len(r) <= maxLength {
		return text
	}
	return string(r[:maxLength-3]) + "..."
}
