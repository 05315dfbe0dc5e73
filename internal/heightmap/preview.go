package heightmap

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	previewAmbientLight = 0.2
	captionHeight       = 16
	captionPadding      = 3
)

var lightDirection = mgl64.Vec3{-1, 1.5, -1}.Normalize()

// PreviewOptions controls how a field is turned into an image.
type PreviewOptions struct {
	// Shading lights the field from the upper left using its derivatives.
	Shading bool
	// Relief multiplies the slopes before shading; 0 means 0.25.
	Relief float64
	// Caption draws the field name below the image.
	Caption bool
}

// Render draws the field as a grayscale image normalised to its value range.
func Render(field *Field, opts PreviewOptions) *image.NRGBA {
	res := field.Resolution
	height := res
	if opts.Caption {
		height += captionHeight
	}
	img := image.NewNRGBA(image.Rect(0, 0, res, height))

	background := color.NRGBA{R: 10, G: 10, B: 18, A: 255}
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)

	lo, hi := field.Range()
	span := hi - lo
	relief := opts.Relief
	if relief == 0 {
		relief = 0.25
	}

	for z := 0; z < res; z++ {
		for x := 0; x < res; x++ {
			s := field.At(x, z)
			level := 0.5
			if span > 0 {
				level = (s.V - lo) / span
			}
			if opts.Shading {
				normal := mgl64.Vec3{-s.DX * relief, 1, -s.DZ * relief}.Normalize()
				light := clamp(normal.Dot(lightDirection), 0, 1)
				level *= previewAmbientLight + (1-previewAmbientLight)*light
			}
			v := uint8(math.Round(clamp(level, 0, 1) * 255))
			img.SetNRGBA(x, z, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}

	if opts.Caption {
		drawCaption(img, field.Name, res)
	}
	return img
}

func drawCaption(img *image.NRGBA, text string, top int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA{R: 200, G: 200, B: 210, A: 255}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(captionPadding, top+captionHeight-captionPadding),
	}
	d.DrawString(text)
}

// SavePNG renders the field and writes it to path, creating its directory.
func SavePNG(field *Field, path string, opts PreviewOptions) error {
	if field == nil {
		return fmt.Errorf("field is nil")
	}
	if field.Resolution <= 0 {
		return fmt.Errorf("invalid field resolution: %d", field.Resolution)
	}
	if err := ensurePreviewDir(filepath.Dir(path)); err != nil {
		return err
	}

	img := Render(field, opts)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	return nil
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func ensurePreviewDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("output directory is empty")
	}
	return os.MkdirAll(dir, 0o755)
}
