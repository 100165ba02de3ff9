// Package wallpaper paints the desktop background: a decoded image scaled to
// cover the screen, or a patterned gradient when no image is available.
package wallpaper

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/1broseidon/glasshell/internal/geom"
	"github.com/1broseidon/glasshell/internal/glass"
	"github.com/1broseidon/glasshell/internal/theme"
)

// ErrUnsupportedFormat is returned for files that are not a decodable image.
var ErrUnsupportedFormat = errors.New("wallpaper: unsupported image format")

var supportedTypes = []string{"image/webp", "image/png", "image/jpeg", "image/gif"}

// Wallpaper holds the background pre-rendered at screen size.
type Wallpaper struct {
	size geom.Size
	src  image.Image
	pix  []uint32
}

// New loads the image at path, if any, and renders the background for size.
// Load failures are logged and fall back to the gradient.
func New(size geom.Size, path string, logger *zap.Logger) *Wallpaper {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &Wallpaper{}
	if path != "" {
		img, err := Load(path)
		if err != nil {
			logger.Warn("wallpaper unavailable, using gradient", zap.String("path", path), zap.Error(err))
		} else {
			w.src = img
		}
	}
	w.Resize(size)
	return w
}

// Load decodes an image file after sniffing its content type.
func Load(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wallpaper %s: %w", path, err)
	}

	if mtype := mimetype.Detect(data); !supported(mtype) {
		return nil, fmt.Errorf("%w: %s is %s", ErrUnsupportedFormat, path, mtype.String())
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode wallpaper %s: %w", path, err)
	}
	return img, nil
}

func supported(mtype *mimetype.MIME) bool {
	for _, t := range supportedTypes {
		if mtype.Is(t) {
			return true
		}
	}
	return false
}

// HasImage reports whether a decoded image backs the wallpaper.
func (w *Wallpaper) HasImage() bool { return w.src != nil }

// Resize re-renders the background for a new screen size.
func (w *Wallpaper) Resize(size geom.Size) {
	w.size = size
	if w.src != nil {
		w.pix = scaleCover(w.src, size)
		return
	}
	w.pix = gradient(size)
}

// Draw copies the background into c.
func (w *Wallpaper) Draw(c *glass.Canvas) {
	if c.Size == w.size {
		copy(c.Pix, w.pix)
		return
	}
	// Screen changed without a Resize; paint what overlaps.
	rows := min(c.Size.Height, w.size.Height)
	cols := min(c.Size.Width, w.size.Width)
	for y := 0; y < rows; y++ {
		copy(c.Pix[y*c.Size.Width:y*c.Size.Width+cols], w.pix[y*w.size.Width:])
	}
}

// scaleCover scales src to fill size, cropping the overflowing axis around
// the center.
func scaleCover(src image.Image, size geom.Size) []uint32 {
	if size.Width <= 0 || size.Height <= 0 {
		return nil
	}
	sb := src.Bounds()
	crop := sb
	if sb.Dx()*size.Height > sb.Dy()*size.Width {
		w := sb.Dy() * size.Width / size.Height
		crop.Min.X = sb.Min.X + (sb.Dx()-w)/2
		crop.Max.X = crop.Min.X + w
	} else {
		h := sb.Dx() * size.Height / size.Width
		crop.Min.Y = sb.Min.Y + (sb.Dy()-h)/2
		crop.Max.Y = crop.Min.Y + h
	}
	if crop.Empty() {
		crop = sb
	}

	dst := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, crop, xdraw.Src, nil)

	pix := make([]uint32, size.Area())
	for i := range pix {
		p := dst.Pix[i*4 : i*4+4 : i*4+4]
		pix[i] = uint32(glass.ARGB(0xFF, p[0], p[1], p[2]))
	}
	return pix
}

// gradient renders the vertical fallback with a faint checker of brightness
// offsets every third pixel.
func gradient(size geom.Size) []uint32 {
	pix := make([]uint32, max(size.Area(), 0))
	if len(pix) == 0 {
		return pix
	}

	for y := 0; y < size.Height; y++ {
		t := float64(y) / float64(size.Height)
		row := uint32(theme.WallpaperTop.Lerp(theme.WallpaperBottom, t))
		line := pix[y*size.Width : (y+1)*size.Width]
		for x := range line {
			line[x] = row
		}
	}

	for y := 0; y < size.Height; y += 3 {
		for x := 0; x < size.Width; x += 3 {
			i := y*size.Width + x
			delta := 5
			if ((x+y)/3)%2 != 0 {
				delta = -5
			}
			c := glass.Color(pix[i])
			pix[i] = uint32(glass.ARGB(0xFF, shift(c.Red(), delta), shift(c.Green(), delta), shift(c.Blue(), delta)))
		}
	}
	return pix
}

func shift(v uint8, delta int) uint8 {
	return uint8(max(min(int(v)+delta, 255), 0))
}
