// Package bigchar renders short strings as large block art using half-block characters.
package bigchar

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var loadedFace font.Face

// fontPaths are tried in order; the first parseable font wins.
var fontPaths = []string{
	// macOS
	"/System/Library/Fonts/Helvetica.ttc",
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
	// Linux
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/usr/share/fonts/opentype/noto/NotoSans-Bold.ttf",
	"/usr/share/fonts/truetype/noto/NotoSans-Bold.ttf",
	// Windows
	"C:\\Windows\\Fonts\\arialbd.ttf",
	"C:\\Windows\\Fonts\\segoeui.ttf",
}

func init() {
	for _, path := range fontPaths {
		if face := loadFace(path); face != nil {
			loadedFace = face
			return
		}
	}
}

func loadFace(path string) font.Face {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	opts := &opentype.FaceOptions{Size: 64, DPI: 72}

	// Try parsing as font collection first
	if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
		if fnt, err := coll.Font(0); err == nil {
			if face, err := opentype.NewFace(fnt, opts); err == nil {
				return face
			}
		}
	}

	if fnt, err := opentype.Parse(data); err == nil {
		if face, err := opentype.NewFace(fnt, opts); err == nil {
			return face
		}
	}
	return nil
}

// Render draws text with the loaded face and converts it to half-block art
// of rows terminal lines. The width follows the text's aspect ratio.
func Render(text string, rows int) string {
	if text == "" || rows <= 0 || loadedFace == nil {
		return ""
	}
	return renderWith(loadedFace, text, rows)
}

func renderWith(face font.Face, text string, rows int) string {
	bounds, advance := font.BoundString(face, text)
	textWidth := advance.Ceil()
	textHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if textWidth <= 0 || textHeight <= 0 {
		return ""
	}

	padding := 4
	srcWidth := textWidth + padding*2
	srcHeight := textHeight + padding*2

	srcImg := image.NewGray(image.Rect(0, 0, srcWidth, srcHeight))
	draw.Draw(srcImg, srcImg.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  srcImg,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(padding, padding-bounds.Min.Y.Floor()),
	}
	d.DrawString(text)

	// Terminal cells are about twice as tall as wide; each cell holds two
	// vertical pixels, so one cell column per source pixel of height/rows*2.
	targetHeight := rows * 2
	cols := srcWidth * targetHeight / srcHeight
	if cols < 1 {
		cols = 1
	}

	scaled := scaleDown(srcImg, cols, targetHeight)
	return imageToHalfBlocks(scaled, cols, rows)
}

// scaleDown scales a grayscale image using area averaging
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcBounds := src.Bounds()
	srcWidth := srcBounds.Max.X
	srcHeight := srcBounds.Max.Y

	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			sx1 := int(float64(dx) * xRatio)
			sy1 := int(float64(dy) * yRatio)
			sx2 := min(int(float64(dx+1)*xRatio), srcWidth)
			sy2 := min(int(float64(dy+1)*yRatio), srcHeight)

			var sum, count int
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					count++
				}
			}

			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}

	return dst
}

// imageToHalfBlocks converts a grayscale image to half-block art
func imageToHalfBlocks(img *image.Gray, cols, rows int) string {
	const threshold = uint8(60)

	var result strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			topOn := pixelBrightness(img, col, row*2) > threshold
			bottomOn := pixelBrightness(img, col, row*2+1) > threshold

			switch {
			case topOn && bottomOn:
				result.WriteRune('█')
			case topOn:
				result.WriteRune('▀')
			case bottomOn:
				result.WriteRune('▄')
			default:
				result.WriteRune(' ')
			}
		}
		if row < rows-1 {
			result.WriteRune('\n')
		}
	}

	return result.String()
}

func pixelBrightness(img *image.Gray, x, y int) uint8 {
	if x < 0 || y < 0 || x >= img.Bounds().Max.X || y >= img.Bounds().Max.Y {
		return 0
	}
	return img.GrayAt(x, y).Y
}

// IsAvailable returns true if a font was found
func IsAvailable() bool {
	return loadedFace != nil
}

type cacheKey struct {
	text string
	rows int
}

var cache = make(map[cacheKey]string)

// GetCached returns the cached rendering of text or renders it.
// The TUI calls it from its single update goroutine only.
func GetCached(text string, rows int) string {
	if !IsAvailable() {
		return ""
	}

	key := cacheKey{text, rows}
	if cached, ok := cache[key]; ok {
		return cached
	}

	rendered := Render(text, rows)
	cache[key] = rendered
	return rendered
}
