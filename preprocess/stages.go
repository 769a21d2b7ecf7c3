package preprocess

import (
	"image"
	"image/color"
	"math"
	"sort"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Grayscale converts img to 8-bit grayscale. Images that are already
// grayscale are returned as-is.
func Grayscale(img image.Image) *image.Gray {
	if gray, ok := img.(*image.Gray); ok {
		return gray
	}
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)
	return gray
}

// Denoise applies a 3x3 median filter. Median filtering removes
// salt-and-pepper speckle while keeping glyph edges sharp, which is what
// matters for recognition.
func Denoise(img image.Image) *image.Gray {
	src := Grayscale(img)
	bounds := src.Bounds()
	dst := image.NewGray(bounds)

	var window [9]byte
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if nx < bounds.Min.X || nx >= bounds.Max.X || ny < bounds.Min.Y || ny >= bounds.Max.Y {
						continue
					}
					window[n] = src.GrayAt(nx, ny).Y
					n++
				}
			}
			neighborhood := window[:n]
			sort.Slice(neighborhood, func(i, j int) bool { return neighborhood[i] < neighborhood[j] })
			dst.SetGray(x, y, color.Gray{Y: neighborhood[n/2]})
		}
	}
	return dst
}

// Threshold binarizes img using Otsu's method: the threshold that
// maximizes between-class variance of the intensity histogram. Pixels at
// or below the threshold become black, the rest white.
func Threshold(img image.Image) *image.Gray {
	src := Grayscale(img)
	bounds := src.Bounds()

	var histogram [256]int
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			histogram[src.GrayAt(x, y).Y]++
			total++
		}
	}
	if total == 0 {
		return src
	}

	var sum float64
	for i, count := range histogram {
		sum += float64(i) * float64(count)
	}

	var sumBelow, weightBelow float64
	bestThreshold := 0
	bestVariance := -1.0
	for t := 0; t < 256; t++ {
		weightBelow += float64(histogram[t])
		if weightBelow == 0 {
			continue
		}
		weightAbove := float64(total) - weightBelow
		if weightAbove == 0 {
			break
		}
		sumBelow += float64(t) * float64(histogram[t])
		meanBelow := sumBelow / weightBelow
		meanAbove := (sum - sumBelow) / weightAbove
		variance := weightBelow * weightAbove * (meanBelow - meanAbove) * (meanBelow - meanAbove)
		if variance > bestVariance {
			bestVariance = variance
			bestThreshold = t
		}
	}

	dst := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if int(src.GrayAt(x, y).Y) <= bestThreshold {
				dst.SetGray(x, y, color.Gray{Y: 0})
			} else {
				dst.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return dst
}

// maxSkewDegrees bounds the deskew search. Page scans are rarely off by
// more than a few degrees; anything larger is an orientation problem, not
// skew.
const maxSkewDegrees = 5.0

// Deskew estimates the dominant text skew via a projection-profile search
// and rotates the image to remove it. Angles within ±5° are tried in 0.5°
// steps; the angle whose horizontal projection of dark pixels is sharpest
// wins. Images with no measurable skew are returned unchanged.
func Deskew(img image.Image) *image.Gray {
	src := Grayscale(img)
	angle := estimateSkew(src)
	if angle == 0 {
		return src
	}
	return rotate(src, -angle)
}

// estimateSkew returns the skew angle in degrees that best aligns dark
// pixels into rows.
func estimateSkew(src *image.Gray) float64 {
	bounds := src.Bounds()
	height := bounds.Dy()
	if height == 0 {
		return 0
	}

	bestAngle := 0.0
	bestScore := projectionScore(src, 0)
	for angle := -maxSkewDegrees; angle <= maxSkewDegrees; angle += 0.5 {
		if angle == 0 {
			continue
		}
		if score := projectionScore(src, angle); score > bestScore {
			bestScore = score
			bestAngle = angle
		}
	}
	return bestAngle
}

// projectionScore shears dark pixels by the candidate angle and sums the
// squared row counts. Sharp, well-aligned text rows concentrate pixels
// into few rows and score high; skewed text smears them and scores low.
func projectionScore(src *image.Gray, degrees float64) float64 {
	bounds := src.Bounds()
	rows := make([]int, bounds.Dy()+1)
	shear := math.Tan(degrees * math.Pi / 180)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if src.GrayAt(x, y).Y >= 128 {
				continue
			}
			row := int(float64(y-bounds.Min.Y) + float64(x-bounds.Min.X)*shear)
			if row >= 0 && row < len(rows) {
				rows[row]++
			}
		}
	}

	score := 0.0
	for _, count := range rows {
		score += float64(count) * float64(count)
	}
	return score
}

// rotate rotates src by the given angle (degrees, counterclockwise) about
// its center, filling uncovered corners with white.
func rotate(src *image.Gray, degrees float64) *image.Gray {
	bounds := src.Bounds()
	dst := image.NewGray(bounds)
	for i := range dst.Pix {
		dst.Pix[i] = 255
	}

	radians := degrees * math.Pi / 180
	sin, cos := math.Sin(radians), math.Cos(radians)
	cx := float64(bounds.Min.X) + float64(bounds.Dx())/2
	cy := float64(bounds.Min.Y) + float64(bounds.Dy())/2

	// Affine map from source to destination: rotate about the center.
	m := f64.Aff3{
		cos, -sin, cx - cos*cx + sin*cy,
		sin, cos, cy - sin*cx - cos*cy,
	}
	draw.ApproxBiLinear.Transform(dst, m, src, bounds, draw.Src, nil)
	return dst
}

// Resize scales img by factor using Catmull-Rom resampling. Factors at or
// below zero return the input unchanged.
func Resize(img image.Image, factor float64) image.Image {
	if factor <= 0 || factor == 1 {
		return img
	}
	bounds := img.Bounds()
	width := int(float64(bounds.Dx()) * factor)
	height := int(float64(bounds.Dy()) * factor)
	if width < 1 || height < 1 {
		return img
	}
	rect := image.Rect(0, 0, width, height)
	if _, ok := img.(*image.Gray); ok {
		dst := image.NewGray(rect)
		draw.CatmullRom.Scale(dst, rect, img, bounds, draw.Src, nil)
		return dst
	}
	dst := image.NewRGBA(rect)
	draw.CatmullRom.Scale(dst, rect, img, bounds, draw.Src, nil)
	return dst
}
