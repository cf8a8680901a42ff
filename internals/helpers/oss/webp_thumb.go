// internals/helpers/oss/webp_thumb.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	"math"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

/* =======================================================================
   Vignettes WebP pour la médiathèque
   decode (jpeg/png/webp) → downscale keep-aspect → encode webp
======================================================================= */

const thumbQuality = 75

func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "jpeg"), strings.Contains(ct, "png"):
		// imaging gère l'orientation EXIF des jpeg
		return imaging.Decode(bytes.NewReader(all), imaging.AutoOrientation(true))
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif":
		return imaging.Decode(bytes.NewReader(all), imaging.AutoOrientation(true))
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, fmt.Errorf("format non supporté: %s / %s", ct, ext)
}

// downscale keep-aspect (CatmullRom)
func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	if maxW <= 0 && maxH <= 0 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW > 0 && w > maxW) || (maxH > 0 && h > maxH) {
		scale := 1.0
		if maxW > 0 {
			scale = math.Min(scale, float64(maxW)/float64(w))
		}
		if maxH > 0 {
			scale = math.Min(scale, float64(maxH)/float64(h))
		}
		nw := int(math.Round(float64(w) * scale))
		nh := int(math.Round(float64(h) * scale))
		if nw < 1 {
			nw = 1
		}
		if nh < 1 {
			nh = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
		return dst
	}
	return src
}

// MakeWebPThumb produit une vignette webp (lossy) à partir d'une image uploadée.
func MakeWebPThumb(all []byte, filename string, maxW, maxH int) ([]byte, error) {
	img, err := decodeImage(all, filename)
	if err != nil {
		return nil, err
	}
	img = downscaleIfNeeded(img, maxW, maxH)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: thumbQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
