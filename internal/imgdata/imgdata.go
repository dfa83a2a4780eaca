// Package imgdata encodes images as embeddable data URIs, resizing them
// to fit a maximum dimension.
package imgdata

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif" // register gif decoding for image.Decode
	"image/jpeg"
	"image/png"
	"net/http"
	"os"

	"golang.org/x/image/draw"
)

// jpegQuality is the quality used when re-encoding resized JPEGs.
const jpegQuality = 85

// Encode returns a base64 data URI for the given image bytes, scaled
// down so neither dimension exceeds maxDim (0 or negative disables
// resizing). Bytes that do not decode as a supported image are still
// returned as a data URI with a sniffed media type, unresized, so the
// result is always embeddable.
func Encode(data []byte, maxDim int) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty image data")
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		// Not a decodable image; embed the raw bytes as-is.
		return dataURI(http.DetectContentType(data), data), nil
	}

	scaled := scaleToFit(img, maxDim)
	if scaled == img {
		// No resize needed; keep the original bytes and their format.
		return dataURI("image/"+format, data), nil
	}

	encoded, mediaType, err := encodeImage(scaled, format)
	if err != nil {
		return "", err
	}
	return dataURI(mediaType, encoded), nil
}

// EncodeFile reads path and encodes its contents via Encode.
func EncodeFile(path string, maxDim int) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading image %s: %w", path, err)
	}
	return Encode(data, maxDim)
}

// scaleToFit returns img scaled so neither dimension exceeds maxDim,
// or img itself when it already fits (or maxDim disables resizing).
func scaleToFit(img image.Image, maxDim int) image.Image {
	if maxDim <= 0 {
		return img
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= maxDim && height <= maxDim {
		return img
	}

	scaledW, scaledH := maxDim, maxDim
	if width > height {
		scaledH = height * maxDim / width
	} else {
		scaledW = width * maxDim / height
	}
	if scaledW < 1 {
		scaledW = 1
	}
	if scaledH < 1 {
		scaledH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, scaledW, scaledH))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// encodeImage re-encodes a scaled image, preserving PNG and GIF as PNG
// and everything else as JPEG.
func encodeImage(img image.Image, format string) ([]byte, string, error) {
	var buf bytes.Buffer
	switch format {
	case "png", "gif":
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", fmt.Errorf("encoding resized image: %w", err)
		}
		return buf.Bytes(), "image/png", nil
	default:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, "", fmt.Errorf("encoding resized image: %w", err)
		}
		return buf.Bytes(), "image/jpeg", nil
	}
}

// dataURI builds a base64 data URI for the given media type and bytes.
func dataURI(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
