package imgdata

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// pngBytes encodes a solid-color PNG of the given size for tests.
func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return buf.Bytes()
}

// decodeDataURI splits a data URI and decodes its payload.
func decodeDataURI(t *testing.T, uri string) (mediaType string, data []byte) {
	t.Helper()
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		t.Fatalf("not a data URI: %q", uri)
	}
	mediaType, payload, ok := strings.Cut(rest, ";base64,")
	if !ok {
		t.Fatalf("data URI missing base64 payload: %q", uri)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("decoding data URI payload: %v", err)
	}
	return mediaType, data
}

// TestEncodeSmallImageUnchanged verifies images within the limit keep
// their original bytes.
func TestEncodeSmallImageUnchanged(t *testing.T) {
	original := pngBytes(t, 100, 50)

	uri, err := Encode(original, 600)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	mediaType, data := decodeDataURI(t, uri)
	if mediaType != "image/png" {
		t.Errorf("media type = %q, want image/png", mediaType)
	}
	if !bytes.Equal(data, original) {
		t.Error("small image bytes were re-encoded, want originals preserved")
	}
}

// TestEncodeResizesLargeImage verifies oversized images are scaled to
// fit while preserving aspect ratio.
func TestEncodeResizesLargeImage(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		maxDim     int
		wantWidth  int
		wantHeight int
	}{
		{
			name:       "wide image bounded by width",
			width:      1200,
			height:     600,
			maxDim:     600,
			wantWidth:  600,
			wantHeight: 300,
		},
		{
			name:       "tall image bounded by height",
			width:      400,
			height:     800,
			maxDim:     600,
			wantWidth:  300,
			wantHeight: 600,
		},
		{
			name:       "square image",
			width:      1000,
			height:     1000,
			maxDim:     600,
			wantWidth:  600,
			wantHeight: 600,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uri, err := Encode(pngBytes(t, tt.width, tt.height), tt.maxDim)
			if err != nil {
				t.Fatalf("Encode returned error: %v", err)
			}

			mediaType, data := decodeDataURI(t, uri)
			if mediaType != "image/png" {
				t.Errorf("media type = %q, want image/png", mediaType)
			}

			resized, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("decoding resized image: %v", err)
			}
			bounds := resized.Bounds()
			if bounds.Dx() != tt.wantWidth || bounds.Dy() != tt.wantHeight {
				t.Errorf("resized to %dx%d, want %dx%d",
					bounds.Dx(), bounds.Dy(), tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

// TestEncodeZeroMaxDimDisablesResize verifies maxDim 0 keeps dimensions.
func TestEncodeZeroMaxDimDisablesResize(t *testing.T) {
	original := pngBytes(t, 1200, 800)

	uri, err := Encode(original, 0)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	_, data := decodeDataURI(t, uri)
	if !bytes.Equal(data, original) {
		t.Error("image was modified with resizing disabled")
	}
}

// TestEncodeUndecodableBytes verifies non-image bytes still produce an
// embeddable data URI.
func TestEncodeUndecodableBytes(t *testing.T) {
	uri, err := Encode([]byte("not an image at all"), 600)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if !strings.HasPrefix(uri, "data:text/plain") {
		t.Errorf("uri = %q, want text/plain data URI", uri)
	}
}

// TestEncodeEmptyData verifies empty input is an error.
func TestEncodeEmptyData(t *testing.T) {
	if _, err := Encode(nil, 600); err == nil {
		t.Fatal("expected error for empty data, got nil")
	}
}

// TestEncodeFile tests reading and encoding from disk.
func TestEncodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.png")
	if err := os.WriteFile(path, pngBytes(t, 10, 10), 0644); err != nil {
		t.Fatalf("writing test image: %v", err)
	}

	uri, err := EncodeFile(path, 600)
	if err != nil {
		t.Fatalf("EncodeFile returned error: %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("uri = %q, want image/png data URI", uri)
	}
}

// TestEncodeFileMissing verifies a missing file is an error naming the
// path.
func TestEncodeFileMissing(t *testing.T) {
	_, err := EncodeFile(filepath.Join(t.TempDir(), "nope.jpg"), 600)
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
	if !strings.Contains(err.Error(), "nope.jpg") {
		t.Errorf("error %q does not name the missing path", err)
	}
}
