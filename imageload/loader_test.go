package imageload

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
)

// pngServer serves a solid-color PNG of the given size at every path.
func pngServer(t *testing.T, w, h int) *httptest.Server {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()
	return httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "image/png")
		_, _ = rw.Write(data)
	}))
}

func TestLoad(t *testing.T) {
	srv := pngServer(t, 16, 12)
	defer srv.Close()

	img, err := New().Load(context.Background(), srv.URL+"/a.png", Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 12 {
		t.Errorf("decoded size = %dx%d, want 16x12", b.Dx(), b.Dy())
	}
}

func TestLoadResize(t *testing.T) {
	srv := pngServer(t, 16, 12)
	defer srv.Close()

	img, err := New().Load(context.Background(), srv.URL, Options{Width: 8, Height: 8})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Errorf("resized to %dx%d, want 8x8", b.Dx(), b.Dy())
	}
}

func TestLoadErrors(t *testing.T) {
	notFound := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		http.NotFound(rw, r)
	}))
	defer notFound.Close()

	garbage := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		_, _ = rw.Write([]byte("this is not an image"))
	}))
	defer garbage.Close()

	tests := []struct {
		name string
		url  string
	}{
		{"bad url", "http://\x00invalid"},
		{"unreachable", "http://127.0.0.1:1/x.png"},
		{"status 404", notFound.URL},
		{"undecodable", garbage.URL},
	}
	l := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Load(context.Background(), tt.url, Options{})
			if !errors.Is(err, ErrLoadFailed) {
				t.Errorf("Load error = %v, want ErrLoadFailed", err)
			}
		})
	}
}

func TestLoadContextCancel(t *testing.T) {
	srv := pngServer(t, 4, 4)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().Load(ctx, srv.URL, Options{}); err == nil {
		t.Error("want error for canceled context")
	}
}

func TestOptionsKey(t *testing.T) {
	tests := []struct {
		a, b Options
		same bool
	}{
		{Options{}, Options{}, true},
		{Options{Width: 10, Height: 10}, Options{Width: 10, Height: 10}, true},
		{Options{Width: 10, Height: 10}, Options{Width: 10, Height: 20}, false},
		{Options{Blur: 2}, Options{Blur: 3}, false},
		{Options{Grayscale: true}, Options{}, false},
	}
	for _, tt := range tests {
		got := tt.a.Key() == tt.b.Key()
		if got != tt.same {
			t.Errorf("Key(%+v) vs Key(%+v): same=%v, want %v", tt.a, tt.b, got, tt.same)
		}
	}
}

func TestPlaceholder(t *testing.T) {
	img := Placeholder(40, 24)
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 24 {
		t.Fatalf("placeholder size = %dx%d, want 40x24", b.Dx(), b.Dy())
	}
	// Checkerboard alternates between two grays across an 8px cell.
	a := img.At(0, 0)
	c := img.At(8, 0)
	if a == c {
		t.Error("adjacent checker cells have the same color")
	}
}
