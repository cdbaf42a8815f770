// Package imageload fetches and decodes remote images for compose.
//
// A Loader performs context-aware HTTP fetches, decodes PNG, JPEG, GIF,
// and WebP, and applies optional post-processing (resize, blur,
// grayscale). Load surfaces failures to the caller; placeholder
// substitution for failed loads is the session's job, not the loader's.
package imageload

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	// Image decoders registered for image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/transform"
)

// DefaultTimeout bounds a fetch when the caller's context carries no
// deadline of its own.
const DefaultTimeout = 15 * time.Second

// defaultMaxBytes caps the response body read during decode.
const defaultMaxBytes = 32 << 20 // 32 MiB

// ErrLoadFailed wraps every fetch and decode failure returned by Load, so
// callers can distinguish load failures from their own errors with a
// single errors.Is check.
var ErrLoadFailed = errors.New("imageload: load failed")

// Options are post-processing parameters applied after decode. They form
// part of the image cache key: the same URL with different processing is
// a different cached entry.
type Options struct {
	// Width and Height resize the decoded image when both are positive.
	Width  int
	Height int

	// Blur applies a gaussian blur with the given radius when positive.
	Blur float64

	// Grayscale converts the image to grayscale.
	Grayscale bool
}

// Key serializes the options deterministically for cache keying.
func (o Options) Key() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(o.Width))
	b.WriteByte('x')
	b.WriteString(strconv.Itoa(o.Height))
	b.WriteString("|blur=")
	b.WriteString(strconv.FormatFloat(o.Blur, 'g', -1, 64))
	if o.Grayscale {
		b.WriteString("|gray")
	}
	return b.String()
}

// zero reports whether no post-processing is requested.
func (o Options) zero() bool {
	return o.Width <= 0 && o.Height <= 0 && o.Blur <= 0 && !o.Grayscale
}

// Loader fetches and decodes images over HTTP.
// The zero value is not usable; create one with New.
type Loader struct {
	client   *http.Client
	maxBytes int64
	logger   *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithHTTPClient sets a custom HTTP client (proxies, custom transports,
// stricter timeouts).
func WithHTTPClient(c *http.Client) LoaderOption {
	return func(l *Loader) { l.client = c }
}

// WithMaxBytes caps the downloaded body size. Exceeding it fails the
// decode rather than truncating silently.
func WithMaxBytes(n int64) LoaderOption {
	return func(l *Loader) { l.maxBytes = n }
}

// WithLogger sets the logger for fetch diagnostics.
func WithLogger(lg *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if lg != nil {
			l.logger = lg
		}
	}
}

// New creates a Loader.
func New(opts ...LoaderOption) *Loader {
	l := &Loader{
		client:   &http.Client{Timeout: DefaultTimeout},
		maxBytes: defaultMaxBytes,
		logger:   slog.New(discardHandler{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches an image by URL, decodes it, and applies post-processing.
// Unreachable URLs, non-2xx statuses, and undecodable payloads all return
// an error; Load never substitutes placeholder content.
func (l *Loader) Load(ctx context.Context, url string, opts Options) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request for %q: %w", ErrLoadFailed, url, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %q: %w", ErrLoadFailed, url, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: fetch %q: unexpected status %s", ErrLoadFailed, url, resp.Status)
	}

	img, format, err := image.Decode(io.LimitReader(resp.Body, l.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: decode %q: %w", ErrLoadFailed, url, err)
	}
	l.logger.Debug("image decoded", "url", url, "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	return process(img, opts), nil
}

// process applies the post-processing pipeline in a fixed order:
// resize, blur, grayscale.
func process(img image.Image, opts Options) image.Image {
	if opts.zero() {
		return img
	}
	if opts.Width > 0 && opts.Height > 0 {
		img = transform.Resize(img, opts.Width, opts.Height, transform.Linear)
	}
	if opts.Blur > 0 {
		img = blur.Gaussian(img, opts.Blur)
	}
	if opts.Grayscale {
		img = effect.Grayscale(img)
	}
	return img
}

// discardHandler silently drops log records.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }
