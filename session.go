package compose

import (
	"context"
	"image"
	"sync"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/compose/cache"
	"github.com/gogpu/compose/imageload"
)

// Default session configuration.
const (
	// DefaultPlaceholderTTL is how long a failed-fetch placeholder stays
	// cached. Once it ages out, the next render of the same URL retries
	// the fetch.
	DefaultPlaceholderTTL = 30 * time.Second
)

// Session owns the state shared across drawing calls: the render cache,
// the fetched-image cache, the image loader, and the most recently drawn
// geometry (the implicit "auto" reference).
//
// One session issues drawing calls sequentially; the last-reference chain
// is unsynchronized by contract. The caches themselves are sharded-mutex
// safe, so several independent sessions or canvases may share cached
// bitmaps through a single Session without coordination: entries are
// keyed purely by visual content, never by target identity, and a
// duplicate concurrent render of one key is harmless (last write wins).
type Session struct {
	rendered *cache.Cache[string, *gg.ImageBuf]
	images   *cache.Cache[string, image.Image]
	loader   *imageload.Loader

	last      *Geometry
	phTTL     time.Duration
	clearer   *time.Ticker
	done      chan struct{}
	closeOnce sync.Once
}

// sessionOptions holds configuration collected from SessionOption values.
type sessionOptions struct {
	renderCapacity int
	imageCapacity  int
	loader         *imageload.Loader
	placeholderTTL time.Duration
	autoClear      time.Duration
}

// SessionOption configures a Session during creation.
type SessionOption func(*sessionOptions)

// WithRenderCapacity sets the per-shard capacity of the rendered-element
// cache partition.
func WithRenderCapacity(n int) SessionOption {
	return func(o *sessionOptions) { o.renderCapacity = n }
}

// WithImageCapacity sets the per-shard capacity of the fetched-image
// cache partition.
func WithImageCapacity(n int) SessionOption {
	return func(o *sessionOptions) { o.imageCapacity = n }
}

// WithLoader injects a custom image loader (custom HTTP client, size
// limits, logging).
func WithLoader(l *imageload.Loader) SessionOption {
	return func(o *sessionOptions) { o.loader = l }
}

// WithPlaceholderTTL sets how long failed-fetch placeholders stay cached
// before the fetch is retried.
func WithPlaceholderTTL(d time.Duration) SessionOption {
	return func(o *sessionOptions) { o.placeholderTTL = d }
}

// WithAutoClear wipes both cache partitions on a fixed interval to bound
// memory growth in long-lived sessions. Disabled by default.
func WithAutoClear(d time.Duration) SessionOption {
	return func(o *sessionOptions) { o.autoClear = d }
}

// NewSession creates a Session with its own cache partitions and loader.
func NewSession(opts ...SessionOption) *Session {
	options := sessionOptions{placeholderTTL: DefaultPlaceholderTTL}
	for _, opt := range opts {
		opt(&options)
	}

	loader := options.loader
	if loader == nil {
		loader = imageload.New(imageload.WithLogger(Logger()))
	}

	s := &Session{
		rendered: cache.New[string, *gg.ImageBuf](options.renderCapacity, cache.StringHasher),
		images:   cache.New[string, image.Image](options.imageCapacity, cache.StringHasher),
		loader:   loader,
		phTTL:    options.placeholderTTL,
	}

	if options.autoClear > 0 {
		s.clearer = time.NewTicker(options.autoClear)
		s.done = make(chan struct{})
		go s.autoClearLoop(s.clearer)
	}
	return s
}

// autoClearLoop wipes both partitions on every tick until Close. The
// ticker is passed in rather than read from the session so Close never
// races the loop on shared fields.
func (s *Session) autoClearLoop(t *time.Ticker) {
	for {
		select {
		case <-t.C:
			Logger().Debug("scheduled cache clear")
			s.ClearRendered()
			s.ClearImages()
		case <-s.done:
			return
		}
	}
}

// Close stops the auto-clear ticker and releases cached bitmaps.
// Close is idempotent and safe to call while a scheduled clear is
// running.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		if s.clearer != nil {
			s.clearer.Stop()
			close(s.done)
		}
		s.rendered.Clear()
		s.images.Clear()
	})
	return nil
}

// NewCanvas creates a drawing surface of the given pixel size attached to
// this session. Canvases share the session's caches and last-reference
// chain.
func (s *Session) NewCanvas(width, height int) *Canvas {
	return &Canvas{
		session: s,
		dc:      gg.NewContext(width, height),
		width:   width,
		height:  height,
	}
}

// LastGeometry returns the most recently drawn shape's geometry, if any.
// This is what the [Auto] reference resolves to.
func (s *Session) LastGeometry() (Geometry, bool) {
	if s.last == nil {
		return Geometry{}, false
	}
	return *s.last, true
}

// setLast records a geometry as the session's implicit reference.
func (s *Session) setLast(g Geometry) {
	s.last = &g
}

// ClearRendered wipes the rendered-element cache partition.
func (s *Session) ClearRendered() {
	s.rendered.Clear()
}

// ClearImages wipes the fetched-image cache partition.
func (s *Session) ClearImages() {
	s.images.Clear()
}

// RenderStats returns statistics for the rendered-element partition.
func (s *Session) RenderStats() cache.Stats {
	return s.rendered.Stats()
}

// ImageStats returns statistics for the fetched-image partition.
func (s *Session) ImageStats() cache.Stats {
	return s.images.Stats()
}

// getOrRender returns the cached bitmap for key, or renders it offscreen.
// On a hit the draw function is not invoked. Draw errors propagate and
// nothing is cached for the key.
func (s *Session) getOrRender(key string, width, height int, draw func(dc *gg.Context) error) (*gg.ImageBuf, error) {
	if buf, ok := s.rendered.Get(key); ok {
		return buf, nil
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	dc := gg.NewContext(width, height)
	defer func() { _ = dc.Close() }()
	if err := draw(dc); err != nil {
		return nil, err
	}

	buf := gg.ImageBufFromImage(dc.Image())
	s.rendered.Set(key, buf)
	return buf, nil
}

// fetchImage returns the decoded image for a URL plus post-processing
// parameters, consulting the fetched-image partition first. A failed
// fetch warns, substitutes a placeholder of the requested size, and
// caches it under the same key with a short TTL so a later call retries
// once the placeholder ages out.
func (s *Session) fetchImage(ctx context.Context, url string, opts imageload.Options, phWidth, phHeight int) image.Image {
	key := url + "|" + opts.Key()
	if img, ok := s.images.Get(key); ok {
		return img
	}

	img, err := s.loader.Load(ctx, url, opts)
	if err != nil {
		Logger().Warn("image load failed, using placeholder", "url", url, "error", err)
		ph := imageload.Placeholder(phWidth, phHeight)
		s.images.SetTTL(key, ph, s.phTTL)
		return ph
	}

	s.images.Set(key, img)
	return img
}
