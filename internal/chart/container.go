package chart

import (
	"bytes"
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"gdpchart/internal/dataset"
)

// ErrStale is returned by Render when a newer render claimed the container
// while this one was loading its data.
var ErrStale = errors.New("chart: render superseded")

// Container is the mount point for a rendered chart. Mounting replaces
// whatever was there; there is never more than one chart inside.
type Container struct {
	mu      sync.Mutex
	id      string
	gen     uint64
	content []byte
}

func NewContainer(id string) *Container {
	return &Container{id: id}
}

func (c *Container) ID() string { return c.id }

// Begin clears the container and claims a new render generation.
func (c *Container) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.content = nil
	return c.gen
}

// Mount installs content if gen is still the latest generation.
func (c *Container) Mount(gen uint64, content []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	c.content = append([]byte(nil), content...)
	return true
}

func (c *Container) Clear() {
	c.mu.Lock()
	c.content = nil
	c.mu.Unlock()
}

// Content returns a copy of the mounted subtree.
func (c *Container) Content() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]byte(nil), c.content...)
}

func (c *Container) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// Renderer runs the full pipeline: load, layout, draw, mount.
type Renderer struct {
	Config Config
	Source dataset.Source
	Log    *zap.Logger
}

func NewRenderer(src dataset.Source, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{Config: DefaultConfig(), Source: src, Log: log}
}

// Render clears c, loads fresh data, and mounts the chart for viewportWidth.
// A render overtaken by a later call on the same container returns
// ErrStale and leaves the newer chart in place.
func (r *Renderer) Render(ctx context.Context, c *Container, viewportWidth int) (Layout, error) {
	gen := c.Begin()
	log := r.Log.With(zap.String("container", c.ID()), zap.Uint64("generation", gen), zap.Int("viewport", viewportWidth))

	ds, err := r.Source.Load(ctx)
	if err != nil {
		if c.Generation() != gen {
			// a newer render canceled or overtook this one
			return Layout{}, ErrStale
		}
		if errors.Is(err, context.Canceled) {
			log.Debug("render canceled")
			return Layout{}, errors.Wrap(err, "load dataset")
		}
		log.Error("load dataset", zap.Error(err))
		return Layout{}, errors.Wrap(err, "load dataset")
	}
	l, err := ComputeLayout(r.Config, viewportWidth, ds)
	if err != nil {
		log.Warn("layout", zap.Error(err))
		return Layout{}, err
	}
	var buf bytes.Buffer
	if err := RenderSVG(&buf, l); err != nil {
		return Layout{}, errors.Wrap(err, "render svg")
	}
	if !c.Mount(gen, buf.Bytes()) {
		log.Debug("discarding stale render")
		return l, ErrStale
	}
	log.Debug("mounted chart", zap.Int("bars", len(l.Bars())), zap.Float64("width", l.Width))
	return l, nil
}
