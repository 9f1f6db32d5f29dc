package host

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brightlin/rnray/internal/camera"
	"github.com/brightlin/rnray/internal/render"
)

// OnDone is invoked on the render thread between passes. Returning true
// begins another pass (after the caller has, e.g., bumped an animation
// parameter and called Clear); returning false stops the driver loop.
type OnDone func() bool

// Driver runs a background render loop: one goroutine repeatedly drives
// Renderer.StepRender to completion, notifying the caller after every
// scanline and calling OnDone between passes. The caller's own goroutine
// stays free to poll Dirty/Done, or to call Quit, without ever touching the
// renderer directly.
type Driver struct {
	Renderer *render.Renderer

	mu    sync.Mutex
	quit  bool
	dirty chan struct{}
	done  chan struct{}
	log   zerolog.Logger
}

// NewDriver wraps a Renderer for background-goroutine driving.
func NewDriver(r *render.Renderer) *Driver {
	return &Driver{
		Renderer: r,
		dirty:    make(chan struct{}, 1),
		done:     make(chan struct{}),
		log:      log.Logger,
	}
}

// Quit requests that the driver loop stop after its current scanline. It
// is safe to call from any goroutine; the core never interprets this flag
// itself, it only changes StartRender's loop exit condition.
func (d *Driver) Quit() {
	d.mu.Lock()
	d.quit = true
	d.mu.Unlock()
}

func (d *Driver) shouldQuit() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.quit
}

// Dirty returns a channel that receives a value after a scanline has been
// rendered, so a caller can redraw a partially-filled screen. The channel
// holds at most one pending value; notifications sent while one is still
// pending are dropped.
func (d *Driver) Dirty() <-chan struct{} {
	return d.dirty
}

// Done returns a channel closed once the driver loop has stopped, either
// because Quit was called or onDone returned false.
func (d *Driver) Done() <-chan struct{} {
	return d.done
}

// StartRender binds the camera and spawns the background goroutine that
// repeatedly steps the renderer one scanline at a time, notifying Dirty
// after each, and calling onDone between complete passes.
func (d *Driver) StartRender(c *camera.Camera, onDone OnDone) {
	d.Renderer.StartRender(c)

	go func() {
		defer close(d.done)
		for {
			for !d.shouldQuit() && d.Renderer.StepRender(1) {
				select {
				case d.dirty <- struct{}{}:
				default:
				}
			}
			d.Renderer.ResetRender()
			if d.shouldQuit() {
				d.log.Debug().Msg("driver loop quit")
				return
			}
			if !onDone() {
				d.log.Debug().Msg("driver loop finished: onDone declined another pass")
				return
			}
		}
	}()
}
