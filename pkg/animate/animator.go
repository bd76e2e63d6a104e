package animate

import (
	"image"
	"sync"
	"time"

	"xsplot/pkg/dataset"
)

// DefaultInterval is the redraw period of the viewer.
const DefaultInterval = 1550 * time.Millisecond

// Renderer rasterises one frame's slices.
type Renderer interface {
	Image(slices []dataset.Slice) (image.Image, error)
}

// Stats is a snapshot of an Animator's progress.
type Stats struct {
	Redraws  int
	Position int
	Done     bool
}

// Animator drives a Cursor from a periodic tick. Tick must only be called
// from one goroutine (the viewer's update loop); Stats may be called from
// any goroutine.
type Animator struct {
	cursor   *Cursor
	renderer Renderer
	interval time.Duration

	due     time.Time
	done    bool
	last    Frame
	pending *Frame
	more    bool

	mu    sync.Mutex
	stats Stats
}

func NewAnimator(cursor *Cursor, renderer Renderer, interval time.Duration) *Animator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Animator{cursor: cursor, renderer: renderer, interval: interval}
}

// Tick redraws when the interval has elapsed. The first call always
// redraws. Once the cursor runs out of data the final (possibly empty)
// frame is returned and Tick never redraws again. A frame that fails to
// render is kept and retried on the next call.
func (a *Animator) Tick(now time.Time) (image.Image, bool, error) {
	if a.done || (!a.due.IsZero() && now.Before(a.due)) {
		return nil, false, nil
	}

	if a.pending == nil {
		frame, more := a.cursor.Advance()
		a.pending, a.more = &frame, more
	}

	img, err := a.renderer.Image(a.pending.Slices)
	if err != nil {
		return nil, false, err
	}

	a.due = now.Add(a.interval)
	a.done = !a.more
	a.last = *a.pending
	a.pending = nil

	a.mu.Lock()
	a.stats.Redraws++
	a.stats.Position = a.cursor.Position()
	a.stats.Done = a.done
	a.mu.Unlock()

	return img, true, nil
}

func (a *Animator) Done() bool { return a.done }

// Last is the most recently drawn frame.
func (a *Animator) Last() Frame { return a.last }

func (a *Animator) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}
