// Package player enforces single-flight audio preview playback.
//
// At most one preview plays at a time. Activating the song that is already
// playing stops it; activating any other song tears the current one down
// first. Natural end-of-audio and start failures run the same teardown path,
// so the controller never reports a playing song without live audio behind it.
package player

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/garg116611-debug/ai-playlist-generator/internal/shared"
)

// Playback is one active audio stream.
type Playback interface {
	// Stop halts the stream and releases its resources. Idempotent.
	Stop()
}

// Backend starts audio playback for a preview URL.
//
// Implementations must call done exactly once if and when the audio reaches
// its natural end; done is never called after Stop.
type Backend interface {
	Play(ctx context.Context, url string, done func()) (Playback, error)
}

// Controller owns the single playback handle and serializes access to it.
type Controller struct {
	backend Backend
	logger  *log.Logger

	mu        sync.Mutex
	current   Playback
	currentID string

	// onChange, when set, observes every change of the playing song id
	// ("" when playback stops). Used by the UI to repaint controls.
	onChange func(songID string)
}

// NewController creates a Controller over the given backend.
func NewController(backend Backend, logger *log.Logger) *Controller {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Controller{backend: backend, logger: logger}
}

// OnChange registers the playing-state observer.
func (c *Controller) OnChange(fn func(songID string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

// Toggle activates the preview for songID.
//
// If songID is already playing this is a stop request. Otherwise any existing
// playback is torn down unconditionally and the new preview starts. Start
// failures are logged and swallowed; the controller ends up idle.
func (c *Controller) Toggle(ctx context.Context, songID, url string) {
	c.mu.Lock()
	stopping := songID != "" && songID == c.currentID
	stopped := c.teardownLocked()
	notify := c.onChange
	c.mu.Unlock()

	if stopped && notify != nil {
		notify("")
	}
	if stopping {
		return
	}

	playback, err := c.backend.Play(ctx, url, func() { c.ended(songID) })
	if err != nil {
		c.logger.Debug("preview playback failed", "song", songID, "error", err)
		return
	}

	c.mu.Lock()
	c.current = playback
	c.currentID = songID
	c.mu.Unlock()

	if notify != nil {
		notify(songID)
	}
}

// Stop tears down any active playback. Safe to call when nothing is playing.
func (c *Controller) Stop() {
	c.mu.Lock()
	stopped := c.teardownLocked()
	notify := c.onChange
	c.mu.Unlock()

	if stopped && notify != nil {
		notify("")
	}
}

// Now returns the id of the currently playing song, or "" when idle.
func (c *Controller) Now() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentID
}

// ended handles natural end-of-audio for songID.
func (c *Controller) ended(songID string) {
	c.mu.Lock()
	if c.currentID != songID {
		// A newer preview already replaced this one.
		c.mu.Unlock()
		return
	}
	stopped := c.teardownLocked()
	notify := c.onChange
	c.mu.Unlock()

	if stopped && notify != nil {
		notify("")
	}
}

// teardownLocked releases the current handle and clears the playing identity,
// reporting whether anything was playing. Callers hold c.mu.
func (c *Controller) teardownLocked() bool {
	if c.current != nil {
		c.current.Stop()
		c.current = nil
	}

	if c.currentID == "" {
		return false
	}
	c.currentID = ""
	return true
}
