//go:build (linux && cgo) || windows || darwin

package player

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/garg116611-debug/ai-playlist-generator/internal/shared"
)

// AudioAvailable indicates whether audio playback is supported in this build.
const AudioAvailable = true

// Previews are short excerpts; anything past this is a misbehaving server.
const maxPreviewBytes = 8 << 20

// SpeakerBackend plays preview MP3s through the system speaker using beep.
//
// The speaker device is initialized once at a fixed sample rate; every stream
// is resampled onto it. Previews play at a fixed gain.
type SpeakerBackend struct {
	httpClient *http.Client
	volume     float64

	mu          sync.Mutex
	initialized bool
	sampleRate  beep.SampleRate
}

var _ Backend = (*SpeakerBackend)(nil)

// NewSpeakerBackend creates a speaker backend fetching previews through the
// given HTTP client at the given gain (0 < volume <= 1).
func NewSpeakerBackend(httpClient *http.Client, volume float64) *SpeakerBackend {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if volume <= 0 || volume > 1 {
		volume = 0.5
	}

	return &SpeakerBackend{
		httpClient: httpClient,
		volume:     volume,
		sampleRate: beep.SampleRate(44100),
	}
}

// Play fetches the preview and starts it on the speaker.
//
// done fires once when the stream drains naturally; stopping the returned
// playback suppresses it.
func (b *SpeakerBackend) Play(ctx context.Context, url string, done func()) (Playback, error) {
	if url == "" {
		return nil, shared.ErrNoPreview
	}

	body, err := b.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	streamer, format, err := mp3.Decode(body)
	if err != nil {
		body.Close()
		return nil, fmt.Errorf("%w: decode: %v", shared.ErrPlaybackFailed, err)
	}

	if err := b.initSpeaker(); err != nil {
		streamer.Close()
		return nil, err
	}

	resampled := beep.Resample(4, format.SampleRate, b.sampleRate, streamer)
	leveled := &effects.Volume{
		Streamer: resampled,
		Base:     2,
		Volume:   math.Log2(b.volume),
	}
	ctrl := &beep.Ctrl{Streamer: leveled}

	p := &speakerPlayback{ctrl: ctrl, streamer: streamer}

	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		// Separate goroutine so a done handler can start the next preview
		// without deadlocking against the speaker lock.
		if p.finish() {
			go done()
		}
	})))

	return p, nil
}

// fetch downloads the preview body.
func (b *SpeakerBackend) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrPlaybackFailed, err)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrPlaybackFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: status %d", shared.ErrPlaybackFailed, resp.StatusCode)
	}

	return readCloser{io.LimitReader(resp.Body, maxPreviewBytes), resp.Body}, nil
}

// initSpeaker initializes the speaker device once.
func (b *SpeakerBackend) initSpeaker() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}

	if err := speaker.Init(b.sampleRate, b.sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("%w: speaker init: %v", shared.ErrPlaybackFailed, err)
	}
	b.initialized = true
	return nil
}

// speakerPlayback is one active speaker stream.
type speakerPlayback struct {
	mu       sync.Mutex
	ctrl     *beep.Ctrl
	streamer beep.StreamSeekCloser
	finished bool
}

// Stop pauses the stream and releases the decoder. Idempotent; suppresses the
// natural-end callback.
func (p *speakerPlayback) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.finished {
		return
	}
	p.finished = true

	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()

	p.streamer.Close()
}

// finish marks natural end of stream, reporting whether the done callback
// should fire (false when the playback was already stopped).
func (p *speakerPlayback) finish() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.finished {
		return false
	}
	p.finished = true
	p.streamer.Close()
	return true
}

// readCloser pairs a limited reader with the underlying body for Close.
type readCloser struct {
	io.Reader
	io.Closer
}
