//go:build !((linux && cgo) || windows || darwin)

package player

import (
	"context"
	"net/http"

	"github.com/garg116611-debug/ai-playlist-generator/internal/shared"
)

// AudioAvailable indicates whether audio playback is supported in this build.
// Audio requires CGO for native sound libraries on Linux.
const AudioAvailable = false

// SpeakerBackend is a no-op audio backend for builds without audio support.
// Preview activation tears down silently, as with any other start failure.
type SpeakerBackend struct{}

var _ Backend = (*SpeakerBackend)(nil)

// NewSpeakerBackend creates a no-op speaker backend.
func NewSpeakerBackend(_ *http.Client, _ float64) *SpeakerBackend {
	return &SpeakerBackend{}
}

// Play always fails when audio is unavailable.
func (b *SpeakerBackend) Play(_ context.Context, _ string, _ func()) (Playback, error) {
	return nil, shared.ErrPlaybackFailed
}
