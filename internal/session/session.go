// Package session holds the mutable state of one client run.
//
// The current song list, the auth identity, and the playing-preview identity
// are the only mutable state in the client. They live in one Session owned by
// the view layer rather than as package globals, so tests can reset them
// deterministically.
package session

import (
	"sync"

	"github.com/garg116611-debug/ai-playlist-generator/internal/services"
)

// Session is the single source of truth for the active view session.
type Session struct {
	mu           sync.Mutex
	query        string
	songs        []services.Song
	auth         services.AuthState
	authResolved bool
}

// New creates an empty session with unresolved auth state.
func New() *Session {
	return &Session{}
}

// SetResults replaces the song list wholesale with one generation's result.
func (s *Session) SetResults(query string, songs []services.Song) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
	s.songs = append([]services.Song(nil), songs...)
}

// Songs returns a copy of the current song list.
func (s *Session) Songs() []services.Song {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]services.Song(nil), s.songs...)
}

// Query returns the backend-echoed query for the current result set.
func (s *Session) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// HasResults reports whether a result set is currently visible.
func (s *Session) HasResults() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.songs) > 0
}

// TrackIDs returns the ids of the current result set in render order.
// Songs without an id are skipped; they cannot be saved.
func (s *Session) TrackIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.songs))
	for _, song := range s.songs {
		if song.ID != "" {
			ids = append(ids, song.ID)
		}
	}
	return ids
}

// ResolveAuth records the login state for this run.
//
// Auth transitions from unknown to known exactly once; later calls are
// ignored (no live re-probing).
func (s *Session) ResolveAuth(state services.AuthState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.authResolved {
		return
	}
	s.auth = state
	s.authResolved = true
}

// Auth returns the resolved login state and whether it has been resolved.
func (s *Session) Auth() (services.AuthState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auth, s.authResolved
}

// ShowBadge reports whether the logged-in user badge is visible.
func (s *Session) ShowBadge() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authResolved && s.auth.LoggedIn
}

// ShowSave reports whether the save-to-Spotify affordance is visible.
//
// Pure function of (loggedIn, hasVisibleResults): both must hold.
func (s *Session) ShowSave() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authResolved && s.auth.LoggedIn && len(s.songs) > 0
}

// Reset clears all session state, including the auth resolution.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = ""
	s.songs = nil
	s.auth = services.AuthState{}
	s.authResolved = false
}
