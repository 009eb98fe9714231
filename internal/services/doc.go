// Package services implements the HTTP client for the MoodTunes backend API.
//
// The package contains two categories of code:
//
//  1. Wire types consumed from the backend:
//     - [Song] : A recommended track with optional artwork and preview excerpt
//     - [PlaylistResponse] : One generation result (echoed query + song list)
//     - [HistoryEntry] : A past generation request held by the backend
//     - [AuthState] : Login state as reported by the backend session
//     - [SaveResult] : Outcome of exporting a result set to Spotify
//
//  2. [Client], a typed wrapper over the backend endpoints (/api/generate,
//     /api/generate-from-text, /api/history, /api/me, /api/save-playlist,
//     /api/config, /api/activities).
//
// Best-effort endpoints (history reads, the auth probe, filter options) absorb
// failures and return empty values; user-initiated actions (generate, save)
// surface errors to the caller.
package services
