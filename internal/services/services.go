package services

// Request defaults applied when a field is omitted.
const (
	DefaultLanguage    = "any"
	DefaultGenre       = "any"
	DefaultEra         = "any"
	DefaultSongCount   = 5
	DefaultMindSpeed   = "normal"
	DefaultLyrics      = "sometimes"
	DefaultContext     = "alone"
	DefaultDistraction = "medium"
)

// Song represents a recommended track. Server-supplied and read-only to this layer.
type Song struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Artist     string `json:"artist"`
	Album      string `json:"album,omitempty"`
	Image      string `json:"image,omitempty"`
	DurationMS int    `json:"duration_ms,omitempty"`
	PreviewURL string `json:"preview_url,omitempty"`
	SpotifyURL string `json:"spotify_url"`
}

// HasPreview reports whether a 30-second preview excerpt is available.
func (s Song) HasPreview() bool { return s.PreviewURL != "" }

// PlaylistResponse is the result of one generation request.
type PlaylistResponse struct {
	Success     bool   `json:"success"`
	Query       string `json:"query"`
	Songs       []Song `json:"songs"`
	GeneratedAt string `json:"generated_at,omitempty"`
}

// Filters are the shared knobs of both input modes.
type Filters struct {
	Language  string `json:"language"`
	Genre     string `json:"genre"`
	Era       string `json:"era"`
	SongCount int    `json:"song_count"`
}

// withDefaults fills omitted filter fields with the documented defaults.
func (f Filters) withDefaults() Filters {
	if f.Language == "" {
		f.Language = DefaultLanguage
	}
	if f.Genre == "" {
		f.Genre = DefaultGenre
	}
	if f.Era == "" {
		f.Era = DefaultEra
	}
	if f.SongCount <= 0 {
		f.SongCount = DefaultSongCount
	}
	return f
}

// MoodInput is the structured mood form payload for POST /api/generate.
type MoodInput struct {
	MindSpeed   string `json:"mind_speed"`
	Lyrics      string `json:"lyrics"`
	Context     string `json:"context"`
	Distraction string `json:"distraction"`
	Language    string `json:"language"`
	Genre       string `json:"genre"`
	Era         string `json:"era"`
	SongCount   int    `json:"song_count"`
}

// withDefaults fills omitted mood fields with the documented defaults.
func (m MoodInput) withDefaults() MoodInput {
	if m.MindSpeed == "" {
		m.MindSpeed = DefaultMindSpeed
	}
	if m.Lyrics == "" {
		m.Lyrics = DefaultLyrics
	}
	if m.Context == "" {
		m.Context = DefaultContext
	}
	if m.Distraction == "" {
		m.Distraction = DefaultDistraction
	}
	f := Filters{Language: m.Language, Genre: m.Genre, Era: m.Era, SongCount: m.SongCount}.withDefaults()
	m.Language, m.Genre, m.Era, m.SongCount = f.Language, f.Genre, f.Era, f.SongCount
	return m
}

// textInput is the payload for POST /api/generate-from-text.
type textInput struct {
	Text string `json:"text"`
	Filters
}

// HistoryEntry is one past generation request, held entirely by the backend.
type HistoryEntry struct {
	Query     string `json:"query"`
	Timestamp string `json:"timestamp"`
}

// AuthState is the login state for this run, resolved at most once per page of work.
type AuthState struct {
	LoggedIn    bool   `json:"logged_in"`
	UserID      string `json:"user_id,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

// SaveResult is the outcome of POST /api/save-playlist.
type SaveResult struct {
	Success     bool   `json:"success"`
	PlaylistURL string `json:"playlist_url,omitempty"`
}

// savePlaylistInput is the payload for POST /api/save-playlist.
type savePlaylistInput struct {
	PlaylistName string   `json:"playlist_name"`
	TrackIDs     []string `json:"track_ids"`
}

// FilterOptions lists the filter values the backend accepts.
type FilterOptions struct {
	Languages  []string `json:"languages"`
	Genres     []string `json:"genres"`
	Eras       []string `json:"eras"`
	SongCounts []int    `json:"song_counts"`
}

// ActivityPreset is a one-tap quick-generate shortcut.
type ActivityPreset struct {
	Label string // Display label with emoji
	Value string // Free-text value dispatched on activation
}

// DefaultFilterOptions returns the embedded filter options used when /api/config is unreachable.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		Languages:  []string{"any", "english", "hindi", "punjabi", "tamil", "telugu", "korean", "spanish", "japanese"},
		Genres:     []string{"any", "pop", "rock", "hiphop", "electronic", "classical", "jazz", "rnb", "bollywood", "lofi", "metal"},
		Eras:       []string{"any", "90s", "2000s", "2010s", "latest"},
		SongCounts: []int{5, 10, 15},
	}
}

// DefaultPresets returns the embedded activity presets used when /api/activities is unreachable.
func DefaultPresets() []ActivityPreset {
	return []ActivityPreset{
		{Label: "📚 Studying", Value: "studying"},
		{Label: "💻 Coding", Value: "coding"},
		{Label: "🏋️ Workout", Value: "workout"},
		{Label: "😴 Sleeping", Value: "sleeping"},
		{Label: "🧘 Meditation", Value: "meditation"},
		{Label: "🎉 Party", Value: "party"},
		{Label: "🚗 Driving", Value: "driving"},
		{Label: "😢 Sad", Value: "sad"},
		{Label: "😊 Happy", Value: "happy"},
		{Label: "🍳 Cooking", Value: "cooking"},
		{Label: "💑 Romantic", Value: "romantic"},
		{Label: "😎 Chill", Value: "chill"},
	}
}
