package ui

import (
	"strings"
	"testing"

	"github.com/garg116611-debug/ai-playlist-generator/internal/services"
)

func TestSongItem(t *testing.T) {
	t.Run("Title Carries Ordinal And Preview Marker", func(t *testing.T) {
		item := songItem{
			song:    services.Song{Name: "Midnight City", Artist: "M83", PreviewURL: "http://cdn/p.mp3"},
			ordinal: 3,
		}

		title := item.Title()
		if !strings.HasPrefix(title, "3. ") {
			t.Errorf("expected ordinal prefix, got %q", title)
		}
		if !strings.Contains(title, "▶") {
			t.Errorf("expected play marker, got %q", title)
		}
	})

	t.Run("No Preview Marker", func(t *testing.T) {
		item := songItem{song: services.Song{Name: "Nightcall"}, ordinal: 1}

		if !strings.Contains(item.Title(), "🚫") {
			t.Errorf("expected no-preview marker, got %q", item.Title())
		}
	})

	t.Run("Playing Marker Wins", func(t *testing.T) {
		item := songItem{
			song:    services.Song{Name: "Nightcall", PreviewURL: "http://cdn/p.mp3"},
			ordinal: 1,
			playing: true,
		}

		if !strings.Contains(item.Title(), "⏸") {
			t.Errorf("expected pause marker while playing, got %q", item.Title())
		}
	})

	t.Run("Metadata Renders Literally", func(t *testing.T) {
		item := songItem{
			song:    services.Song{Name: "evil\x1b[2Jsong", Artist: "bad\nartist"},
			ordinal: 1,
		}

		if strings.ContainsRune(item.Title(), 0x1b) {
			t.Error("expected escape bytes stripped from title")
		}
		if strings.Contains(item.Description(), "\n") {
			t.Error("expected newlines stripped from description")
		}
	})

	t.Run("Description Joins Artist Album Duration", func(t *testing.T) {
		item := songItem{
			song: services.Song{Name: "x", Artist: "M83", Album: "Hurry Up", DurationMS: 65000},
		}

		desc := item.Description()
		if !strings.Contains(desc, "M83") || !strings.Contains(desc, "Hurry Up") || !strings.Contains(desc, "1:05") {
			t.Errorf("unexpected description %q", desc)
		}
	})
}

func TestHistoryItem(t *testing.T) {
	t.Run("Shows Query And Clock", func(t *testing.T) {
		item := historyItem{entry: services.HistoryEntry{Query: "late night drive", Timestamp: "2025-06-01T22:15:00Z"}}

		if item.Title() != "late night drive" {
			t.Errorf("unexpected title %q", item.Title())
		}
		desc := item.Description()
		if len(desc) != 5 || desc[2] != ':' {
			t.Errorf("expected HH:MM description, got %q", desc)
		}
	})

	t.Run("Unparseable Timestamp", func(t *testing.T) {
		item := historyItem{entry: services.HistoryEntry{Query: "q", Timestamp: "garbage"}}

		if item.Description() != "earlier" {
			t.Errorf("expected fallback description, got %q", item.Description())
		}
	})
}
