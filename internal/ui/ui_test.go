package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/garg116611-debug/ai-playlist-generator/internal/services"
	"github.com/garg116611-debug/ai-playlist-generator/internal/session"
)

// newResultsModel builds a model sitting on the results view with the given songs.
func newResultsModel(t *testing.T, songs []services.Song) *Model {
	t.Helper()

	m := NewModel(context.Background(), services.NewClient("", nil), nil, session.New())
	m.session.SetResults("test", songs)
	m.rebuildSongList()
	m.view = ResultsView
	return m
}

func pressKey(m *Model, r rune) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func TestOpenInSpotify(t *testing.T) {
	t.Run("opens the selected song's deep link", func(t *testing.T) {
		m := newResultsModel(t, []services.Song{
			{ID: "1", Name: "Nightcall", Artist: "Kavinsky", SpotifyURL: "https://open.spotify.com/track/abc"},
		})

		var opened string
		m.openURL = func(url string) error {
			opened = url
			return nil
		}

		pressKey(m, 'o')
		if opened != "https://open.spotify.com/track/abc" {
			t.Errorf("expected deep link to be opened, got %q", opened)
		}
	})

	t.Run("song without a link warns instead", func(t *testing.T) {
		m := newResultsModel(t, []services.Song{
			{ID: "1", Name: "Nightcall", Artist: "Kavinsky"},
		})

		called := false
		m.openURL = func(url string) error {
			called = true
			return nil
		}

		pressKey(m, 'o')
		if called {
			t.Error("expected no browser launch without a deep link")
		}
		if !strings.Contains(m.status, "No Spotify link") {
			t.Errorf("expected warning status, got %q", m.status)
		}
	})

	t.Run("launch failure is surfaced", func(t *testing.T) {
		m := newResultsModel(t, []services.Song{
			{ID: "1", Name: "Nightcall", Artist: "Kavinsky", SpotifyURL: "https://open.spotify.com/track/abc"},
		})

		m.openURL = func(url string) error {
			return errors.New("no browser")
		}

		pressKey(m, 'o')
		if !strings.Contains(m.status, "Open failed") {
			t.Errorf("expected failure status, got %q", m.status)
		}
	})
}
