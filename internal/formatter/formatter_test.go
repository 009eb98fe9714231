package formatter

import (
	"strings"
	"testing"

	"github.com/garg116611-debug/ai-playlist-generator/internal/services"
)

var songs = []services.Song{
	{ID: "1", Name: "Midnight City", Artist: "M83", Album: "Hurry Up, We're Dreaming", DurationMS: 243000, Image: "https://i.scdn.co/image/1", SpotifyURL: "https://open.spotify.com/track/1"},
	{ID: "2", Name: "Nightcall", Artist: "Kavinsky", SpotifyURL: "https://open.spotify.com/track/2"},
}

func TestSanitize(t *testing.T) {
	tc := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text untouched", input: "Midnight City", want: "Midnight City"},
		{name: "strips escape sequences", input: "evil\x1b[2Jname", want: "evil[2Jname"},
		{name: "strips newlines", input: "two\nlines", want: "twolines"},
		{name: "keeps unicode", input: "Sigur Rós 🎵", want: "Sigur Rós 🎵"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClipboardText(t *testing.T) {
	text := ClipboardText(songs)

	if !strings.HasPrefix(text, "🎵 MoodTunes Playlist:") {
		t.Error("expected header line")
	}
	if !strings.HasSuffix(text, "Generated by MoodTunes AI") {
		t.Error("expected footer line")
	}
	if !strings.Contains(text, "1. Midnight City - M83") {
		t.Error("expected first numbered line")
	}
	if !strings.Contains(text, "2. Nightcall - Kavinsky") {
		t.Error("expected second numbered line")
	}
}

func TestExportToText(t *testing.T) {
	out := string(ExportToText("late night drive", songs))

	if !strings.Contains(out, `Search: "late night drive"`) {
		t.Error("expected query banner")
	}
	if !strings.Contains(out, "Songs: 2") {
		t.Error("expected song count")
	}
	if !strings.Contains(out, "1. M83 - Midnight City") {
		t.Error("expected numbered artist - name line")
	}
}

func TestExportToMarkdown(t *testing.T) {
	out := string(ExportToMarkdown("late night drive", songs))

	if !strings.Contains(out, "# MoodTunes: late night drive") {
		t.Error("expected markdown title")
	}
	if !strings.Contains(out, "[M83 - Midnight City](https://open.spotify.com/track/1) [4:03]") {
		t.Error("expected linked line with duration")
	}
	if strings.Contains(out, "Kavinsky](https://open.spotify.com/track/2) [") {
		t.Error("expected no duration suffix for unknown duration")
	}
	if !strings.Contains(out, "![Midnight City artwork](https://i.scdn.co/image/1)") {
		t.Error("expected artwork image for the first song")
	}
	if strings.Contains(out, "![Nightcall artwork]") {
		t.Error("expected no artwork line when the image is absent")
	}
}

func TestExportToCSV(t *testing.T) {
	out, err := ExportToCSV(songs)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "ID,Name,Artist,Album,Duration,Image,SpotifyURL" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], "Midnight City") || !strings.Contains(lines[1], "4:03") {
		t.Errorf("unexpected first row %q", lines[1])
	}
	if !strings.Contains(lines[1], "https://i.scdn.co/image/1") {
		t.Errorf("expected artwork URL in first row %q", lines[1])
	}
}
