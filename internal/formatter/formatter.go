// package formatter renders result sets for the clipboard and for file export (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/garg116611-debug/ai-playlist-generator/internal/services"
	"github.com/garg116611-debug/ai-playlist-generator/internal/shared"
)

// Sanitize strips control characters from song metadata so a hostile name or
// artist renders literally and can never alter the terminal layout.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

// ClipboardText renders the playlist as the shareable text placed on the clipboard.
func ClipboardText(songs []services.Song) string {
	var buf bytes.Buffer

	buf.WriteString("🎵 MoodTunes Playlist:\n\n")
	for i, song := range songs {
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, Sanitize(song.Name), Sanitize(song.Artist)))
	}
	buf.WriteString("\nGenerated by MoodTunes AI")

	return buf.String()
}

// ExportToText renders a result set as plain text.
func ExportToText(query string, songs []services.Song) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Search: %q\n", query))
	buf.WriteString(fmt.Sprintf("Songs: %d\n\n", len(songs)))

	for i, song := range songs {
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, Sanitize(song.Artist), Sanitize(song.Name)))
	}

	return buf.Bytes()
}

// ExportToMarkdown renders a result set as Markdown.
func ExportToMarkdown(query string, songs []services.Song) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# MoodTunes: %s\n\n", Sanitize(query)))
	buf.WriteString(fmt.Sprintf("**Songs**: %d\n\n", len(songs)))

	for i, song := range songs {
		duration := shared.FormatDuration(song.DurationMS)
		line := fmt.Sprintf("%d. [%s - %s](%s)", i+1, Sanitize(song.Artist), Sanitize(song.Name), song.SpotifyURL)
		if duration != "" {
			line = fmt.Sprintf("%s [%s]", line, duration)
		}
		buf.WriteString(line + "\n")
		if song.Image != "" {
			buf.WriteString(fmt.Sprintf("   ![%s artwork](%s)\n", Sanitize(song.Name), song.Image))
		}
	}

	return buf.Bytes()
}

// ExportToCSV renders a result set as CSV with columns: ID, Name, Artist, Album, Duration, Image, SpotifyURL
func ExportToCSV(songs []services.Song) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Name", "Artist", "Album", "Duration", "Image", "SpotifyURL"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, song := range songs {
		record := []string{
			song.ID,
			song.Name,
			song.Artist,
			song.Album,
			shared.FormatDuration(song.DurationMS),
			song.Image,
			song.SpotifyURL,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}
