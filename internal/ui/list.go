package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/garg116611-debug/ai-playlist-generator/internal/formatter"
	"github.com/garg116611-debug/ai-playlist-generator/internal/services"
	"github.com/garg116611-debug/ai-playlist-generator/internal/shared"
)

var (
	_ list.Item = songItem{}
	_ list.Item = historyItem{}
)

// songItem wraps [services.Song] to implement [list.Item]. The ordinal is the
// song's 1-based position in the result set; playing marks the active preview.
type songItem struct {
	song    services.Song
	ordinal int
	playing bool
}

func (i songItem) FilterValue() string { return i.song.Name }

func (i songItem) Title() string {
	marker := "🚫"
	if i.song.HasPreview() {
		marker = "▶"
	}
	if i.playing {
		marker = "⏸"
	}
	return fmt.Sprintf("%d. %s %s", i.ordinal, formatter.Sanitize(i.song.Name), marker)
}

func (i songItem) Description() string {
	desc := formatter.Sanitize(i.song.Artist)
	if i.song.Album != "" {
		desc = fmt.Sprintf("%s • %s", desc, formatter.Sanitize(i.song.Album))
	}
	if d := shared.FormatDuration(i.song.DurationMS); d != "" {
		desc = fmt.Sprintf("%s • %s", desc, d)
	}
	return desc
}

// historyItem wraps [services.HistoryEntry] to implement [list.Item].
type historyItem struct {
	entry services.HistoryEntry
}

func (i historyItem) FilterValue() string { return i.entry.Query }
func (i historyItem) Title() string       { return formatter.Sanitize(i.entry.Query) }
func (i historyItem) Description() string {
	if clock := shared.FormatClock(i.entry.Timestamp); clock != "" {
		return clock
	}
	return "earlier"
}
