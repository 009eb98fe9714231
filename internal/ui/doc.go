// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for playlist generation:
//  1. [InputView] : Describe a mood or activity as free text
//  2. [LoadingView] : Spinner while the backend assembles a playlist
//  3. [ResultsView] : Browse songs, toggle previews, copy or save the playlist
//  4. [HistoryView] : Revisit and re-run recent searches
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Requests run as tea.Cmd goroutines; while one is in flight the submit binding
// is ignored so a search dispatches exactly once.
//
// Keyboard navigation uses the arrow keys (ctrl+j/ctrl+k as alternates), enter,
// esc, and ctrl+c to quit, with contextual help displayed via
// charmbracelet/bubbles/help. Letter keys (p, o, c, s, x) act on the results
// and history views, where the text input is not focused.
package ui
