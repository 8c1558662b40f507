// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI has two views:
//  1. [SearchView] : Type a query and browse matching catalog tracks
//  2. [LyricsView] : Read the resolved lyrics of a track alongside its emotion scores
//
// Searches are debounced: every keystroke bumps a request sequence number and only the
// results carrying the latest sequence are shown, so slow responses to stale queries are dropped.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
