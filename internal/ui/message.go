package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/pulse/internal/models"
	"github.com/desertthunder/pulse/internal/tasks"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgSearchDebounced MsgKind = iota
	MsgSearchResults
	MsgTrackAnalyzed
)

type searchDebounced struct {
	seq   int
	query string
}

type searchResults struct {
	seq    int
	query  string
	tracks []models.Track
	err    error
}

type trackAnalyzed struct {
	track  models.Track
	result *tasks.TrackAnalysis
	err    error
}

// searchDebouncedMsg is the constructor for [MsgSearchDebounced]
func searchDebouncedMsg(seq int, query string) Msg {
	return Msg{kind: MsgSearchDebounced, data: searchDebounced{seq, query}}
}

// searchResultsMsg is the constructor for [MsgSearchResults]
func searchResultsMsg(seq int, query string, tracks []models.Track, err error) Msg {
	return Msg{kind: MsgSearchResults, data: searchResults{seq, query, tracks, err}}
}

// trackAnalyzedMsg is the constructor for [MsgTrackAnalyzed]
func trackAnalyzedMsg(track models.Track, result *tasks.TrackAnalysis, err error) Msg {
	return Msg{kind: MsgTrackAnalyzed, data: trackAnalyzed{track, result, err}}
}
