package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/desertthunder/pulse/internal/lyrics"
	"github.com/desertthunder/pulse/internal/shared"
	tu "github.com/desertthunder/pulse/internal/testing"
)

func newBatchEngine() (*Engine, *tu.MockProvider) {
	provider := &tu.MockProvider{
		Lyrics: map[string]string{},
		Errs:   map[string]error{"Broken": errors.New("provider down")},
	}
	for i := range 20 {
		provider.Lyrics[fmt.Sprintf("Song %d", i)] = fmt.Sprintf("Verse %d", i)
	}
	return NewEngine(lyrics.NewResolver([]lyrics.Provider{provider}), nil, nil, nil), provider
}

func TestBatchResolve(t *testing.T) {
	fast := BatchOpts{NumWorkers: 4, RateLimit: 1000}

	t.Run("keeps input order and counts outcomes", func(t *testing.T) {
		engine, _ := newBatchEngine()
		queries := []lyrics.Query{
			{Artist: "A", Title: "Song 0"},
			{Artist: "A", Title: "Missing"},
			{Artist: "A", Title: "Song 1"},
			{Artist: "A", Title: "Broken"},
			{Artist: "", Title: "Song 2"},
			{Artist: "A", Title: "Song 3"},
		}

		result, err := engine.BatchResolve(context.Background(), nil, queries, fast)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if result.Total != 6 || result.Found != 3 || result.Missing != 1 || result.Failed != 2 {
			t.Errorf("unexpected counts %+v", result)
		}
		for i, item := range result.Items {
			if item.Index != i || item.Query != queries[i] {
				t.Errorf("item %d out of order: %+v", i, item)
			}
		}
		if result.Items[2].Result.Text() != "Verse 1" {
			t.Errorf("expected Verse 1, got %q", result.Items[2].Result.Text())
		}
		if !errors.Is(result.Items[4].Error, lyrics.ErrInvalidQuery) {
			t.Errorf("expected validation error, got %v", result.Items[4].Error)
		}
		if result.ID == "" {
			t.Error("expected batch ID")
		}
		if result.ManifestPath != "" {
			t.Error("expected no manifest without output directory")
		}
	})

	t.Run("writes lyric files and manifest", func(t *testing.T) {
		engine, _ := newBatchEngine()
		dir := filepath.Join(t.TempDir(), "out")
		queries := []lyrics.Query{{Artist: "Artist", Title: "Song 5"}, {Artist: "Artist", Title: "Nope"}}

		result, err := engine.BatchResolve(context.Background(), nil, queries, BatchOpts{OutputDir: dir, RateLimit: 1000})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		tu.AssertFileExists(t, filepath.Join(dir, "001-artist-song-5.txt"))
		if result.Items[0].File == "" || result.Items[1].File != "" {
			t.Errorf("unexpected files %q %q", result.Items[0].File, result.Items[1].File)
		}

		var m manifest
		if err := json.Unmarshal([]byte(tu.MustReadFile(t, result.ManifestPath)), &m); err != nil {
			t.Fatalf("invalid manifest: %v", err)
		}
		if m.ID != result.ID || m.Total != 2 || m.Found != 1 || m.Missing != 1 {
			t.Errorf("unexpected manifest %+v", m)
		}
		if m.Items[0].Status != "found" || m.Items[0].File != "001-artist-song-5.txt" || m.Items[1].Status != "not_found" {
			t.Errorf("unexpected manifest items %+v", m.Items)
		}
	})

	t.Run("duplicate rows get their own files", func(t *testing.T) {
		engine, _ := newBatchEngine()
		dir := t.TempDir()
		queries := []lyrics.Query{{Artist: "Artist", Title: "Song 7"}, {Artist: "Artist", Title: "Song 7"}}

		result, err := engine.BatchResolve(context.Background(), nil, queries, BatchOpts{OutputDir: dir, RateLimit: 1000})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		first, second := result.Items[0].File, result.Items[1].File
		if first == "" || first == second {
			t.Fatalf("expected distinct files, got %q and %q", first, second)
		}
		for _, name := range []string{"001-artist-song-7.txt", "002-artist-song-7.txt"} {
			tu.AssertFileExists(t, filepath.Join(dir, name))
		}
	})

	t.Run("reports progress without blocking", func(t *testing.T) {
		engine, _ := newBatchEngine()
		queries := make([]lyrics.Query, 10)
		for i := range queries {
			queries[i] = lyrics.Query{Artist: "A", Title: fmt.Sprintf("Song %d", i)}
		}

		prog := make(chan ProgressUpdate, 3)
		result, err := engine.BatchResolve(context.Background(), prog, queries, fast)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.Found != 10 {
			t.Errorf("expected 10 found, got %d", result.Found)
		}
		if len(prog) != 3 {
			t.Errorf("expected buffered updates to fill the channel, got %d", len(prog))
		}
		if update := <-prog; update.Phase != ResolveLyrics || update.Step != 1 || update.Total != 10 {
			t.Errorf("unexpected first update %+v", update)
		}
	})

	t.Run("cancelled context marks remaining items", func(t *testing.T) {
		engine, provider := newBatchEngine()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		queries := []lyrics.Query{{Artist: "A", Title: "Song 0"}, {Artist: "A", Title: "Song 1"}}
		result, err := engine.BatchResolve(ctx, nil, queries, fast)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if result.Failed != 2 {
			t.Errorf("expected every item failed, got %+v", result)
		}
		if len(provider.Calls()) != 0 {
			t.Errorf("expected no provider calls, got %v", provider.Calls())
		}
	})

	t.Run("requires a resolver", func(t *testing.T) {
		_, err := NewEngine(nil, nil, nil, nil).BatchResolve(context.Background(), nil, nil, fast)
		if !errors.Is(err, shared.ErrServiceUnavailable) {
			t.Errorf("expected ErrServiceUnavailable, got %v", err)
		}
	})

	t.Run("output directory error", func(t *testing.T) {
		engine, _ := newBatchEngine()
		file := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(file, nil, 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := engine.BatchResolve(context.Background(), nil, nil, BatchOpts{OutputDir: filepath.Join(file, "sub")}); err == nil {
			t.Error("expected error creating output directory under a file")
		}
	})
}
