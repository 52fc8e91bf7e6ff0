// Command backdropdemo exercises the background composition engine: it
// opens (or creates) a persistent store, applies a few fills, and renders
// each variant to a PNG.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/coverkit/backdrop"
)

func main() {
	_ = godotenv.Load()

	var (
		width  = flag.Int("width", 1280, "surface width")
		height = flag.Int("height", 640, "surface height")
		outDir = flag.String("out", ".", "output directory")
		seed   = flag.Int64("seed", 42, "randomize seed")
		dbPath = flag.String("db", defaultDBPath(), "sqlite state database")
	)
	flag.Parse()

	backdrop.SetLogger(slog.Default())

	ctx := context.Background()
	storage, err := backdrop.OpenSQLiteStorage(ctx, *dbPath)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}

	store := backdrop.New(backdrop.WithStorage(storage))
	store.Subscribe(func(s backdrop.BackgroundState) {
		log.Printf("state changed: type=%s css=%q", s.Type, backdrop.FillCSS(s))
	})

	// Seeded gradient: the same seed always reproduces this exact image.
	store.Randomize(*seed)
	render(store, *width, *height, filepath.Join(*outDir, "gradient.png"))

	store.SetSolidColor("#0EA5E9")
	store.SetType(backdrop.TypeSolid)
	render(store, *width, *height, filepath.Join(*outDir, "solid.png"))

	store.SetPattern(backdrop.PatternConfig{
		Name:     backdrop.PatternGrid,
		FG:       "#94A3B8",
		BG:       "#0F172A",
		Scale:    1.5,
		Rotation: 30,
		Opacity:  0.8,
	})
	store.SetType(backdrop.TypePattern)
	render(store, *width, *height, filepath.Join(*outDir, "pattern.png"))

	// Walk back to the gradient through undo.
	for store.CanUndo() {
		store.Undo()
	}
	log.Printf("after full undo: type=%s", store.Current().Type)
}

func render(store *backdrop.Store, w, h int, path string) {
	pm := backdrop.NewPixmap(w, h)
	backdrop.RenderBackground(pm, store.Current())
	if err := pm.SavePNG(path); err != nil {
		log.Fatalf("save %s: %v", path, err)
	}
	log.Printf("wrote %s (%dx%d)", path, w, h)
}

func defaultDBPath() string {
	if p := os.Getenv("BACKDROP_DB"); p != "" {
		return p
	}
	return filepath.Join(os.TempDir(), "backdrop", "state.db")
}
