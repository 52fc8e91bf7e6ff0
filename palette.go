package backdrop

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Storage keys owned by the external palette/swatch subsystem. The engine
// only ever reads them; writes stay with that subsystem.
const (
	paletteRecentsKey = "palette.recents"
	paletteSavedKey   = "palette.saved"
	paletteActiveKey  = "palette.active"
)

// loadPalettes reads a palette snapshot from storage. Missing or
// unparsable keys yield empty slices; a snapshot is cache, never truth.
func loadPalettes(st Storage) PaletteState {
	var p PaletteState

	if raw, ok := st.Get(paletteRecentsKey); ok {
		_ = json.Unmarshal([]byte(raw), &p.Recents)
	}
	if raw, ok := st.Get(paletteSavedKey); ok {
		_ = json.Unmarshal([]byte(raw), &p.Saved)
	}
	if raw, ok := st.Get(paletteActiveKey); ok {
		_ = json.Unmarshal([]byte(raw), &p.Active)
	}

	return normalizePalettes(p)
}

// normalizePalettes enforces the capacity bounds and backfills ids for
// saved swatches persisted before ids existed.
func normalizePalettes(p PaletteState) PaletteState {
	if len(p.Recents) > MaxRecentColors {
		p.Recents = p.Recents[:MaxRecentColors]
	}
	if len(p.Saved) > MaxSavedSwatches {
		p.Saved = p.Saved[:MaxSavedSwatches]
	}
	for i := range p.Saved {
		if p.Saved[i].ID == "" {
			p.Saved[i].ID = uuid.NewString()
		}
	}
	return p
}
