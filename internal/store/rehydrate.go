package store

import (
	"encoding/json"

	"github.com/immortalfoodie/Ecosphere/internal/model"
	"github.com/immortalfoodie/Ecosphere/internal/seed"
)

// Rehydrate builds a state from a persisted payload. The payload is
// unmarshalled onto a fresh seed so absent fields keep their seed value, and
// the three catalogs are then forced back to the code-defined definitions —
// a stored snapshot is never trusted for catalog data. Empty or corrupt
// payloads yield the plain seed.
func Rehydrate(payload []byte) model.EcosphereState {
	st := seed.State()
	if len(payload) == 0 {
		return st
	}
	if err := json.Unmarshal(payload, &st); err != nil {
		return seed.State()
	}
	st.Events = seed.Events()
	st.ScannerProducts = seed.ScannerProducts()
	st.StoreProducts = seed.StoreProducts()
	return st
}
