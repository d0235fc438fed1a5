package seed

import (
	"bytes"
	"clinica_finanzas/internal/domain/entities"
	"clinica_finanzas/internal/usecase/interfaces"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"
)

//go:embed data/seed.json
var defaultSeed []byte

// JSONSnapshotLoader reads the startup snapshot from a JSON document.
//
// The snapshot stands in for the upstream fetch, so Load waits for the
// configured latency before returning, unless the context ends first.
type JSONSnapshotLoader struct {
	path    string
	latency time.Duration
}

var _ interfaces.ISnapshotLoader = (*JSONSnapshotLoader)(nil)

// NewJSONSnapshotLoader reads path, or the embedded default seed when path is empty.
func NewJSONSnapshotLoader(path string, latency time.Duration) *JSONSnapshotLoader {
	return &JSONSnapshotLoader{path: path, latency: latency}
}

func (l *JSONSnapshotLoader) Load(ctx context.Context) (entities.Snapshot, error) {
	source := "embedded"
	raw := defaultSeed
	if l.path != "" {
		source = l.path
		b, err := os.ReadFile(l.path)
		if err != nil {
			return entities.Snapshot{}, fmt.Errorf("read seed %s: %w", l.path, err)
		}
		raw = b
	}

	if l.latency > 0 {
		timer := time.NewTimer(l.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return entities.Snapshot{}, ctx.Err()
		case <-timer.C:
		}
	}

	var snap entities.Snapshot
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&snap); err != nil {
		return entities.Snapshot{}, fmt.Errorf("decode seed %s: %w", source, err)
	}
	log.Printf("[seed][loader] loaded source=%s patients=%d companies=%d methods=%d types=%d payments=%d",
		source, len(snap.Patients), len(snap.Companies), len(snap.PaymentMethods), len(snap.PaymentTypes), len(snap.Payments))
	return snap, nil
}
