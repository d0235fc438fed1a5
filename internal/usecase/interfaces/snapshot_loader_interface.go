package interfaces

import (
	"clinica_finanzas/internal/domain/entities"
	"context"
)

// ISnapshotLoader fetches the seed snapshot delivered at startup.
type ISnapshotLoader interface {
	Load(ctx context.Context) (entities.Snapshot, error)
}
