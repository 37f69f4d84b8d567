package vehicles

import "context"

// Repository owns the persisted vehicle collection. The engine always
// reads the full snapshot, computes, and writes the full snapshot back;
// there is no row-level persistence.
type Repository interface {
	ReadAll(ctx context.Context) ([]Vehicle, error)
	WriteAll(ctx context.Context, fleet []Vehicle) error
	ResetFromSeed(ctx context.Context) error
}
