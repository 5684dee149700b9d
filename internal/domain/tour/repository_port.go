// internal/domain/tour/repository_port.go
package tour

import "context"

// Repository is the outbound port for the tours collection.
type Repository interface {
	GetByID(ctx context.Context, id string) (Tour, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]Tour, error)
	// ListLatest returns the newest tours by created_at, capped at limit.
	ListLatest(ctx context.Context, limit int) ([]Tour, error)
	Create(ctx context.Context, t Tour) error
	UpdateMain(ctx context.Context, id string, upd MainUpdate) error
	// Delete removes the parent tour document only. Callers must remove the
	// detail sub-collection first (children-then-parent).
	Delete(ctx context.Context, id string) error
}

// DetailRepository is the outbound port for the tours_details sub-collection.
type DetailRepository interface {
	ListByTour(ctx context.Context, tourID string) ([]Detail, error)
	// IDs returns the current set of detail document keys under a tour.
	IDs(ctx context.Context, tourID string) ([]string, error)
	// CreateBatch writes details in one batch; document keys are generated.
	CreateBatch(ctx context.Context, tourID string, details []Detail) error
	Add(ctx context.Context, tourID string, d Detail) (string, error)
	Update(ctx context.Context, tourID, detailID string, d Detail) error
	Delete(ctx context.Context, tourID, detailID string) error
	// DeleteAll removes every detail under a tour, batched below the
	// provider's per-batch mutation cap.
	DeleteAll(ctx context.Context, tourID string) error
}

// IDAllocator hands out unique, monotonically increasing tour ids.
// Implementations must be safe under concurrent callers and must never
// return a value below MinTourID.
type IDAllocator interface {
	NextID(ctx context.Context) (int64, error)
}
