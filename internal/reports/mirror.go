package reports

import "context"

// Mirror is the durable side of the report store. Writes are wholesale:
// every mutation rewrites the entire collection and the last writer wins,
// which is accepted for the single-user deployment target.
type Mirror interface {
	LoadAll(ctx context.Context) ([]Report, error)
	SaveAll(ctx context.Context, reports []Report) error
}
