package providers

import "context"

// Payload is the raw upstream response body. Its shape is owned by the
// upstream service and is only interpreted by the transformer.
type Payload []byte

//go:generate mockgen -destination=mock/mock_provider.go -package=providersmock github.com/preston-bernstein/pokemon-gateway/internal/providers EntityProvider

// EntityProvider fetches the upstream representation of a single entity.
// The identifier is either a name or a numeric id; providers do not validate its form.
type EntityProvider interface {
	FetchEntity(ctx context.Context, identifier string) (Payload, error)
}
