package entities

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/preston-bernstein/pokemon-gateway/internal/providers"
	providersmock "github.com/preston-bernstein/pokemon-gateway/internal/providers/mock"
	"github.com/preston-bernstein/pokemon-gateway/internal/testutil"
)

func TestEntityFetchesThenTransforms(t *testing.T) {
	provider := &testutil.PayloadProvider{Payloads: map[string]string{"ditto": testutil.DittoPayload}}
	svc := NewService(provider)

	entity, err := svc.Entity(context.Background(), "ditto")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if entity.ID != 132 || entity.Name != "ditto" {
		t.Fatalf("unexpected entity %+v", entity)
	}
	if len(provider.Requested) != 1 || provider.Requested[0] != "ditto" {
		t.Fatalf("expected exactly one fetch for ditto, got %v", provider.Requested)
	}
}

func TestEntityPropagatesProviderErrors(t *testing.T) {
	svc := NewService(testutil.ErrProvider{Err: &providers.UnavailableError{Provider: "stub", Identifier: "ditto"}})

	_, err := svc.Entity(context.Background(), "ditto")
	if !errors.Is(err, providers.ErrUnavailable) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
}

func TestEntityReportsMalformedPayload(t *testing.T) {
	provider := &testutil.PayloadProvider{Payloads: map[string]string{"ditto": `{"id":132}`}}
	svc := NewService(provider)

	_, err := svc.Entity(context.Background(), "ditto")
	if !errors.Is(err, providers.ErrMalformedPayload) {
		t.Fatalf("expected malformed payload error, got %v", err)
	}
}

type ctxKey struct{}

func TestEntityPassesContextAndIdentifierThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := providersmock.NewMockEntityProvider(ctrl)

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
	provider.EXPECT().
		FetchEntity(ctx, "132").
		Return(providers.Payload(testutil.DittoPayload), nil).
		Times(1)

	entity, err := NewService(provider).Entity(ctx, "132")
	require.NoError(t, err)
	assert.Equal(t, "ditto", entity.Name)
	assert.Equal(t, []string{"limber"}, entity.Abilities)
}

func TestEntitySkipsTransformOnFetchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := providersmock.NewMockEntityProvider(ctrl)

	provider.EXPECT().
		FetchEntity(gomock.Any(), "missingno").
		Return(nil, &providers.StatusError{Provider: "stub", Identifier: "missingno", StatusCode: 404})

	entity, err := NewService(provider).Entity(context.Background(), "missingno")
	require.ErrorIs(t, err, providers.ErrNotFound)
	assert.Zero(t, entity.ID)
}
