package profile

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/contracts"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/payload"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/sessions"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/usecases/load_profile"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/usecases/save_profile"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/wire"
	"github.com/light-bringer/partner-profile-service/internal/pkg/clock"
	"github.com/light-bringer/partner-profile-service/internal/transport/taskapi"
)

type fakeGateway struct {
	mu       sync.Mutex
	fetchErr error
	saveErr  error
	updates  []*contracts.UpdateRequest
}

func (g *fakeGateway) FetchProfile(_ context.Context, partnerID, _ string) (wire.Object, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.fetchErr != nil {
		return nil, g.fetchErr
	}
	return wire.Object{
		wire.PartnerID: partnerID,
		wire.BasicInfo: map[string]any{wire.Name: "Sam"},
		wire.Goals:     []any{"casual"},
		wire.Hobbies:   []any{"hiking", "reading"},
	}, nil
}

func (g *fakeGateway) SubmitUpdate(_ context.Context, req *contracts.UpdateRequest) (*contracts.TaskStatus, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.saveErr != nil {
		return nil, g.saveErr
	}
	g.updates = append(g.updates, req)
	return &contracts.TaskStatus{TaskID: "task-1", Status: "completed"}, nil
}

type fixture struct {
	gateway  *fakeGateway
	registry *sessions.Registry
	client   *Client
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := zap.NewNop()
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	gateway := &fakeGateway{}
	registry := sessions.NewRegistry(time.Hour, clk, logger)
	handler := NewHandler(
		registry,
		load_profile.NewInteractor(gateway, logger),
		save_profile.NewInteractor(gateway, payload.FullMerge{}, nil, nil, nil, clk, logger),
		logger,
	)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	RegisterSessionServiceServer(srv, handler)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &fixture{gateway: gateway, registry: registry, client: NewClient(conn)}
}

func (f *fixture) call(t *testing.T, method string, in map[string]any) (map[string]any, error) {
	t.Helper()
	req, err := structpb.NewStruct(in)
	require.NoError(t, err)
	out, err := f.client.Call(context.Background(), method, req)
	if err != nil {
		return nil, err
	}
	return out.AsMap(), nil
}

func (f *fixture) open(t *testing.T) string {
	t.Helper()
	out, err := f.call(t, "OpenSession", map[string]any{"partner_id": "p-1", "user_id": "u-1"})
	require.NoError(t, err)
	return out["session_id"].(string)
}

func TestHandler_OpenSession(t *testing.T) {
	f := newFixture(t)

	out, err := f.call(t, "OpenSession", map[string]any{"partner_id": "p-1", "user_id": "u-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, out["session_id"])
	assert.Equal(t, "ready", out["status"])
	assert.Equal(t, false, out["has_unsaved_changes"])

	draft := out["draft"].(map[string]any)
	assert.Equal(t, "p-1", draft["partner_id"])
	assert.Equal(t, []any{"casual"}, draft["goals"])
	assert.Equal(t, 1, f.registry.Len())
}

func TestHandler_OpenSessionErrors(t *testing.T) {
	t.Run("missing user", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.call(t, "OpenSession", map[string]any{"partner_id": "p-1"})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("remote failure closes session", func(t *testing.T) {
		f := newFixture(t)
		f.gateway.fetchErr = taskapi.ErrTaskFailed
		_, err := f.call(t, "OpenSession", map[string]any{"partner_id": "p-1", "user_id": "u-1"})
		assert.Equal(t, codes.Unavailable, status.Code(err))
		assert.Equal(t, 0, f.registry.Len())
	})
}

func TestHandler_EditDiffResetFlow(t *testing.T) {
	f := newFixture(t)
	id := f.open(t)

	out, err := f.call(t, "UpdateField", map[string]any{
		"session_id": id, "field": "goals", "value": []any{"Long-term", "bogus"},
	})
	require.NoError(t, err)
	assert.Equal(t, "dirty", out["status"])
	assert.Equal(t, []any{"long_term"}, out["draft"].(map[string]any)["goals"])
	assert.Contains(t, out["touched_fields"], "goals")

	diff, err := f.call(t, "DiffSession", map[string]any{"session_id": id})
	require.NoError(t, err)
	assert.Equal(t, []any{"goals", "goalsIsAiGenerated"}, diff["changed_fields"])
	changes := diff["changes"].(map[string]any)
	assert.Equal(t, []any{"long_term"}, changes["goals"])
	assert.Equal(t, false, changes["goals_is_ai_generated"])
	assert.Equal(t, "p-1", changes["partner_id"])

	out, err = f.call(t, "ResetSession", map[string]any{"session_id": id})
	require.NoError(t, err)
	assert.Equal(t, "ready", out["status"])
	assert.Equal(t, []any{"casual"}, out["draft"].(map[string]any)["goals"])
}

func TestHandler_UpdateFieldErrors(t *testing.T) {
	f := newFixture(t)
	id := f.open(t)

	tests := []struct {
		name string
		in   map[string]any
		code codes.Code
	}{
		{"unknown session", map[string]any{"session_id": "nope", "field": "goals", "value": []any{}}, codes.NotFound},
		{"unknown field", map[string]any{"session_id": id, "field": "shoeSize", "value": 42.0}, codes.InvalidArgument},
		{"read-only field", map[string]any{"session_id": id, "field": "id", "value": "x"}, codes.InvalidArgument},
		{"missing value", map[string]any{"session_id": id, "field": "goals"}, codes.InvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.call(t, "UpdateField", tt.in)
			assert.Equal(t, tt.code, status.Code(err))
		})
	}
}

func TestHandler_SaveSession(t *testing.T) {
	f := newFixture(t)
	id := f.open(t)

	_, err := f.call(t, "UpdateField", map[string]any{"session_id": id, "field": "hobbies", "value": []any{"yoga"}})
	require.NoError(t, err)

	t.Run("rejected save keeps draft", func(t *testing.T) {
		f.gateway.mu.Lock()
		f.gateway.saveErr = errors.Join(taskapi.ErrUnexpectedStatus, errors.New("503"))
		f.gateway.mu.Unlock()

		_, err := f.call(t, "SaveSession", map[string]any{"session_id": id})
		assert.Equal(t, codes.Unavailable, status.Code(err))

		out, err := f.call(t, "GetSession", map[string]any{"session_id": id})
		require.NoError(t, err)
		assert.Equal(t, "dirty", out["status"])
		assert.NotEmpty(t, out["last_error"])
	})

	t.Run("retry succeeds", func(t *testing.T) {
		f.gateway.mu.Lock()
		f.gateway.saveErr = nil
		f.gateway.mu.Unlock()

		out, err := f.call(t, "SaveSession", map[string]any{"session_id": id})
		require.NoError(t, err)
		assert.Equal(t, true, out["saved"])
		assert.Equal(t, "task-1", out["task_id"])
		assert.Equal(t, []any{"hobbies", "hobbiesIsAiGenerated"}, out["changed_fields"])
		assert.Equal(t, "ready", out["status"])
		assert.Equal(t, "", out["last_error"])

		require.Len(t, f.gateway.updates, 1)
		assert.Equal(t, "p-1", f.gateway.updates[0].PartnerID)
		assert.Equal(t, "u-1", f.gateway.updates[0].UserID)
	})

	t.Run("nothing to save", func(t *testing.T) {
		out, err := f.call(t, "SaveSession", map[string]any{"session_id": id})
		require.NoError(t, err)
		assert.Equal(t, false, out["saved"])
	})
}

func TestHandler_CloseSession(t *testing.T) {
	f := newFixture(t)
	id := f.open(t)

	_, err := f.call(t, "UpdateField", map[string]any{"session_id": id, "field": "name", "value": "Alex"})
	require.NoError(t, err)

	out, err := f.call(t, "CloseSession", map[string]any{"session_id": id})
	require.NoError(t, err)
	assert.Equal(t, true, out["closed"])
	assert.Equal(t, 0, f.registry.Len())

	_, err = f.call(t, "GetSession", map[string]any{"session_id": id})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestMapDomainErrorToGRPC(t *testing.T) {
	assert.NoError(t, mapDomainErrorToGRPC(nil))
	assert.Equal(t, codes.Internal, status.Code(mapDomainErrorToGRPC(errors.New("boom"))))
	assert.Equal(t, codes.DeadlineExceeded, status.Code(mapDomainErrorToGRPC(context.DeadlineExceeded)))
}
