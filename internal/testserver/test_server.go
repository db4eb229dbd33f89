package testserver

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/liftlog/internal/domain/activity"
	"github.com/rpggio/liftlog/internal/domain/plan"
	"github.com/rpggio/liftlog/internal/domain/stats"
	"github.com/rpggio/liftlog/internal/domain/workout"
	"github.com/rpggio/liftlog/internal/mcp"
	"github.com/rpggio/liftlog/internal/sqlite"
	"github.com/rpggio/liftlog/internal/transport"
	"github.com/stretchr/testify/require"
)

// Today is the fixed clock used by servers built here.
var Today = time.Date(2024, time.March, 6, 12, 0, 0, 0, time.UTC)

type TestServer struct {
	Server   *httptest.Server
	DB       *sqlite.DB
	Store    *workout.Store
	Services mcp.Services
}

// NewServices wires domain services over a fresh in-memory database.
func NewServices(t *testing.T) (mcp.Services, *workout.Store, *sqlite.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { _ = db.Close() })

	entryRepo := sqlite.NewEntryRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)

	store := workout.NewStore(entryRepo, nil)
	require.NoError(t, store.Load(context.Background()))

	workoutSvc := workout.NewService(store, activityRepo, workout.Options{
		Catalog:       plan.Default(),
		BaseExercises: []string{"Bench Press", "Squat", "Deadlift"},
		Now:           func() time.Time { return Today },
	}, nil)

	return mcp.Services{
		Workouts: workoutSvc,
		Stats:    stats.NewService(store, 4, nil),
		Activity: activity.NewService(activityRepo, nil),
	}, store, db
}

// New starts an HTTP server exposing /rpc and the streamable /mcp endpoint.
func New(t *testing.T) *TestServer {
	t.Helper()

	services, store, db := NewServices(t)

	mcpServer := mcp.NewServer(mcp.Config{
		Services:      services,
		TransportMode: "http",
	})
	streamable := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{Stateless: false},
	)

	server := httptest.NewServer(transport.NewServer(mcp.NewHandler(services), streamable, nil))
	t.Cleanup(server.Close)

	return &TestServer{
		Server:   server,
		DB:       db,
		Store:    store,
		Services: services,
	}
}
