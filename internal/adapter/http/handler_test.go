package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"testing"
	"time"

	fielddatamock "farmatro/internal/adapter/fielddata/mock"
	metricsinmem "farmatro/internal/adapter/metrics/inmemory"
	"farmatro/internal/app/observe"
	"farmatro/internal/app/play"
	"farmatro/internal/app/ports"
	"farmatro/internal/app/replay"
	"farmatro/internal/app/session"
	"farmatro/internal/domain/farm"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type fakeGameRepo struct {
	games map[string]farm.GameAggregate
}

func newFakeGameRepo() *fakeGameRepo {
	return &fakeGameRepo{games: map[string]farm.GameAggregate{}}
}

func (f *fakeGameRepo) GetByID(_ context.Context, gameID string) (farm.GameAggregate, error) {
	g, ok := f.games[gameID]
	if !ok {
		return farm.GameAggregate{}, ports.ErrNotFound
	}
	return g, nil
}

func (f *fakeGameRepo) SaveWithVersion(_ context.Context, game farm.GameAggregate, expectedVersion int64) error {
	current, ok := f.games[game.GameID]
	if ok && current.Version != expectedVersion {
		return ports.ErrConflict
	}
	f.games[game.GameID] = game
	return nil
}

type fakeEventRepo struct {
	events map[string][]farm.DomainEvent
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[string][]farm.DomainEvent{}}
}

func (f *fakeEventRepo) Append(_ context.Context, gameID string, events []farm.DomainEvent) error {
	f.events[gameID] = append(f.events[gameID], events...)
	return nil
}

func (f *fakeEventRepo) ListByGameID(_ context.Context, gameID string, limit int) ([]farm.DomainEvent, error) {
	evs := f.events[gameID]
	if limit > 0 && len(evs) > limit {
		evs = evs[len(evs)-limit:]
	}
	return evs, nil
}

type fakeTxManager struct{}

func (fakeTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testHandler() (Handler, *fakeGameRepo, *fakeEventRepo) {
	gameRepo := newFakeGameRepo()
	eventRepo := newFakeEventRepo()
	rounds := farm.NewRoundService(rand.New(rand.NewSource(1)))
	fieldData := &fielddatamock.Provider{}

	h := Handler{
		StartUC: session.StartUseCase{
			TxManager: fakeTxManager{},
			GameRepo:  gameRepo,
			EventRepo: eventRepo,
			FieldData: fieldData,
			Rounds:    rounds,
			Location:  ports.Location{Lat: -9.3963, Lon: -40.5121, Name: "Northeast Brazil"},
			Now:       func() time.Time { return time.Unix(1700000000, 0).UTC() },
		},
		ReadingsUC: session.ReadingsUseCase{
			FieldData: fieldData,
			Location:  ports.Location{Name: "Northeast Brazil"},
		},
		ObserveUC: observe.UseCase{GameRepo: gameRepo},
		PlayUC: play.UseCase{
			TxManager: fakeTxManager{},
			GameRepo:  gameRepo,
			EventRepo: eventRepo,
			Metrics:   metricsinmem.NewRecorder(),
			Rounds:    rounds,
			Now:       func() time.Time { return time.Unix(1700000000, 0).UTC() },
		},
		ReplayUC: replay.UseCase{Events: eventRepo},
	}
	return h, gameRepo, eventRepo
}

func TestStart_CreatesGame(t *testing.T) {
	h, gameRepo, eventRepo := testHandler()
	ctx := &app.RequestContext{}

	h.start(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusCreated; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body session.StartResponse
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Game.GameID == "" {
		t.Fatalf("expected generated game id")
	}
	if body.Game.Phase != farm.PhaseSelecting {
		t.Fatalf("phase mismatch: got=%q", body.Game.Phase)
	}
	if len(body.Game.Hand) != farm.HandSize {
		t.Fatalf("hand size mismatch: got=%d want=%d", len(body.Game.Hand), farm.HandSize)
	}
	if body.Seed.SoilMoisture != 45 || body.Seed.Temperature != 28 {
		t.Fatalf("seed mismatch: %+v", body.Seed)
	}
	if _, ok := gameRepo.games[body.Game.GameID]; !ok {
		t.Fatalf("game not persisted")
	}
	evs := eventRepo.events[body.Game.GameID]
	if len(evs) != 1 || evs[0].Type != "season_started" {
		t.Fatalf("unexpected events: %+v", evs)
	}
}

func TestObserve_MissingGameID(t *testing.T) {
	h, _, _ := testHandler()
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{}`))

	h.observe(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if got, want := errorCode(t, ctx), "bad_request"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestObserve_UnknownGame(t *testing.T) {
	h, _, _ := testHandler()
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"game_id":"missing"}`))

	h.observe(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusNotFound; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if got, want := errorCode(t, ctx), "not_found"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestAction_UnknownIntentType(t *testing.T) {
	h, _, _ := testHandler()
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"game_id":"g1","intent":{"type":"teleport"}}`))

	h.action(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if got, want := errorCode(t, ctx), "bad_request"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestAction_WrongPhase(t *testing.T) {
	h, gameRepo, _ := testHandler()
	gameRepo.games["g1"] = farm.GameAggregate{
		GameID:  "g1",
		Phase:   farm.PhaseResults,
		Version: 3,
	}
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"game_id":"g1","intent":{"type":"play","card_instance_ids":["i1"]}}`))

	h.action(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusConflict; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if got, want := errorCode(t, ctx), "wrong_phase"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestAction_CardNotInHand(t *testing.T) {
	h, gameRepo, _ := testHandler()
	gameRepo.games["g1"] = farm.GameAggregate{
		GameID:  "g1",
		Phase:   farm.PhaseSelecting,
		Version: 1,
	}
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"game_id":"g1","intent":{"type":"play","card_instance_ids":["nope"]}}`))

	h.action(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if got, want := errorCode(t, ctx), "invalid_selection"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestReplay_MissingGameID(t *testing.T) {
	h, _, _ := testHandler()
	ctx := &app.RequestContext{}
	ctx.Request.SetRequestURI("/api/game/replay")

	h.replay(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
}

func TestReplay_ReturnsEvents(t *testing.T) {
	h, _, eventRepo := testHandler()
	eventRepo.events["g1"] = []farm.DomainEvent{
		{Type: "season_started", OccurredAt: time.Unix(1700000000, 0).UTC(), Payload: map[string]any{"game_id": "g1"}},
	}
	ctx := &app.RequestContext{}
	ctx.Request.SetRequestURI("/api/game/replay?game_id=g1&limit=10")

	h.replay(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body replay.Response
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(body.Events) != 1 || body.Events[0].Type != "season_started" {
		t.Fatalf("unexpected events: %+v", body.Events)
	}
}

func TestFieldReadings_OK(t *testing.T) {
	h, _, _ := testHandler()
	ctx := &app.RequestContext{}

	h.fieldReadings(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body session.ReadingsResponse
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Seed.SoilMoisture != 45 || body.Seed.CropHealth != 0.2 {
		t.Fatalf("seed mismatch: %+v", body.Seed)
	}
}

func TestKPI_NotConfigured(t *testing.T) {
	h := Handler{}
	ctx := &app.RequestContext{}

	h.kpi(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusNotFound; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
}

func TestWriteError_DiscardLimitReached(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, farm.ErrDiscardLimitReached)

	if got, want := ctx.Response.StatusCode(), consts.StatusConflict; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if got, want := errorCode(t, ctx), "discard_limit_reached"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestWriteError_Conflict(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, ports.ErrConflict)

	if got, want := ctx.Response.StatusCode(), consts.StatusConflict; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if got, want := errorCode(t, ctx), "conflict"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestWriteError_Unknown(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, errors.New("boom"))

	if got, want := ctx.Response.StatusCode(), consts.StatusInternalServerError; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if got, want := errorCode(t, ctx), "internal_error"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func errorCode(t *testing.T, ctx *app.RequestContext) string {
	t.Helper()
	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal error body: %v", err)
	}
	return body["error"]["code"]
}
