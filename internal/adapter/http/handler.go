package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"farmatro/internal/app/observe"
	"farmatro/internal/app/play"
	"farmatro/internal/app/ports"
	"farmatro/internal/app/replay"
	"farmatro/internal/app/session"
	"farmatro/internal/domain/farm"
)

type Handler struct {
	StartUC    session.StartUseCase
	ReadingsUC session.ReadingsUseCase
	ObserveUC  observe.UseCase
	PlayUC     play.UseCase
	ReplayUC   replay.UseCase
	KPI        kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	game := s.Group("/api/game")
	game.POST("/start", h.start)
	game.POST("/observe", h.observe)
	game.POST("/action", h.action)
	game.GET("/replay", h.replay)

	s.GET("/api/field/readings", h.fieldReadings)
	s.GET("/ops/kpi", h.kpi)
}

type startRequest struct {
	GameID string `json:"game_id,omitempty"`
}

type observeRequest struct {
	GameID string `json:"game_id"`
}

type actionRequest struct {
	GameID string       `json:"game_id"`
	Intent actionIntent `json:"intent"`
}

type actionIntent struct {
	Type            string   `json:"type"`
	CardInstanceIDs []string `json:"card_instance_ids,omitempty"`
}

func (h Handler) start(c context.Context, ctx *app.RequestContext) {
	var body startRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.StartUC.Execute(c, session.StartRequest{GameID: body.GameID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) observe(c context.Context, ctx *app.RequestContext) {
	var body observeRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.ObserveUC.Execute(c, observe.Request{GameID: body.GameID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) action(c context.Context, ctx *app.RequestContext) {
	var body actionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.PlayUC.Execute(c, play.Request{
		GameID: body.GameID,
		Intent: play.Intent{
			Type:            play.IntentType(body.Intent.Type),
			CardInstanceIDs: body.Intent.CardInstanceIDs,
		},
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	gameID := string(ctx.Query("game_id"))
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	occurredFrom, _ := strconv.ParseInt(string(ctx.Query("occurred_from")), 10, 64)
	occurredTo, _ := strconv.ParseInt(string(ctx.Query("occurred_to")), 10, 64)

	resp, err := h.ReplayUC.Execute(c, replay.Request{
		GameID:       gameID,
		Limit:        limit,
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) fieldReadings(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ReadingsUC.Execute(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, farm.ErrWrongPhase):
		writeErrorBody(ctx, consts.StatusConflict, "wrong_phase", err.Error())
	case errors.Is(err, farm.ErrDiscardLimitReached):
		writeErrorBody(ctx, consts.StatusConflict, "discard_limit_reached", err.Error())
	case errors.Is(err, farm.ErrNoCardsSelected),
		errors.Is(err, farm.ErrTooManyCards),
		errors.Is(err, farm.ErrCardNotInHand):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_selection", err.Error())
	case errors.Is(err, play.ErrInvalidRequest),
		errors.Is(err, observe.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
