package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"farmstead/internal/app/farming"
	"farmstead/internal/app/inventory"
	"farmstead/internal/app/journal"
	"farmstead/internal/app/player"
	"farmstead/internal/app/ports"
	"farmstead/internal/domain/farm"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const playerIDHeader = "X-Player-ID"

type Handler struct {
	FarmingUC   farming.UseCase
	InventoryUC inventory.UseCase
	PlayerUC    player.UseCase
	JournalUC   journal.UseCase
	KPI         kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	farmGroup := s.Group("/api/farm")
	farmGroup.POST("/plow", h.plow)
	farmGroup.POST("/water", h.water)
	farmGroup.POST("/plant", h.plant)
	farmGroup.POST("/harvest", h.harvest)
	farmGroup.POST("/day", h.advanceDay)
	farmGroup.GET("/tile", h.tile)

	inv := s.Group("/api/inventory")
	inv.GET("", h.inventoryList)
	inv.GET("/item", h.inventoryQuery)
	inv.POST("/add", h.inventoryAdd)
	inv.POST("/remove", h.inventoryRemove)

	playerGroup := s.Group("/api/player")
	playerGroup.GET("", h.playerGet)
	playerGroup.POST("/earn", h.playerEarn)
	playerGroup.POST("/spend", h.playerSpend)

	s.GET("/api/journal", h.journal)
	s.GET("/ops/kpi", h.kpi)
}

type tileActionBody struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type plantBody struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	CropID string `json:"crop_id"`
}

type advanceBody struct {
	Days int `json:"days"`
}

type itemBody struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type moneyBody struct {
	Amount int `json:"amount"`
}

func (h Handler) plow(c context.Context, ctx *app.RequestContext) {
	playerID, ok := requirePlayerID(ctx)
	if !ok {
		return
	}
	var body tileActionBody
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.FarmingUC.Plow(c, farming.ActionRequest{PlayerID: playerID, X: body.X, Y: body.Y})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) water(c context.Context, ctx *app.RequestContext) {
	playerID, ok := requirePlayerID(ctx)
	if !ok {
		return
	}
	var body tileActionBody
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.FarmingUC.Water(c, farming.ActionRequest{PlayerID: playerID, X: body.X, Y: body.Y})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) plant(c context.Context, ctx *app.RequestContext) {
	playerID, ok := requirePlayerID(ctx)
	if !ok {
		return
	}
	var body plantBody
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.FarmingUC.Plant(c, farming.PlantRequest{PlayerID: playerID, X: body.X, Y: body.Y, CropID: body.CropID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) harvest(c context.Context, ctx *app.RequestContext) {
	playerID, ok := requirePlayerID(ctx)
	if !ok {
		return
	}
	var body tileActionBody
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.FarmingUC.Harvest(c, farming.ActionRequest{PlayerID: playerID, X: body.X, Y: body.Y})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) advanceDay(c context.Context, ctx *app.RequestContext) {
	var body advanceBody
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if body.Days == 0 {
		body.Days = 1
	}
	resp, err := h.FarmingUC.AdvanceDays(c, farming.AdvanceRequest{Days: body.Days})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) tile(c context.Context, ctx *app.RequestContext) {
	x, errX := strconv.Atoi(string(ctx.Query("x")))
	y, errY := strconv.Atoi(string(ctx.Query("y")))
	if errX != nil || errY != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_position", "x and y query params are required")
		return
	}
	resp, err := h.FarmingUC.Tile(c, farming.TileRequest{X: x, Y: y})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) inventoryList(c context.Context, ctx *app.RequestContext) {
	playerID, ok := requirePlayerID(ctx)
	if !ok {
		return
	}
	resp, err := h.InventoryUC.List(c, playerID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) inventoryQuery(c context.Context, ctx *app.RequestContext) {
	playerID, ok := requirePlayerID(ctx)
	if !ok {
		return
	}
	resp, err := h.InventoryUC.Query(c, inventory.QueryRequest{
		PlayerID: playerID,
		ItemID:   string(ctx.Query("item_id")),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) inventoryAdd(c context.Context, ctx *app.RequestContext) {
	playerID, ok := requirePlayerID(ctx)
	if !ok {
		return
	}
	var body itemBody
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.InventoryUC.Add(c, inventory.MutateRequest{PlayerID: playerID, ItemID: body.ItemID, Quantity: body.Quantity})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) inventoryRemove(c context.Context, ctx *app.RequestContext) {
	playerID, ok := requirePlayerID(ctx)
	if !ok {
		return
	}
	var body itemBody
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.InventoryUC.Remove(c, inventory.MutateRequest{PlayerID: playerID, ItemID: body.ItemID, Quantity: body.Quantity})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) playerGet(c context.Context, ctx *app.RequestContext) {
	playerID, ok := requirePlayerID(ctx)
	if !ok {
		return
	}
	resp, err := h.PlayerUC.Get(c, playerID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) playerEarn(c context.Context, ctx *app.RequestContext) {
	playerID, ok := requirePlayerID(ctx)
	if !ok {
		return
	}
	var body moneyBody
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.PlayerUC.EarnMoney(c, player.MoneyRequest{PlayerID: playerID, Amount: body.Amount})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) playerSpend(c context.Context, ctx *app.RequestContext) {
	playerID, ok := requirePlayerID(ctx)
	if !ok {
		return
	}
	var body moneyBody
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.PlayerUC.SpendMoney(c, player.MoneyRequest{PlayerID: playerID, Amount: body.Amount})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) journal(c context.Context, ctx *app.RequestContext) {
	playerID, ok := requirePlayerID(ctx)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	resp, err := h.JournalUC.Execute(c, journal.Request{PlayerID: playerID, Limit: limit})
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

func requirePlayerID(ctx *app.RequestContext) (string, bool) {
	playerID := strings.TrimSpace(string(ctx.GetHeader(playerIDHeader)))
	if playerID == "" {
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_player_id", "missing x-player-id header")
		return "", false
	}
	return playerID, true
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
	case errors.Is(err, farming.ErrInvalidRequest),
		errors.Is(err, inventory.ErrInvalidRequest),
		errors.Is(err, player.ErrInvalidRequest),
		errors.Is(err, journal.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, farming.ErrActionNotAllowed):
		writeErrorBody(ctx, consts.StatusConflict, "action_not_allowed", err.Error())
	case errors.Is(err, farming.ErrNoNextState):
		writeErrorBody(ctx, consts.StatusConflict, "no_next_state", err.Error())
	case errors.Is(err, inventory.ErrInventoryFull):
		writeErrorBody(ctx, consts.StatusConflict, "inventory_full", err.Error())
	case errors.Is(err, inventory.ErrNotEnoughItems):
		writeErrorBody(ctx, consts.StatusConflict, "not_enough_items", err.Error())
	case errors.Is(err, farm.ErrInsufficientFunds):
		writeErrorBody(ctx, consts.StatusConflict, "insufficient_funds", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	case errors.Is(err, farming.ErrCatalogUnavailable),
		errors.Is(err, inventory.ErrCatalogUnavailable):
		writeErrorBody(ctx, consts.StatusServiceUnavailable, "catalog_unavailable", err.Error())
	case errors.Is(err, farming.ErrBaselineStateMissing):
		writeErrorBody(ctx, consts.StatusInternalServerError, "invalid_state", err.Error())
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
