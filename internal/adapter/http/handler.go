package httpadapter

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"horsekeep/internal/app/game"
	"horsekeep/internal/domain/horse"
)

// Handler exposes the game core to the browser client. Precondition
// rejections are 200 responses carrying ok=false and a reason code, never
// transport errors.
type Handler struct {
	Game *game.Orchestrator
	KPI  kpiSnapshotProvider
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api/game")
	api.GET("/state", h.state)
	api.POST("/feed", h.feed)
	api.POST("/groom", h.groom)
	api.POST("/pet", h.pet)
	api.POST("/tool", h.selectTool)
	api.GET("/shop", h.shop)
	api.POST("/shop/purchase", h.purchase)
	api.POST("/gift/spawn", h.spawnGift)
	api.POST("/gift/claim", h.claimGift)
	api.POST("/reset", h.reset)
	api.POST("/locale", h.setLocale)

	s.GET("/ops/kpi", h.kpi)
}

type actionResponse struct {
	OK     bool           `json:"ok"`
	Reason string         `json:"reason,omitempty"`
	Reward *horse.Reward  `json:"reward,omitempty"`
	State  game.StateView `json:"state"`
}

func (h Handler) state(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.Game.View())
}

func (h Handler) feed(c context.Context, ctx *app.RequestContext) {
	ok := h.Game.Feed(c)
	view := h.Game.View()
	resp := actionResponse{OK: ok, State: view}
	if !ok {
		resp.Reason = feedRejectReason(view)
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) groom(c context.Context, ctx *app.RequestContext) {
	ok := h.Game.Groom(c)
	view := h.Game.View()
	resp := actionResponse{OK: ok, State: view}
	if !ok {
		resp.Reason = careRejectReason(view, "no_brush_uses")
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) pet(c context.Context, ctx *app.RequestContext) {
	ok := h.Game.Pet(c)
	view := h.Game.View()
	resp := actionResponse{OK: ok, State: view}
	if !ok {
		resp.Reason = careRejectReason(view, "cooldown")
	}
	ctx.JSON(consts.StatusOK, resp)
}

type toolRequest struct {
	Tool string `json:"tool"`
}

func (h Handler) selectTool(_ context.Context, ctx *app.RequestContext) {
	var body toolRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeBadRequest(ctx, "invalid json")
		return
	}
	tool := horse.Tool(body.Tool)
	if tool != horse.ToolCarrot && tool != horse.ToolBrush && tool != horse.ToolNone {
		writeBadRequest(ctx, "unknown tool")
		return
	}
	selected := h.Game.SelectTool(tool)
	ctx.JSON(consts.StatusOK, map[string]any{
		"selected_tool": selected,
		"state":         h.Game.View(),
	})
}

func (h Handler) shop(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{"items": horse.Catalog()})
}

type purchaseRequest struct {
	ItemID string `json:"item_id"`
}

func (h Handler) purchase(c context.Context, ctx *app.RequestContext) {
	var body purchaseRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeBadRequest(ctx, "invalid json")
		return
	}
	ok := h.Game.PurchaseItem(c, body.ItemID)
	view := h.Game.View()
	resp := actionResponse{OK: ok, State: view}
	if !ok {
		if _, known := horse.CatalogItem(body.ItemID); !known {
			resp.Reason = "unknown_item"
		} else if view.GameOver {
			resp.Reason = "game_over"
		} else {
			resp.Reason = "insufficient_funds"
		}
	}
	ctx.JSON(consts.StatusOK, resp)
}

type spawnGiftRequest struct {
	Position horse.Position `json:"position"`
}

func (h Handler) spawnGift(c context.Context, ctx *app.RequestContext) {
	var body spawnGiftRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeBadRequest(ctx, "invalid json")
		return
	}
	gift := h.Game.SpawnGiftBox(c, body.Position)
	resp := map[string]any{"ok": gift != nil, "state": h.Game.View()}
	if gift != nil {
		resp["gift"] = gift
	} else {
		resp["reason"] = "gift_cap_reached"
	}
	ctx.JSON(consts.StatusOK, resp)
}

type claimGiftRequest struct {
	GiftID string `json:"gift_id"`
}

func (h Handler) claimGift(c context.Context, ctx *app.RequestContext) {
	var body claimGiftRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeBadRequest(ctx, "invalid json")
		return
	}
	reward := h.Game.ClaimGiftBox(c, body.GiftID)
	resp := actionResponse{OK: reward != nil, Reward: reward, State: h.Game.View()}
	if reward == nil {
		resp.Reason = "unknown_gift"
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) reset(c context.Context, ctx *app.RequestContext) {
	h.Game.ResetGame(c)
	ctx.JSON(consts.StatusOK, actionResponse{OK: true, State: h.Game.View()})
}

type localeRequest struct {
	Language string `json:"language"`
}

func (h Handler) setLocale(c context.Context, ctx *app.RequestContext) {
	var body localeRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeBadRequest(ctx, "invalid json")
		return
	}
	if body.Language == "" {
		writeBadRequest(ctx, "language required")
		return
	}
	h.Game.SetLanguage(c, body.Language)
	ctx.JSON(consts.StatusOK, actionResponse{OK: true, State: h.Game.View()})
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		ctx.JSON(consts.StatusNotFound, map[string]any{"error": "kpi recorder not configured"})
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func feedRejectReason(view game.StateView) string {
	switch {
	case view.GameOver:
		return "game_over"
	case view.Inventory.Carrots <= 0:
		return "no_carrots"
	case view.IsEating:
		return "already_eating"
	case view.IsFull:
		return "full"
	case view.SatietyCount >= horse.SatietyLimit:
		return "sated"
	default:
		return "rejected"
	}
}

func careRejectReason(view game.StateView, fallback string) string {
	if view.GameOver {
		return "game_over"
	}
	return fallback
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return errors.New("empty body")
	}
	return json.Unmarshal(body, out)
}

func writeBadRequest(ctx *app.RequestContext, message string) {
	ctx.JSON(consts.StatusBadRequest, map[string]any{"error": message})
}
