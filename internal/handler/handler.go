// Package handler exposes the engine over HTTP. The handlers are thin: they
// parse a plan document, run the simulation and encode the result.
package handler

import (
	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"lifeplan-engine/internal/config"
	"lifeplan-engine/internal/csvexport"
	"lifeplan-engine/internal/engine"
	"lifeplan-engine/internal/model"
	"lifeplan-engine/internal/store"
)

type Handler struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg}
}

// Route dispatches requests by path.
func (h *Handler) Route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/simulate":
		h.handleSimulate(ctx)
	case "/export/csv":
		h.handleCSV(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) handleSimulate(ctx *fasthttp.RequestCtx) {
	resp, ok := h.simulate(ctx)
	if !ok {
		return
	}
	ctx.SetContentType("application/json")
	body, err := json.Marshal(resp)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Encoding failed: "+err.Error())
		return
	}
	ctx.SetBody(body)
}

func (h *Handler) handleCSV(ctx *fasthttp.RequestCtx) {
	resp, ok := h.simulate(ctx)
	if !ok {
		return
	}
	if resp.SimulationMetadata.SimulationOutcome != model.OutcomeSuccess {
		writeError(ctx, fasthttp.StatusBadRequest, "Simulation failed; nothing to export")
		return
	}
	body, err := csvexport.Bytes(resp.SimulationResult.Years)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "CSV export failed: "+err.Error())
		return
	}
	ctx.SetContentType("text/csv; charset=utf-8")
	ctx.Response.Header.Set("Content-Disposition", `attachment; filename="lifeplan.csv"`)
	ctx.SetBody(body)
}

func (h *Handler) simulate(ctx *fasthttp.RequestCtx) (*model.SimulationResponse, bool) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return nil, false
	}
	plan, err := store.Import(ctx.PostBody())
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}
	req := &model.SimulationRequest{Plan: *plan}
	return engine.ProcessWith(req, h.cfg.Tax, h.cfg.Education), true
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	body, _ := json.Marshal(model.ErrorResponse{Status: status, Message: message})
	ctx.SetBody(body)
}
