package httpadapter

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adframe/internal/core/domain"
	"adframe/internal/core/port"
)

type trackResp struct {
	OK       bool `json:"ok"`
	Recorded bool `json:"recorded"`
}

func (h *Handler) handleImpression(w http.ResponseWriter, r *http.Request) {
	h.track(w, r, domain.KindImpression, h.ads.RecordImpression)
}

func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	h.track(w, r, domain.KindClick, h.ads.RecordClick)
}

// track decodes a tracking call and records it. Only malformed requests
// are reported; a tracking failure is logged and acknowledged so the
// embedding page never retries into an outage.
func (h *Handler) track(w http.ResponseWriter, r *http.Request, kind domain.EventKind,
	record func(context.Context, port.TrackReq) (bool, error)) {
	var req port.TrackReq
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	recorded, err := record(r.Context(), req)
	if errors.Is(err, domain.ErrInvalidInput) {
		h.writeError(w, r, err)
		return
	}
	if err != nil {
		h.logger.Warn("tracking failed",
			slog.String("kind", string(kind)),
			slog.String("campaign_id", req.CampaignID),
			slog.String("frame_id", req.FrameID),
			slog.Any("error", err))
	}
	writeJSON(w, http.StatusOK, trackResp{OK: true, Recorded: recorded})
}

// handleClickThrough records a click and sends the visitor on to the
// campaign's target URL.
func (h *Handler) handleClickThrough(w http.ResponseWriter, r *http.Request) {
	req := port.TrackReq{
		CampaignID: chi.URLParam(r, "campaignId"),
		FrameID:    chi.URLParam(r, "frameId"),
		Key:        r.URL.Query().Get("key"),
	}
	target, err := h.ads.ClickThrough(r.Context(), req)
	if errors.Is(err, domain.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}
