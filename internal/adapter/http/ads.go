package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adframe/internal/core/domain"
	"adframe/internal/core/port"
)

// handleDecide returns the creative to render in a frame. Nothing to serve
// is a 204 so the embedding page can collapse the slot; unknown frames and
// campaigns are a bare 404. Storage failures also answer 204 because the
// page cannot act on them.
func (h *Handler) handleDecide(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := port.DecisionReq{
		ListingID:    chi.URLParam(r, "listingId"),
		FrameID:      chi.URLParam(r, "frameId"),
		CampaignHint: q.Get("campaign"),
		RenderKey:    q.Get("key"),
	}

	resp, err := h.ads.Decide(r.Context(), req)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
		return
	case err != nil:
		h.logger.Warn("ad decision failed",
			slog.String("listing_id", req.ListingID),
			slog.String("frame_id", req.FrameID),
			slog.Any("error", err))
		w.WriteHeader(http.StatusNoContent)
		return
	case resp == nil:
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, resp)
}

// handleAnalytics reports a campaign's counters. It is public so
// advertisers can share dashboards without an account.
func (h *Handler) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	resp, err := h.ads.Analytics(r.Context(), chi.URLParam(r, "campaignId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
