package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"adframe/internal/core/domain"
	"adframe/internal/core/port"
)

func (h *Handler) handleCreateListing(w http.ResponseWriter, r *http.Request) {
	var req port.CreateListingReq
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	l, err := h.market.CreateListing(r.Context(), principalFrom(r.Context()), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, newListingView(l))
}

func (h *Handler) handleGetListing(w http.ResponseWriter, r *http.Request) {
	l, err := h.market.GetListing(r.Context(), principalFrom(r.Context()), chi.URLParam(r, "listingId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newListingView(l))
}

func (h *Handler) handleUpsertFrame(w http.ResponseWriter, r *http.Request) {
	var req port.UpsertFrameReq
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	req.ListingID = chi.URLParam(r, "listingId")
	req.FrameID = chi.URLParam(r, "frameId")

	f, err := h.market.UpsertFrame(r.Context(), principalFrom(r.Context()), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newFrameView(*f))
}

func (h *Handler) handleEarnings(w http.ResponseWriter, r *http.Request) {
	resp, err := h.market.ListingEarnings(r.Context(), principalFrom(r.Context()), chi.URLParam(r, "listingId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req port.CreateCampaignReq
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.market.CreateCampaign(r.Context(), principalFrom(r.Context()), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, newCampaignView(c))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.market.GetCampaign(r.Context(), principalFrom(r.Context()), chi.URLParam(r, "campaignId"))
	h.writeCampaign(w, r, c, err)
}

func (h *Handler) handleDecideCampaign(approve bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := h.market.DecideCampaign(r.Context(), principalFrom(r.Context()), chi.URLParam(r, "campaignId"), approve)
		h.writeCampaign(w, r, c, err)
	}
}

func (h *Handler) handleArchiveCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.market.ArchiveCampaign(r.Context(), principalFrom(r.Context()), chi.URLParam(r, "campaignId"))
	h.writeCampaign(w, r, c, err)
}

func (h *Handler) handleRestoreCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.market.RestoreCampaign(r.Context(), principalFrom(r.Context()), chi.URLParam(r, "campaignId"))
	h.writeCampaign(w, r, c, err)
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.market.DeleteCampaign(r.Context(), principalFrom(r.Context()), chi.URLParam(r, "campaignId")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeCampaign(w http.ResponseWriter, r *http.Request, c *domain.Campaign, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newCampaignView(c))
}
