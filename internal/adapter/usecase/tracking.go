package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"adframe/internal/core/domain"
	"adframe/internal/core/port"
	"adframe/internal/metrics"
)

// RecordImpression appends one impression for the campaign's frame. It
// reports false, nil when the idempotency key was already used.
func (u *AdUseCase) RecordImpression(ctx context.Context, req port.TrackReq) (bool, error) {
	return u.record(ctx, domain.KindImpression, req)
}

// RecordClick appends one click and charges the campaign when the frame is
// priced per click.
func (u *AdUseCase) RecordClick(ctx context.Context, req port.TrackReq) (bool, error) {
	return u.record(ctx, domain.KindClick, req)
}

// ClickThrough resolves the campaign's target URL and records the click
// under the tracking timeout. Tracking failures never prevent navigation:
// they are logged and the target URL is still returned.
func (u *AdUseCase) ClickThrough(ctx context.Context, req port.TrackReq) (string, error) {
	if req.CampaignID == "" || req.FrameID == "" {
		return "", fmt.Errorf("%w: campaignId and frameId are required", domain.ErrInvalidInput)
	}
	camp, err := u.campaigns.GetCampaign(ctx, req.CampaignID)
	if err != nil {
		return "", err
	}
	if camp == nil {
		return "", fmt.Errorf("campaign %s: %w", req.CampaignID, domain.ErrNotFound)
	}

	trackCtx, cancel := context.WithTimeout(ctx, u.trackTimeout)
	defer cancel()
	if _, err = u.RecordClick(trackCtx, req); err != nil {
		u.logger.Warn("click tracking failed",
			slog.String("campaign_id", req.CampaignID),
			slog.String("frame_id", req.FrameID),
			slog.Any("error", err))
	}
	return camp.TargetURL, nil
}

func (u *AdUseCase) record(ctx context.Context, kind domain.EventKind, req port.TrackReq) (bool, error) {
	if req.CampaignID == "" || req.FrameID == "" {
		return false, fmt.Errorf("%w: campaignId and frameId are required", domain.ErrInvalidInput)
	}

	key := req.Key
	claimed := false
	if key == "" {
		key = uuid.NewString()
	} else if u.guard != nil {
		ok, err := u.guard.Claim(ctx, guardKey(kind, key))
		switch {
		case err != nil:
			// the unique key in storage still deduplicates
			u.logger.Warn("idempotency guard unavailable", slog.Any("error", err))
		case !ok:
			metrics.TrackedEvents.WithLabelValues(string(kind), "duplicate").Inc()
			return false, nil
		default:
			claimed = true
		}
	}

	ev := &domain.Event{
		Kind:       kind,
		Key:        key,
		CampaignID: req.CampaignID,
		FrameID:    req.FrameID,
	}
	written, err := u.activity.RecordEvent(ctx, ev)
	if err != nil {
		metrics.TrackedEvents.WithLabelValues(string(kind), "failed").Inc()
		if claimed {
			if relErr := u.guard.Release(context.WithoutCancel(ctx), guardKey(kind, key)); relErr != nil {
				u.logger.Warn("idempotency release failed", slog.Any("error", relErr))
			}
		}
		return false, fmt.Errorf("record %s: %w", kind, err)
	}
	if !written {
		metrics.TrackedEvents.WithLabelValues(string(kind), "duplicate").Inc()
		return false, nil
	}

	metrics.TrackedEvents.WithLabelValues(string(kind), "recorded").Inc()
	u.publish(*ev)
	return true, nil
}

// publish hands the event to the stream without holding up the caller.
func (u *AdUseCase) publish(ev domain.Event) {
	if u.publisher == nil {
		return
	}
	if !u.tasks.Go("publish", func(ctx context.Context) error {
		return u.publisher.Publish(ctx, ev)
	}) {
		u.logger.Warn("event publish dropped", slog.String("kind", string(ev.Kind)), slog.String("key", ev.Key))
	}
}

func guardKey(kind domain.EventKind, key string) string {
	return "adframe:track:" + string(kind) + ":" + key
}

// inlineRunner runs tasks synchronously. It backs the use case when no
// asynchronous runner is configured.
type inlineRunner struct {
	logger *slog.Logger
}

func (r inlineRunner) Go(name string, fn func(ctx context.Context) error) bool {
	if err := fn(context.Background()); err != nil {
		r.logger.Warn("task failed", slog.String("task", name), slog.Any("error", err))
	}
	return true
}
