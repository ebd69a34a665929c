package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adframe/internal/core/domain"
)

func TestEncodeKeysByCampaign(t *testing.T) {
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	msg, err := encode(domain.Event{
		ID:         42,
		Kind:       domain.KindClick,
		Key:        "k-1",
		CampaignID: "C1",
		FrameID:    "F1",
		Cost:       domain.FromUnits(0.5),
		CreatedAt:  at,
	})
	require.NoError(t, err)
	assert.Equal(t, "C1", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "click", string(msg.Headers[0].Value))

	var got Message
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, Message{
		ID:         42,
		Kind:       "click",
		Key:        "k-1",
		CampaignID: "C1",
		FrameID:    "F1",
		Cost:       500_000,
		CreatedAt:  at,
	}, got)
}

func TestNewPublisherRequiresBrokers(t *testing.T) {
	_, err := NewPublisher(nil, "adframe.activity")
	assert.Error(t, err)
	_, err = NewPublisher([]string{"localhost:9092"}, "")
	assert.Error(t, err)
}
