package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pet-walker/models"
)

// GetChannel implements [ChannelAPI] via GET /api/channels/{id}.
func (h *httpServerAdapter) GetChannel(ctx context.Context, id int64) (models.Channel, error) {
	out, err := get[models.Channel](ctx, h, idPath("/api/channels/%d", id))
	if err != nil {
		return out, fmt.Errorf("get channel %d: %w", id, err)
	}
	return out, nil
}

// Messages implements [ChannelAPI] via GET /api/channels/{id}/messages.
func (h *httpServerAdapter) Messages(ctx context.Context, channelID int64, page models.PageRequest) (models.Paged[models.Message], error) {
	out, err := getPaged[models.Message](ctx, h, idPath("/api/channels/%d/messages", channelID), page, nil)
	if err != nil {
		return out, fmt.Errorf("channel %d messages: %w", channelID, err)
	}
	return out, nil
}

// SendMessage implements [ChannelAPI] via POST /api/channels/{id}/messages.
func (h *httpServerAdapter) SendMessage(ctx context.Context, channelID int64, draft models.MessageDraft) (models.Message, error) {
	out, err := post[models.Message](ctx, h, idPath("/api/channels/%d/messages", channelID), draft)
	if err != nil {
		return out, fmt.Errorf("send to channel %d: %w", channelID, err)
	}
	return out, nil
}
