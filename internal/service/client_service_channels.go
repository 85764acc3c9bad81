package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pet-walker/internal/adapter"
	"github.com/MKhiriev/go-pet-walker/internal/validators"
	"github.com/MKhiriev/go-pet-walker/models"
)

type clientChannelService struct {
	api       adapter.ChannelAPI
	guard     *SessionGuard
	validator validators.Validator
}

// NewClientChannelService creates a ChannelService.
func NewClientChannelService(api adapter.ChannelAPI, guard *SessionGuard, validator validators.Validator) ChannelService {
	return &clientChannelService{api: api, guard: guard, validator: validator}
}

func (s *clientChannelService) Get(ctx context.Context, id int64) (models.Channel, error) {
	return guarded(ctx, s.guard, "get channel", func(ctx context.Context) (models.Channel, error) {
		return s.api.GetChannel(ctx, id)
	})
}

func (s *clientChannelService) Messages(ctx context.Context, channelID int64, page models.PageRequest) (models.Paged[models.Message], error) {
	return guarded(ctx, s.guard, "channel messages", func(ctx context.Context) (models.Paged[models.Message], error) {
		return s.api.Messages(ctx, channelID, page)
	})
}

func (s *clientChannelService) Send(ctx context.Context, channelID int64, draft models.MessageDraft) (models.Message, error) {
	if err := s.validator.Validate(ctx, draft); err != nil {
		return models.Message{}, fmt.Errorf("send message: %w: %w", models.ErrBadRequest, err)
	}
	return guarded(ctx, s.guard, "send message", func(ctx context.Context) (models.Message, error) {
		return s.api.SendMessage(ctx, channelID, draft)
	})
}
