package viewmodel

import (
	"context"

	"github.com/MKhiriev/go-pet-walker/internal/async"
	"github.com/MKhiriev/go-pet-walker/internal/paging"
	"github.com/MKhiriev/go-pet-walker/internal/service"
	"github.com/MKhiriev/go-pet-walker/internal/validators"
	"github.com/MKhiriev/go-pet-walker/models"
)

// ChannelEvent is implemented by LoadPage, Refresh, DraftChanged,
// SendMessage and DownloadAttachment.
type ChannelEvent interface{ channelEvent() }

// DraftChanged replaces the message draft.
type DraftChanged struct{ Draft models.MessageDraft }

// SendMessage sends the current draft.
type SendMessage struct{}

func (DraftChanged) channelEvent() {}
func (SendMessage) channelEvent()  {}

// ChannelState is the state of an assignment chat.
type ChannelState struct {
	ChannelID int64
	Channel   async.Result[models.Channel]
	Messages  paging.State[models.Message]

	Draft           models.MessageDraft
	DraftValidation validators.Validation
	CanSend         bool
	Send            Op[models.Message]

	Download Op[string]
}

// Channel is the chat between an owner and a walker about one assignment.
type Channel struct {
	base[ChannelState]
	channels  service.ChannelService
	downloads Downloader
	messages  *pager[models.Message]
	form      validators.Form[models.MessageDraft]
	send      chan struct{}
}

// NewChannel creates the view model, loads the channel and the first page of
// messages.
func NewChannel(ctx context.Context, channelID int64, channels service.ChannelService, downloads Downloader, opts Options) *Channel {
	form := validators.MessageForm()
	initial := ChannelState{ChannelID: channelID}
	initial.DraftValidation, initial.CanSend = draftValidation(form, initial.Draft)

	vm := &Channel{
		base:      newBase(ctx, "channel", initial, opts),
		channels:  channels,
		downloads: downloads,
		form:      form,
		send:      make(chan struct{}, 1),
	}
	vm.messages = newPager(&vm.base,
		func(ctx context.Context, page models.PageRequest) (models.Paged[models.Message], error) {
			return channels.Messages(ctx, channelID, page)
		},
		func(s *ChannelState, st paging.State[models.Message]) { s.Messages = st },
	)
	vm.loadChannel()
	vm.messages.load(1)
	return vm
}

// Handle dispatches ev.
func (vm *Channel) Handle(ev ChannelEvent) {
	switch e := ev.(type) {
	case LoadPage:
		vm.messages.load(e.Page)
	case Refresh:
		vm.loadChannel()
		vm.messages.refresh()
	case DraftChanged:
		vm.state.update(func(s *ChannelState) {
			s.Draft = e.Draft
			s.DraftValidation, s.CanSend = draftValidation(vm.form, e.Draft)
		})
	case SendMessage:
		vm.sendDraft()
	case DownloadAttachment:
		vm.download(vm.downloads, e, func(s *ChannelState, op Op[string]) { s.Download = op })
	}
}

func (vm *Channel) loadChannel() {
	fetch(&vm.base, "Channel.loadChannel",
		func(ctx context.Context) (models.Channel, error) { return vm.channels.Get(ctx, vm.State().ChannelID) },
		func(s *ChannelState, r async.Result[models.Channel]) { s.Channel = r },
	)
}

func (vm *Channel) sendDraft() {
	vm.scope.launch(func(ctx context.Context) {
		if !lock(ctx, vm.send) {
			return
		}
		defer unlock(vm.send)

		draft := vm.State().Draft
		if _, ok := draftValidation(vm.form, draft); !ok {
			return
		}

		vm.state.update(func(s *ChannelState) { s.Send = startOp[models.Message]() })
		msg, err := vm.channels.Send(ctx, vm.State().ChannelID, draft)
		if ctx.Err() != nil {
			return
		}
		vm.logFailure(ctx, "Channel.sendDraft", err)

		vm.state.update(func(s *ChannelState) {
			s.Send = finishOp(msg, err)
			// edits made while sending stay in the draft
			if err == nil && s.Draft == draft {
				s.Draft = models.MessageDraft{}
				s.DraftValidation, s.CanSend = draftValidation(vm.form, s.Draft)
			}
		})
		if err == nil {
			vm.messages.refresh()
		}
	})
}

func draftValidation(form validators.Form[models.MessageDraft], draft models.MessageDraft) (validators.Validation, bool) {
	v, _ := form.Field(validators.FieldContent, draft)
	return v, v.Valid
}
