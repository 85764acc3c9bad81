// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-pet-walker/internal/app"
	"github.com/MKhiriev/go-pet-walker/internal/logger"
	"github.com/MKhiriev/go-pet-walker/internal/mock"
	"github.com/MKhiriev/go-pet-walker/internal/store"
	"github.com/MKhiriev/go-pet-walker/internal/validators"
	"github.com/MKhiriev/go-pet-walker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// authedGuard returns a guard whose adapter always holds a fresh token.
func authedGuard(t *testing.T, ctrl *gomock.Controller) *SessionGuard {
	t.Helper()
	tokens := mock.NewMockTokenHolder(ctrl)
	tokens.EXPECT().Token().Return(testToken(t, time.Now().Add(time.Hour))).AnyTimes()
	tokens.EXPECT().SetToken(gomock.Any()).AnyTimes()

	sessions := mock.NewMockSessionRepository(ctrl)
	sessions.EXPECT().Clear(gomock.Any()).Return(nil).AnyTimes()

	return NewSessionGuard(tokens, sessions, logger.Nop())
}

// anonymousGuard returns a guard with no session at all.
func anonymousGuard(ctrl *gomock.Controller) *SessionGuard {
	tokens := mock.NewMockTokenHolder(ctrl)
	tokens.EXPECT().Token().Return("").AnyTimes()

	sessions := mock.NewMockSessionRepository(ctrl)
	sessions.EXPECT().Get(gomock.Any()).Return(models.Session{}, store.ErrLocalSessionNotFound).AnyTimes()

	return NewSessionGuard(tokens, sessions, logger.Nop())
}

var page1 = models.PageRequest{Page: 1, PageSize: 15}

// ── AssignmentService ────────────────────────────────────────────────────────

func TestAssignmentService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAssignmentAPI(ctrl)
	svc := NewClientAssignmentService(api, authedGuard(t, ctrl), validators.NewRequestValidator(nil))

	want := models.Paged[models.Assignment]{Result: []models.Assignment{{ID: 1}}, TotalPages: 1, CurrentPage: 1}
	filter := models.AssignmentFilter{Status: models.AssignmentOpen}
	api.EXPECT().ListAssignments(gomock.Any(), filter, page1).Return(want, nil)

	got, err := svc.List(context.Background(), filter, page1)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAssignmentService_WithoutSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAssignmentAPI(ctrl) // no calls expected
	svc := NewClientAssignmentService(api, anonymousGuard(ctrl), validators.NewRequestValidator(nil))

	_, err := svc.Get(context.Background(), 1)
	assert.Equal(t, models.Unauthorized, models.KindOf(err))

	_, err = svc.CanRecruit(context.Background(), 1)
	assert.Equal(t, models.Unauthorized, models.KindOf(err))
}

func TestAssignmentService_Create_Validates(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAssignmentAPI(ctrl)
	svc := NewClientAssignmentService(api, authedGuard(t, ctrl), validators.NewRequestValidator(nil))

	_, err := svc.Create(context.Background(), models.Assignment{Title: ""})
	assert.ErrorIs(t, err, models.ErrBadRequest)
	assert.ErrorIs(t, err, validators.ErrInvalidField)

	valid := models.Assignment{
		Title:    "Morning walk",
		PetIDs:   []int64{1},
		StartsAt: time.Now().Add(time.Hour),
		EndsAt:   time.Now().Add(2 * time.Hour),
		Price:    10,
	}
	api.EXPECT().CreateAssignment(gomock.Any(), valid).Return(models.Assignment{ID: 5}, nil)

	got, err := svc.Create(context.Background(), valid)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
}

func TestAssignmentService_Recruit_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAssignmentAPI(ctrl)
	svc := NewClientAssignmentService(api, authedGuard(t, ctrl), validators.NewRequestValidator(nil))

	api.EXPECT().Recruit(gomock.Any(), int64(3)).
		Return(models.Recruitment{}, fmt.Errorf("recruit: %w", fmt.Errorf("%w: %s", models.ErrConflict, app.MsgAlreadyRecruited)))

	_, err := svc.Recruit(context.Background(), 3)
	assert.ErrorIs(t, err, ErrAlreadyRecruited)
	assert.Equal(t, models.Conflict, models.KindOf(err))
}

// ── PetService ───────────────────────────────────────────────────────────────

func TestPetService(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockPetAPI(ctrl)
	svc := NewClientPetService(api, authedGuard(t, ctrl), validators.NewRequestValidator(nil))
	ctx := context.Background()

	pet := models.Pet{Name: "Rex", Species: models.SpeciesDog}
	api.EXPECT().CreatePet(gomock.Any(), pet).Return(models.Pet{ID: 1, Name: "Rex"}, nil)
	api.EXPECT().MedicalRecords(gomock.Any(), int64(1), page1).Return(models.Paged[models.MedicalRecord]{TotalPages: 0}, nil)

	created, err := svc.Create(ctx, pet)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	_, err = svc.MedicalRecords(ctx, 1, page1)
	require.NoError(t, err)

	_, err = svc.AddMedicalRecord(ctx, models.MedicalRecord{PetID: 1})
	assert.ErrorIs(t, err, models.ErrBadRequest)
}

// ── PostService / ChannelService ─────────────────────────────────────────────

func TestPostService_AttachmentMakesContentOptional(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockPostAPI(ctrl)
	svc := NewClientPostService(api, authedGuard(t, ctrl), validators.NewRequestValidator(nil))

	_, err := svc.Create(context.Background(), models.Post{Title: "Lost dog"})
	assert.ErrorIs(t, err, models.ErrBadRequest)

	withFile := models.Post{Title: "Lost dog", AttachmentRef: "f-1"}
	api.EXPECT().CreatePost(gomock.Any(), withFile).Return(models.Post{ID: 2}, nil)

	got, err := svc.Create(context.Background(), withFile)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ID)
}

func TestChannelService_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockChannelAPI(ctrl)
	svc := NewClientChannelService(api, authedGuard(t, ctrl), validators.NewRequestValidator(nil))

	draft := models.MessageDraft{Content: "on my way"}
	api.EXPECT().SendMessage(gomock.Any(), int64(4), draft).Return(models.Message{ID: 1, Content: draft.Content}, nil)

	got, err := svc.Send(context.Background(), 4, draft)
	require.NoError(t, err)
	assert.Equal(t, "on my way", got.Content)

	_, err = svc.Send(context.Background(), 4, models.MessageDraft{})
	assert.ErrorIs(t, err, models.ErrBadRequest)
}

// ── Recruitment / Walker / Review / File ─────────────────────────────────────

func TestRecruitmentService(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockRecruitmentAPI(ctrl)
	svc := NewClientRecruitmentService(api, authedGuard(t, ctrl))

	api.EXPECT().AcceptRecruitment(gomock.Any(), int64(1)).Return(models.Recruitment{ID: 1, Status: models.RecruitmentAccepted}, nil)
	api.EXPECT().DeclineRecruitment(gomock.Any(), int64(2)).
		Return(models.Recruitment{}, fmt.Errorf("%w: %s", models.ErrConflict, app.MsgRecruitmentAnswered))

	got, err := svc.Accept(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.RecruitmentAccepted, got.Status)

	_, err = svc.Decline(context.Background(), 2)
	assert.ErrorIs(t, err, ErrRecruitmentAnswered)
}

func TestWalkerService(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockWalkerAPI(ctrl)
	svc := NewClientWalkerService(api, authedGuard(t, ctrl))

	api.EXPECT().FeaturedWalkers(gomock.Any(), page1).Return(models.Paged[models.Walker]{TotalPages: 3}, nil)
	api.EXPECT().GetUser(gomock.Any(), int64(5)).Return(models.User{}, fmt.Errorf("%w: gone", models.ErrNotFound))

	got, err := svc.Featured(context.Background(), page1)
	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalPages)

	_, err = svc.User(context.Background(), 5)
	assert.Equal(t, models.NotFound, models.KindOf(err))
	assert.Contains(t, err.Error(), "get user")
}

func TestReviewService_Validates(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockReviewAPI(ctrl)
	svc := NewClientReviewService(api, authedGuard(t, ctrl), validators.NewRequestValidator(nil))

	_, err := svc.Create(context.Background(), models.Review{Rating: 9})
	assert.ErrorIs(t, err, models.ErrBadRequest)

	api.EXPECT().CreateReview(gomock.Any(), models.Review{Rating: 5}).Return(models.Review{ID: 1, Rating: 5}, nil)
	_, err = svc.Create(context.Background(), models.Review{Rating: 5})
	require.NoError(t, err)
}

func TestFileService(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockFileAPI(ctrl)
	svc := NewClientFileService(api, authedGuard(t, ctrl))

	_, err := svc.Download(context.Background(), "")
	assert.ErrorIs(t, err, models.ErrBadRequest)

	_, err = svc.Upload(context.Background(), "a.txt", nil)
	assert.ErrorIs(t, err, models.ErrBadRequest)

	api.EXPECT().DownloadFile(gomock.Any(), "ref").Return(models.File{Reference: "ref", Data: []byte("x")}, nil)
	got, err := svc.Download(context.Background(), "ref")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), got.Data)
}

func TestNewClientServices_Wires(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapter := mock.NewMockServerAdapter(ctrl)
	storages := &store.ClientStorages{Sessions: mock.NewMockSessionRepository(ctrl)}

	services := NewClientServices(storages, adapter, logger.Nop())

	require.NotNil(t, services.Guard)
	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.AssignmentService)
	assert.NotNil(t, services.PetService)
	assert.NotNil(t, services.PostService)
	assert.NotNil(t, services.ChannelService)
	assert.NotNil(t, services.RecruitmentService)
	assert.NotNil(t, services.WalkerService)
	assert.NotNil(t, services.ReviewService)
	assert.NotNil(t, services.FileService)
}
