// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-pet-walker/internal/logger"
	"github.com/MKhiriev/go-pet-walker/internal/mock"
	"github.com/MKhiriev/go-pet-walker/internal/store"
	"github.com/MKhiriev/go-pet-walker/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testToken(t *testing.T, exp time.Time) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "7", "exp": exp.Unix()}).
		SignedString([]byte("server-key"))
	require.NoError(t, err)
	return s
}

func newTestGuard(ctrl *gomock.Controller) (*SessionGuard, *mock.MockTokenHolder, *mock.MockSessionRepository) {
	tokens := mock.NewMockTokenHolder(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)
	return NewSessionGuard(tokens, sessions, logger.Nop()), tokens, sessions
}

func TestSessionGuard_Token_InMemory(t *testing.T) {
	ctrl := gomock.NewController(t)
	guard, tokens, _ := newTestGuard(ctrl)
	token := testToken(t, time.Now().Add(time.Hour))

	tokens.EXPECT().Token().Return(token)

	got, err := guard.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, token, got)
}

func TestSessionGuard_Token_RestoresFromStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	guard, tokens, sessions := newTestGuard(ctrl)
	token := testToken(t, time.Now().Add(time.Hour))

	gomock.InOrder(
		tokens.EXPECT().Token().Return(""),
		sessions.EXPECT().Get(gomock.Any()).Return(models.Session{UserID: 7, Token: token}, nil),
		tokens.EXPECT().SetToken(token),
	)

	got, err := guard.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, token, got)
}

func TestSessionGuard_Token_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	guard, tokens, sessions := newTestGuard(ctrl)

	tokens.EXPECT().Token().Return("")
	sessions.EXPECT().Get(gomock.Any()).Return(models.Session{}, store.ErrLocalSessionNotFound)

	_, err := guard.Token(context.Background())
	assert.ErrorIs(t, err, models.ErrUnauthorized)
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Equal(t, models.Unauthorized, models.KindOf(err))
}

func TestSessionGuard_Token_BlankStoredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	guard, tokens, sessions := newTestGuard(ctrl)

	tokens.EXPECT().Token().Return("")
	sessions.EXPECT().Get(gomock.Any()).Return(models.Session{UserID: 1, Token: "   "}, nil)

	_, err := guard.Token(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionGuard_Token_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	guard, tokens, _ := newTestGuard(ctrl)

	tokens.EXPECT().Token().Return(testToken(t, time.Now().Add(-time.Minute)))
	tokens.EXPECT().SetToken("")

	_, err := guard.Token(context.Background())
	assert.ErrorIs(t, err, models.ErrUnauthorized)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestSessionGuard_Token_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	guard, tokens, sessions := newTestGuard(ctrl)
	boom := errors.New("disk failure")

	tokens.EXPECT().Token().Return("")
	sessions.EXPECT().Get(gomock.Any()).Return(models.Session{}, boom)

	_, err := guard.Token(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, models.ErrUnauthorized)
}

func TestGuarded_ServerRejectsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	guard, tokens, sessions := newTestGuard(ctrl)
	token := testToken(t, time.Now().Add(time.Hour))

	tokens.EXPECT().Token().Return(token)
	tokens.EXPECT().SetToken("")
	sessions.EXPECT().Clear(gomock.Any()).Return(nil)

	_, err := guarded(context.Background(), guard, "op", func(context.Context) (int, error) {
		return 0, models.ErrUnauthorized
	})
	assert.ErrorIs(t, err, models.ErrUnauthorized)
	assert.Contains(t, err.Error(), "op: ")
}

func TestGuarded_SkipsCallWithoutSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	guard, tokens, sessions := newTestGuard(ctrl)

	tokens.EXPECT().Token().Return("")
	sessions.EXPECT().Get(gomock.Any()).Return(models.Session{}, store.ErrLocalSessionNotFound)

	called := false
	_, err := guarded(context.Background(), guard, "op", func(context.Context) (int, error) {
		called = true
		return 1, nil
	})
	assert.ErrorIs(t, err, models.ErrUnauthorized)
	assert.False(t, called, "network call must not run without a session")
}
