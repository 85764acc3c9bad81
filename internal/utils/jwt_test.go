// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "  bearer   token  ", want: "token"},
		{header: "Basic abc", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTokenClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{"sub": "42", "exp": exp.Unix()})

	claims, err := ParseTokenClaims(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.True(t, exp.Equal(claims.ExpiresAt))
}

func TestParseTokenClaims_Garbage(t *testing.T) {
	_, err := ParseTokenClaims("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenClaims_NonNumericSubject(t *testing.T) {
	_, err := ParseTokenClaims(signedToken(t, jwt.MapClaims{"sub": "alice"}))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIsTokenExpired(t *testing.T) {
	now := time.Now()

	fresh := signedToken(t, jwt.MapClaims{"sub": "1", "exp": now.Add(time.Hour).Unix()})
	stale := signedToken(t, jwt.MapClaims{"sub": "1", "exp": now.Add(-time.Minute).Unix()})
	forever := signedToken(t, jwt.MapClaims{"sub": "1"})

	assert.False(t, IsTokenExpired(fresh, now))
	assert.True(t, IsTokenExpired(stale, now))
	assert.False(t, IsTokenExpired(forever, now))
	assert.True(t, IsTokenExpired("garbage", now))
}

func TestNewRequestID_Unique(t *testing.T) {
	a, b := NewRequestID(), NewRequestID()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
}
