package async

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-pet-walker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_ZeroValueIsLoading(t *testing.T) {
	var r Result[int]

	assert.True(t, r.IsLoading())
	assert.Equal(t, StatusLoading, r.Status())

	_, ok := r.Value()
	assert.False(t, ok)
	_, ok = r.Kind()
	assert.False(t, ok)
}

func TestResult_Succeeded(t *testing.T) {
	r := Succeeded("walk")

	v, ok := r.Value()
	require.True(t, ok)
	assert.Equal(t, "walk", v)
	assert.True(t, r.IsSucceeded())
	assert.False(t, r.IsFailed())
}

func TestResult_SucceededWithNilPayload(t *testing.T) {
	r := Succeeded[*models.Pet](nil)

	v, ok := r.Value()
	require.True(t, ok)
	assert.Nil(t, v)
}

func TestResult_Failed(t *testing.T) {
	r := Failed[string](models.NotFound)

	kind, ok := r.Kind()
	require.True(t, ok)
	assert.Equal(t, models.NotFound, kind)

	_, ok = r.Value()
	assert.False(t, ok)
}

func TestFromCall(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   Status
		wantKind models.ErrorKind
	}{
		{name: "success", err: nil, status: StatusSucceeded},
		{name: "wrapped unauthorized", err: fmt.Errorf("load: %w", models.ErrUnauthorized), status: StatusFailed, wantKind: models.Unauthorized},
		{name: "deadline", err: context.DeadlineExceeded, status: StatusFailed, wantKind: models.Network},
		{name: "unknown", err: errors.New("boom"), status: StatusFailed, wantKind: models.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromCall(42, tt.err)
			assert.Equal(t, tt.status, r.Status())
			if tt.status == StatusFailed {
				kind, _ := r.Kind()
				assert.Equal(t, tt.wantKind, kind)
			}
		})
	}
}

func TestResult_MatchCallsExactlyOneBranch(t *testing.T) {
	results := []Result[int]{Loading[int](), Failed[int](models.Conflict), Succeeded(7)}

	for _, r := range results {
		calls := 0
		r.Match(
			func() { calls++ },
			func(models.ErrorKind) { calls++ },
			func(int) { calls++ },
		)
		assert.Equal(t, 1, calls, "status %s", r.Status())
	}
}

func TestMap(t *testing.T) {
	double := func(v int) int { return v * 2 }

	v, ok := Map(Succeeded(4), double).Value()
	require.True(t, ok)
	assert.Equal(t, 8, v)

	kind, ok := Map(Failed[int](models.ServerError), double).Kind()
	require.True(t, ok)
	assert.Equal(t, models.ServerError, kind)

	assert.True(t, Map(Loading[int](), double).IsLoading())
}

func TestJoin(t *testing.T) {
	sum := func(a, b int) int { return a + b }

	v, ok := Join(Succeeded(1), Succeeded(2), sum).Value()
	require.True(t, ok)
	assert.Equal(t, 3, v)

	kind, _ := Join(Failed[int](models.NotFound), Failed[int](models.Conflict), sum).Kind()
	assert.Equal(t, models.NotFound, kind)

	assert.True(t, Join(Loading[int](), Succeeded(2), sum).IsLoading())

	kind, _ = Join(Loading[int](), Failed[int](models.Forbidden), sum).Kind()
	assert.Equal(t, models.Forbidden, kind)
}
