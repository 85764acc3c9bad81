package download

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-pet-walker/internal/logger"
	"github.com/MKhiriev/go-pet-walker/internal/mock"
	"github.com/MKhiriev/go-pet-walker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func newManager(t *testing.T) (*Manager, *mock.MockFileService, string) {
	t.Helper()
	ctrl := gomock.NewController(t)
	files := mock.NewMockFileService(ctrl)
	dir := filepath.Join(t.TempDir(), "downloads")
	return NewManager(files, dir, logger.Nop()), files, dir
}

func TestQueryDownload_WritesFile(t *testing.T) {
	m, files, dir := newManager(t)
	files.EXPECT().Download(gomock.Any(), "ref-1").
		Return(models.File{Reference: "ref-1", Name: "server.txt", Data: []byte("hello")}, nil)

	require.NoError(t, m.QueryDownload(context.Background(), "ref-1", "walk report.txt"))

	data, err := os.ReadFile(filepath.Join(dir, "walk report.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestQueryDownload_NeverOverwrites(t *testing.T) {
	m, files, dir := newManager(t)
	files.EXPECT().Download(gomock.Any(), "ref").
		Return(models.File{Data: []byte("v")}, nil).Times(3)

	for i := 0; i < 3; i++ {
		require.NoError(t, m.QueryDownload(context.Background(), "ref", "notes.txt"))
	}

	for _, name := range []string{"notes.txt", "notes (1).txt", "notes (2).txt"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestQueryDownload_DetectsExtension(t *testing.T) {
	m, files, dir := newManager(t)
	files.EXPECT().Download(gomock.Any(), "img").
		Return(models.File{Data: pngHeader}, nil)

	require.NoError(t, m.QueryDownload(context.Background(), "img", "rex"))

	_, err := os.Stat(filepath.Join(dir, "rex.png"))
	assert.NoError(t, err)
}

func TestQueryDownload_FallsBackToServerName(t *testing.T) {
	m, files, dir := newManager(t)
	files.EXPECT().Download(gomock.Any(), "r").
		Return(models.File{Name: "../../etc/vet.txt", Data: []byte("x")}, nil)

	require.NoError(t, m.QueryDownload(context.Background(), "r", "  "))

	_, err := os.Stat(filepath.Join(dir, "vet.txt"))
	assert.NoError(t, err)
}

func TestQueryDownload_Errors(t *testing.T) {
	m, files, dir := newManager(t)

	assert.ErrorIs(t, m.QueryDownload(context.Background(), "", "x"), ErrEmptyReference)

	files.EXPECT().Download(gomock.Any(), "gone").
		Return(models.File{}, models.ErrNotFound)
	err := m.QueryDownload(context.Background(), "gone", "x.txt")
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr), "nothing is created on failure")
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "a.txt", fileName("", "a.txt"))
	assert.Equal(t, "b", fileName("dir/b", "a.txt"))
	assert.Equal(t, "download", fileName("", " ", ".."))
}
