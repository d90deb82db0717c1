package imagestore

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/thrift-inventory/internal/domain"
	"github.com/jhoicas/thrift-inventory/pkg/config"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(config.ImagesConfig{Dir: t.TempDir(), URLPrefix: "/images/", MaxDimension: 100, JPEGQuality: 80}, nil)
	require.NoError(t, err)
	return s
}

func TestProcess_DownscalesAndReencodes(t *testing.T) {
	out, err := Process(bytes.NewReader(pngBytes(t, 400, 200)), 100, 80)
	require.NoError(t, err)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
}

func TestProcess_KeepsSmallImages(t *testing.T) {
	out, err := Process(bytes.NewReader(pngBytes(t, 30, 60)), 100, 80)
	require.NoError(t, err)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Width)
	assert.Equal(t, 60, cfg.Height)
}

func TestProcess_RejectsNonImage(t *testing.T) {
	_, err := Process(strings.NewReader("definitely not an image"), 100, 80)
	require.Error(t, err)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "file")
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "12_levis-501_abc.jpg", FileName(12, "Levis 501", "abc"))
	assert.Equal(t, "3_item_abc.jpg", FileName(3, "  ", "abc"))
	long := FileName(1, strings.Repeat("camisa ", 20), "x")
	assert.LessOrEqual(t, len(strings.Split(long, "_")[1]), maxSlugLen)
}

func TestSaveAndRemove(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	p, err := s.Save(ctx, 7, "Vintage Jacket", bytes.NewReader(pngBytes(t, 20, 20)))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p, "/images/7_vintage-jacket_"))
	assert.True(t, strings.HasSuffix(p, ".jpg"))

	name := strings.TrimPrefix(p, "/images/")
	_, err = os.Stat(filepath.Join(s.Dir(), name))
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, p))
	_, err = os.Stat(filepath.Join(s.Dir(), name))
	assert.True(t, os.IsNotExist(err))

	// segunda vez: ya no existe
	require.NoError(t, s.Remove(ctx, p))
}

func TestRemove_IgnoresForeignPaths(t *testing.T) {
	s := newStore(t)
	outside := filepath.Join(filepath.Dir(s.Dir()), "keep.jpg")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))

	for _, p := range []string{"/images/../keep.jpg", "https://cdn.example.com/a.jpg", "/other/a.jpg", "/images/"} {
		assert.NoError(t, s.Remove(context.Background(), p), p)
	}
	_, err := os.Stat(outside)
	assert.NoError(t, err)
}
