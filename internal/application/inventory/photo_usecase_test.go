package inventory_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/thrift-inventory/internal/application/dto"
	"github.com/jhoicas/thrift-inventory/internal/domain"
	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
)

func TestPhotoAdd_SinglePrimaryAndHistory(t *testing.T) {
	f := newFixture(t)
	item := f.createItem(t, "10")

	first, err := f.photos.Add(f.ctx, item.ID, dto.CreatePhotoRequest{FilePath: "/images/front.jpg", IsPrimary: true})
	require.NoError(t, err)
	assert.Equal(t, 1, first.SortOrder, "sort_order por defecto")

	zero := 0
	second, err := f.photos.Add(f.ctx, item.ID, dto.CreatePhotoRequest{FilePath: "/images/back.jpg", IsPrimary: true, SortOrder: &zero})
	require.NoError(t, err)

	list, err := f.photos.List(f.ctx, item.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "ordenadas por sort_order")
	assert.True(t, list[0].IsPrimary)
	assert.False(t, list[1].IsPrimary)

	h := f.history(t, item.ID)[0]
	assert.Equal(t, entity.HistoryActionPhotoAdded, h.Action)
	assert.Equal(t, "/images/back.jpg", *h.NewValue)
	assert.Nil(t, h.OldValue)
	assert.Equal(t, 2, f.metrics.history[entity.HistoryActionPhotoAdded])
}

func TestPhotoAdd_UnknownItem(t *testing.T) {
	f := newFixture(t)
	_, err := f.photos.Add(f.ctx, 31, dto.CreatePhotoRequest{FilePath: "/images/x.jpg"})
	var nf *domain.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Item", nf.Entity)
}

func TestPhotoUpdate_PromotesPrimary(t *testing.T) {
	f := newFixture(t)
	item := f.createItem(t, "10")
	_, err := f.photos.Add(f.ctx, item.ID, dto.CreatePhotoRequest{FilePath: "/images/a.jpg", IsPrimary: true})
	require.NoError(t, err)
	b, err := f.photos.Add(f.ctx, item.ID, dto.CreatePhotoRequest{FilePath: "/images/b.jpg"})
	require.NoError(t, err)

	out, err := f.photos.Update(f.ctx, b.ID, dto.UpdatePhotoRequest{IsPrimary: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, out.IsPrimary)

	list, err := f.photos.List(f.ctx, item.ID)
	require.NoError(t, err)
	for _, p := range list {
		assert.Equal(t, p.ID == b.ID, p.IsPrimary, "photo %d", p.ID)
	}

	_, err = f.photos.Update(f.ctx, 999, dto.UpdatePhotoRequest{IsPrimary: boolPtr(true)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPhotoDelete_RemovesFileAndRecordsHistory(t *testing.T) {
	f := newFixture(t)
	item := f.createItem(t, "10")
	p, err := f.photos.Add(f.ctx, item.ID, dto.CreatePhotoRequest{FilePath: "/images/a.jpg"})
	require.NoError(t, err)

	require.NoError(t, f.photos.Delete(f.ctx, p.ID))
	assert.Equal(t, []string{"/images/a.jpg"}, f.files.removed)

	h := f.history(t, item.ID)[0]
	assert.Equal(t, entity.HistoryActionPhotoRemoved, h.Action)
	assert.Equal(t, "/images/a.jpg", *h.OldValue)
	assert.Nil(t, h.NewValue)

	assert.ErrorIs(t, f.photos.Delete(f.ctx, p.ID), domain.ErrNotFound)
}

func TestPhotoUpload_UsesBrandAsLabel(t *testing.T) {
	f := newFixture(t)
	item := f.createItem(t, "10", func(in *dto.CreateItemRequest) { in.Brand = strPtr("Gap") })

	out, err := f.photos.Upload(f.ctx, item.ID, strings.NewReader("binary"), true, 2)
	require.NoError(t, err)
	assert.Equal(t, "/images/1_Gap_1.jpg", out.FilePath)
	assert.Equal(t, 2, out.SortOrder)
	assert.True(t, out.IsPrimary)
	assert.Equal(t, []string{out.FilePath}, f.files.saved)
}

func TestPhotoUpload_StorageFailure(t *testing.T) {
	f := newFixture(t)
	item := f.createItem(t, "10")
	bad := domain.NewValidationError("file", "invalid image")
	f.files.failOn = bad

	_, err := f.photos.Upload(f.ctx, item.ID, strings.NewReader("x"), false, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := f.photos.List(f.ctx, item.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPhotoUpload_UnknownItemSavesNothing(t *testing.T) {
	f := newFixture(t)
	_, err := f.photos.Upload(f.ctx, 9, strings.NewReader("x"), false, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.files.saved)
}

func TestPhotoDelete_KeepsFileSharedWithAnotherItem(t *testing.T) {
	f := newFixture(t)
	a := f.createItem(t, "10")
	b := f.createItem(t, "12")
	pa, err := f.photos.Add(f.ctx, a.ID, dto.CreatePhotoRequest{FilePath: "/images/shared.jpg"})
	require.NoError(t, err)
	pb, err := f.photos.Add(f.ctx, b.ID, dto.CreatePhotoRequest{FilePath: "/images/shared.jpg"})
	require.NoError(t, err)

	require.NoError(t, f.photos.Delete(f.ctx, pb.ID))
	assert.Empty(t, f.files.removed, "la foto de A sigue usando el archivo")

	list, err := f.photos.List(f.ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "/images/shared.jpg", list[0].FilePath)

	require.NoError(t, f.photos.Delete(f.ctx, pa.ID))
	assert.Equal(t, []string{"/images/shared.jpg"}, f.files.removed)
}

func TestItemDelete_KeepsFileSharedWithAnotherItem(t *testing.T) {
	f := newFixture(t)
	a := f.createItem(t, "10")
	b := f.createItem(t, "12")
	_, err := f.photos.Add(f.ctx, a.ID, dto.CreatePhotoRequest{FilePath: "/images/shared.jpg"})
	require.NoError(t, err)
	_, err = f.photos.Add(f.ctx, b.ID, dto.CreatePhotoRequest{FilePath: "/images/shared.jpg"})
	require.NoError(t, err)
	_, err = f.photos.Add(f.ctx, b.ID, dto.CreatePhotoRequest{FilePath: "/images/own.jpg"})
	require.NoError(t, err)

	require.NoError(t, f.items.Delete(f.ctx, b.ID))
	assert.Equal(t, []string{"/images/own.jpg"}, f.files.removed)
}
