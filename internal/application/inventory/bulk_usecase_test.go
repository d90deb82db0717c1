package inventory_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/thrift-inventory/internal/application/dto"
	"github.com/jhoicas/thrift-inventory/internal/application/inventory"
	"github.com/jhoicas/thrift-inventory/internal/domain"
	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
)

func TestBulkStatus_IgnoresMissingIDs(t *testing.T) {
	f := newFixture(t)
	a := f.createItem(t, "10")
	b := f.createItem(t, "12")

	n, err := f.bulk.UpdateStatus(f.ctx, dto.BulkStatusRequest{
		ItemIDs:  []int64{a.ID, 999, b.ID, a.ID},
		StatusID: f.ids.sold,
		Notes:    strPtr("Weekend sale"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, id := range []int64{a.ID, b.ID} {
		got, err := f.items.Get(f.ctx, id)
		require.NoError(t, err)
		assert.Equal(t, f.ids.sold, got.StatusID)
		require.Len(t, got.History, 2)
		h := got.History[0]
		assert.Equal(t, entity.HistoryActionStatusChanged, h.Action)
		assert.Equal(t, "1", *h.OldValue)
		assert.Equal(t, "2", *h.NewValue)
		assert.Equal(t, "Weekend sale", *h.Notes)
	}
	assert.Equal(t, 2, f.metrics.bulk[inventory.BulkOpStatus])
	assert.Equal(t, 2, f.metrics.history[entity.HistoryActionStatusChanged])
}

func TestBulkStatus_SameStatusStillWritesHistory(t *testing.T) {
	f := newFixture(t)
	a := f.createItem(t, "10")

	n, err := f.bulk.UpdateStatus(f.ctx, dto.BulkStatusRequest{ItemIDs: []int64{a.ID}, StatusID: f.ids.available})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	hist := f.history(t, a.ID)
	require.Len(t, hist, 2)
	assert.Equal(t, "1", *hist[0].OldValue)
	assert.Equal(t, "1", *hist[0].NewValue)
	assert.Nil(t, hist[0].Notes)
}

func TestBulkStatus_UnknownStatus(t *testing.T) {
	f := newFixture(t)
	a := f.createItem(t, "10")

	_, err := f.bulk.UpdateStatus(f.ctx, dto.BulkStatusRequest{ItemIDs: []int64{a.ID}, StatusID: 77})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve), "got %v", err)
	assert.Contains(t, ve.Fields, "status_id")
	assert.Len(t, f.history(t, a.ID), 1)
}

func TestBulkStatus_RequiresItemIDs(t *testing.T) {
	f := newFixture(t)
	_, err := f.bulk.UpdateStatus(f.ctx, dto.BulkStatusRequest{StatusID: f.ids.sold})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBulkLocation(t *testing.T) {
	f := newFixture(t)
	a := f.createItem(t, "10")
	b := f.createItem(t, "10", func(in *dto.CreateItemRequest) { in.CurrentLocationID = &f.ids.floor })

	n, err := f.bulk.UpdateLocation(f.ctx, dto.BulkLocationRequest{ItemIDs: []int64{a.ID, b.ID}, LocationID: f.ids.storage})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	ha := f.history(t, a.ID)[0]
	assert.Equal(t, entity.HistoryActionLocationChanged, ha.Action)
	assert.Equal(t, "None", *ha.OldValue)
	assert.Equal(t, "2", *ha.NewValue)

	hb := f.history(t, b.ID)[0]
	assert.Equal(t, "1", *hb.OldValue)

	got, err := f.items.Get(f.ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CurrentLocation)
	assert.Equal(t, "Back Storage", got.CurrentLocation.Name)
}

func TestBulkPrice_CombinedEntry(t *testing.T) {
	f := newFixture(t)
	a := f.createItem(t, "20")

	sale := decimal.RequireFromString("12.5")
	n, err := f.bulk.UpdatePrice(f.ctx, dto.BulkPriceRequest{
		ItemIDs:   []int64{a.ID, 500},
		Price:     decPtr("18"),
		OnSale:    boolPtr(true),
		SalePrice: &sale,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	h := f.history(t, a.ID)[0]
	assert.Equal(t, entity.HistoryActionPriceChanged, h.Action)
	assert.Equal(t, "price: 20.0 -> 18.0; on_sale: true; sale_price: 12.5", *h.OldValue)
	assert.Equal(t, "Bulk price update", *h.NewValue)
	assert.Equal(t, "Bulk operation", *h.Notes)

	got, err := f.items.Get(f.ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(18)))
	assert.True(t, got.OnSale)
	require.NotNil(t, got.SalePrice)
	assert.True(t, got.SalePrice.Equal(sale))
}

func TestBulkPrice_NoFieldsOnlyCounts(t *testing.T) {
	f := newFixture(t)
	a := f.createItem(t, "20")

	n, err := f.bulk.UpdatePrice(f.ctx, dto.BulkPriceRequest{ItemIDs: []int64{a.ID}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Len(t, f.history(t, a.ID), 1)
}

func TestBulkPrice_RejectsNegative(t *testing.T) {
	f := newFixture(t)
	_, err := f.bulk.UpdatePrice(f.ctx, dto.BulkPriceRequest{ItemIDs: []int64{1}, Price: decPtr("-3")})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "price")
}

func TestBulkDelete_CountsOnlyExisting(t *testing.T) {
	f := newFixture(t)
	a := f.createItem(t, "10")
	b := f.createItem(t, "10")

	n, err := f.bulk.Delete(f.ctx, dto.BulkDeleteRequest{ItemIDs: []int64{a.ID, b.ID, b.ID, 404}, Reason: strPtr("damaged")})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = f.bulk.Delete(f.ctx, dto.BulkDeleteRequest{ItemIDs: []int64{a.ID}})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, 2, f.metrics.bulk[inventory.BulkOpDelete])
}

func TestBulkDelete_RemovesUploadedFiles(t *testing.T) {
	f := newFixture(t)
	a := f.createItem(t, "10")
	b := f.createItem(t, "10")
	keep := f.createItem(t, "10")
	up, err := f.photos.Upload(f.ctx, a.ID, strings.NewReader("binary"), true, 1)
	require.NoError(t, err)
	_, err = f.photos.Add(f.ctx, b.ID, dto.CreatePhotoRequest{FilePath: "/images/shared.jpg"})
	require.NoError(t, err)
	_, err = f.photos.Add(f.ctx, keep.ID, dto.CreatePhotoRequest{FilePath: "/images/shared.jpg"})
	require.NoError(t, err)

	n, err := f.bulk.Delete(f.ctx, dto.BulkDeleteRequest{ItemIDs: []int64{a.ID, b.ID}})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{up.FilePath}, f.files.removed)
}
