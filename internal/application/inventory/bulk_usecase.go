package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/thrift-inventory/internal/application/dto"
	"github.com/jhoicas/thrift-inventory/internal/domain"
	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
	invdomain "github.com/jhoicas/thrift-inventory/internal/domain/inventory"
	"github.com/jhoicas/thrift-inventory/pkg/logger"
)

// Operaciones masivas reportadas a métricas.
const (
	BulkOpStatus   = "status"
	BulkOpLocation = "location"
	BulkOpPrice    = "price"
	BulkOpDelete   = "delete"
)

// BulkUseCase aplica una misma mutación a una lista de ítems en una sola transacción.
// Los ids inexistentes se ignoran; el conteo devuelto es el de ítems encontrados.
// Las filas se bloquean en orden de id para evitar deadlocks entre lotes concurrentes.
type BulkUseCase struct {
	tx      TxRunner
	storage PhotoStorage
	metrics Metrics
	log     *logger.Logger
	now     func() time.Time
}

// NewBulkUseCase construye el caso de uso. storage puede ser nil.
func NewBulkUseCase(tx TxRunner, storage PhotoStorage, metrics Metrics, log *logger.Logger) *BulkUseCase {
	return &BulkUseCase{
		tx:      tx,
		storage: storage,
		metrics: metricsOrNoop(metrics),
		log:     logger.OrNop(log).Named("bulk"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// UpdateStatus asigna status_id a cada ítem y escribe una entrada Status_Changed por ítem, aunque el estado no cambie.
func (uc *BulkUseCase) UpdateStatus(ctx context.Context, in dto.BulkStatusRequest) (int, error) {
	if err := dto.Validate(in); err != nil {
		return 0, err
	}
	count := 0
	var hl *historyLog
	err := uc.tx.Run(ctx, func(repos TxRepos) error {
		hl = newHistoryLog(repos.History)
		status, err := repos.Catalog.Statuses.GetByID(ctx, in.StatusID)
		if err != nil {
			return err
		}
		if status == nil {
			return domain.NewValidationError("status_id", "status not found")
		}
		items, err := repos.Items.ListForUpdate(ctx, uniqueIDs(in.ItemIDs))
		if err != nil {
			return fmt.Errorf("lock items: %w", err)
		}
		now := uc.now()
		for _, it := range items {
			old := it.StatusID
			it.StatusID = in.StatusID
			if err := repos.Items.Update(ctx, it); err != nil {
				return fmt.Errorf("update item %d: %w", it.ID, err)
			}
			if err := hl.append(ctx, invdomain.StatusChangedEntry(it.ID, old, in.StatusID, in.Notes, now)); err != nil {
				return err
			}
		}
		count = len(items)
		return nil
	})
	if err != nil {
		return 0, err
	}
	hl.flush(uc.metrics)
	uc.metrics.BulkApplied(BulkOpStatus, count)
	return count, nil
}

// UpdateLocation asigna current_location_id y escribe una entrada Location_Changed por ítem.
func (uc *BulkUseCase) UpdateLocation(ctx context.Context, in dto.BulkLocationRequest) (int, error) {
	if err := dto.Validate(in); err != nil {
		return 0, err
	}
	count := 0
	var hl *historyLog
	err := uc.tx.Run(ctx, func(repos TxRepos) error {
		hl = newHistoryLog(repos.History)
		loc, err := repos.Catalog.Locations.GetByID(ctx, in.LocationID)
		if err != nil {
			return err
		}
		if loc == nil {
			return domain.NewValidationError("location_id", "location not found")
		}
		items, err := repos.Items.ListForUpdate(ctx, uniqueIDs(in.ItemIDs))
		if err != nil {
			return fmt.Errorf("lock items: %w", err)
		}
		now := uc.now()
		for _, it := range items {
			old := it.CurrentLocationID
			target := in.LocationID
			it.CurrentLocationID = &target
			if err := repos.Items.Update(ctx, it); err != nil {
				return fmt.Errorf("update item %d: %w", it.ID, err)
			}
			if err := hl.append(ctx, invdomain.LocationChangedEntry(it.ID, old, in.LocationID, in.Notes, now)); err != nil {
				return err
			}
		}
		count = len(items)
		return nil
	})
	if err != nil {
		return 0, err
	}
	hl.flush(uc.metrics)
	uc.metrics.BulkApplied(BulkOpLocation, count)
	return count, nil
}

// UpdatePrice aplica los campos de precio enviados. Sin campos, cuenta los ítems y no escribe nada.
func (uc *BulkUseCase) UpdatePrice(ctx context.Context, in dto.BulkPriceRequest) (int, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	change := invdomain.PriceChange{Price: in.Price, OnSale: in.OnSale, SalePrice: in.SalePrice}
	count := 0
	var hl *historyLog
	err := uc.tx.Run(ctx, func(repos TxRepos) error {
		hl = newHistoryLog(repos.History)
		items, err := repos.Items.ListForUpdate(ctx, uniqueIDs(in.ItemIDs))
		if err != nil {
			return fmt.Errorf("lock items: %w", err)
		}
		count = len(items)
		if change.Empty() {
			return nil
		}
		now := uc.now()
		for _, it := range items {
			entry := invdomain.ApplyPriceChange(it, change, now)
			if err := repos.Items.Update(ctx, it); err != nil {
				return fmt.Errorf("update item %d: %w", it.ID, err)
			}
			if err := hl.append(ctx, entry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	hl.flush(uc.metrics)
	uc.metrics.BulkApplied(BulkOpPrice, count)
	return count, nil
}

// Delete borra cada ítem existente; los ids ya borrados o inexistentes no cuentan.
// Los archivos de fotos sin otras referencias se borran tras el commit.
func (uc *BulkUseCase) Delete(ctx context.Context, in dto.BulkDeleteRequest) (int, error) {
	if err := dto.Validate(in); err != nil {
		return 0, err
	}
	ids := uniqueIDs(in.ItemIDs)
	count := 0
	var orphans []string
	err := uc.tx.Run(ctx, func(repos TxRepos) error {
		count = 0
		photos, err := repos.Photos.ListByItems(ctx, ids)
		if err != nil {
			return fmt.Errorf("list photos: %w", err)
		}
		for _, id := range ids {
			ok, err := repos.Items.Delete(ctx, id)
			if err != nil {
				return fmt.Errorf("delete item %d: %w", id, err)
			}
			if ok {
				count++
			}
		}
		var deleted []*entity.Photo
		for _, ps := range photos {
			deleted = append(deleted, ps...)
		}
		orphans, err = unreferencedFiles(ctx, repos.Photos, deleted)
		return err
	})
	if err != nil {
		return 0, err
	}
	removeFiles(ctx, uc.storage, uc.log, orphans)
	uc.metrics.BulkApplied(BulkOpDelete, count)
	return count, nil
}

// uniqueIDs quita duplicados conservando el primer orden de aparición.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
