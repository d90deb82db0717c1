package inventory

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jhoicas/thrift-inventory/internal/application/dto"
	"github.com/jhoicas/thrift-inventory/internal/domain"
	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
	invdomain "github.com/jhoicas/thrift-inventory/internal/domain/inventory"
	"github.com/jhoicas/thrift-inventory/pkg/logger"
)

// PhotoUseCase fotos de ítems: alta por ruta, subida de archivo, PATCH y borrado.
// Marcar una foto como primaria desmarca las demás del mismo ítem en la misma transacción.
type PhotoUseCase struct {
	tx      TxRunner
	repos   TxRepos
	storage PhotoStorage
	metrics Metrics
	log     *logger.Logger
	now     func() time.Time
}

// NewPhotoUseCase construye el caso de uso. Sin storage, Upload devuelve error.
func NewPhotoUseCase(tx TxRunner, repos TxRepos, storage PhotoStorage, metrics Metrics, log *logger.Logger) *PhotoUseCase {
	return &PhotoUseCase{
		tx:      tx,
		repos:   repos,
		storage: storage,
		metrics: metricsOrNoop(metrics),
		log:     logger.OrNop(log).Named("photos"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// List fotos del ítem ordenadas por sort_order.
func (uc *PhotoUseCase) List(ctx context.Context, itemID int64) ([]dto.PhotoResponse, error) {
	var photos []*entity.Photo
	err := uc.tx.View(ctx, func(repos TxRepos) error {
		item, err := repos.Items.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.NewNotFound("Item")
		}
		photos, err = repos.Photos.ListByItem(ctx, itemID)
		if err != nil {
			return fmt.Errorf("list photos: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.PhotoResponse, 0, len(photos))
	for _, p := range photos {
		out = append(out, dto.NewPhotoResponse(p))
	}
	return out, nil
}

// Add registra una foto cuyo archivo ya existe en file_path.
func (uc *PhotoUseCase) Add(ctx context.Context, itemID int64, in dto.CreatePhotoRequest) (*dto.PhotoResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	return uc.add(ctx, itemID, &entity.Photo{
		ItemID:    itemID,
		FilePath:  in.FilePath,
		IsPrimary: in.IsPrimary,
		SortOrder: in.SortOrderOrDefault(),
	})
}

// Upload guarda el binario (validado y re-codificado por el storage) y registra la foto.
// Si el registro falla, el archivo se borra.
func (uc *PhotoUseCase) Upload(ctx context.Context, itemID int64, r io.Reader, isPrimary bool, sortOrder int) (*dto.PhotoResponse, error) {
	if uc.storage == nil {
		return nil, fmt.Errorf("photo storage not configured")
	}
	if sortOrder < 0 {
		return nil, domain.NewValidationError("sort_order", "must be greater than or equal to 0")
	}
	item, err := uc.repos.Items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NewNotFound("Item")
	}
	label := item.Description
	if item.Brand != nil && *item.Brand != "" {
		label = *item.Brand
	}
	path, err := uc.storage.Save(ctx, itemID, label, r)
	if err != nil {
		return nil, err
	}
	out, err := uc.add(ctx, itemID, &entity.Photo{
		ItemID:    itemID,
		FilePath:  path,
		IsPrimary: isPrimary,
		SortOrder: sortOrder,
	})
	if err != nil {
		if rmErr := uc.storage.Remove(ctx, path); rmErr != nil {
			uc.log.Warn().Err(rmErr).Str("file_path", path).Msg("no se pudo borrar el archivo huérfano")
		}
		return nil, err
	}
	return out, nil
}

func (uc *PhotoUseCase) add(ctx context.Context, itemID int64, photo *entity.Photo) (*dto.PhotoResponse, error) {
	var hl *historyLog
	err := uc.tx.Run(ctx, func(repos TxRepos) error {
		hl = newHistoryLog(repos.History)
		item, err := repos.Items.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.NewNotFound("Item")
		}
		photo.UploadedDate = uc.now()
		if err := repos.Photos.Create(ctx, photo); err != nil {
			return fmt.Errorf("create photo: %w", err)
		}
		if photo.IsPrimary {
			if err := repos.Photos.ClearPrimary(ctx, itemID, photo.ID); err != nil {
				return fmt.Errorf("clear primary: %w", err)
			}
		}
		return hl.append(ctx, invdomain.PhotoEntry(itemID, entity.HistoryActionPhotoAdded, photo.FilePath, photo.UploadedDate))
	})
	if err != nil {
		return nil, err
	}
	hl.flush(uc.metrics)
	out := dto.NewPhotoResponse(photo)
	return &out, nil
}

// Update PATCH de una foto.
func (uc *PhotoUseCase) Update(ctx context.Context, photoID int64, in dto.UpdatePhotoRequest) (*dto.PhotoResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	var photo *entity.Photo
	err := uc.tx.Run(ctx, func(repos TxRepos) error {
		var err error
		photo, err = repos.Photos.GetByID(ctx, photoID)
		if err != nil {
			return err
		}
		if photo == nil {
			return domain.NewNotFound("Photo")
		}
		if in.FilePath != nil {
			photo.FilePath = *in.FilePath
		}
		if in.IsPrimary != nil {
			photo.IsPrimary = *in.IsPrimary
		}
		if in.SortOrder != nil {
			photo.SortOrder = *in.SortOrder
		}
		if err := repos.Photos.Update(ctx, photo); err != nil {
			return fmt.Errorf("update photo: %w", err)
		}
		if photo.IsPrimary {
			if err := repos.Photos.ClearPrimary(ctx, photo.ItemID, photo.ID); err != nil {
				return fmt.Errorf("clear primary: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.NewPhotoResponse(photo)
	return &out, nil
}

// Delete borra la foto y registra Photo_Removed. Tras el commit borra el archivo
// solo si ninguna otra foto lo referencia.
func (uc *PhotoUseCase) Delete(ctx context.Context, photoID int64) error {
	var orphans []string
	var hl *historyLog
	err := uc.tx.Run(ctx, func(repos TxRepos) error {
		hl = newHistoryLog(repos.History)
		photo, err := repos.Photos.GetByID(ctx, photoID)
		if err != nil {
			return err
		}
		if photo == nil {
			return domain.NewNotFound("Photo")
		}
		if _, err := repos.Photos.Delete(ctx, photoID); err != nil {
			return fmt.Errorf("delete photo: %w", err)
		}
		if err := hl.append(ctx, invdomain.PhotoEntry(photo.ItemID, entity.HistoryActionPhotoRemoved, photo.FilePath, uc.now())); err != nil {
			return err
		}
		orphans, err = unreferencedFiles(ctx, repos.Photos, []*entity.Photo{photo})
		return err
	})
	if err != nil {
		return err
	}
	hl.flush(uc.metrics)
	removeFiles(ctx, uc.storage, uc.log, orphans)
	return nil
}
