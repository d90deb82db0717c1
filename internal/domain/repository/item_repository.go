package repository

import (
	"context"

	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	// List aplica filtros, orden y paginación. El total se calcula antes de paginar.
	List(ctx context.Context, f ItemFilter) ([]*entity.Item, int, error)
	// GetByID devuelve (nil, nil) si no existe. Incluye TagIDs.
	GetByID(ctx context.Context, id int64) (*entity.Item, error)
	// GetForUpdate igual que GetByID pero bloquea la fila hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id int64) (*entity.Item, error)
	// ListForUpdate bloquea y devuelve los ítems existentes de ids, ordenados por id. Los ids sin ítem se ignoran.
	ListForUpdate(ctx context.Context, ids []int64) ([]*entity.Item, error)
	// Create asigna ID, DateAdded y Version=1.
	Create(ctx context.Context, item *entity.Item) error
	// Update persiste todos los campos si item.Version coincide con la almacenada; luego incrementa item.Version.
	// Devuelve domain.ErrConflict si la versión no coincide.
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id int64) (bool, error)
	// ReplaceTags reemplaza el conjunto de tags del ítem. Los tags inexistentes se ignoran;
	// devuelve los ids que quedaron asociados, ordenados.
	ReplaceTags(ctx context.Context, itemID int64, tagIDs []int64) ([]int64, error)
	// TagsByItems devuelve los tags de cada ítem, ordenados por nombre.
	TagsByItems(ctx context.Context, itemIDs []int64) (map[int64][]entity.Tag, error)
}

// HistoryRepository puerto del historial. Solo inserción y lectura: las entradas son inmutables.
type HistoryRepository interface {
	Create(ctx context.Context, entry *entity.HistoryEntry) error
	// ListByItem ordena de la más reciente a la más antigua (empate por id descendente). limit <= 0 devuelve todas.
	ListByItem(ctx context.Context, itemID int64, limit, offset int) ([]*entity.HistoryEntry, error)
}

// PhotoRepository puerto de las fotos de ítems.
type PhotoRepository interface {
	// ListByItem ordena por sort_order y luego id.
	ListByItem(ctx context.Context, itemID int64) ([]*entity.Photo, error)
	ListByItems(ctx context.Context, itemIDs []int64) (map[int64][]*entity.Photo, error)
	GetByID(ctx context.Context, id int64) (*entity.Photo, error)
	Create(ctx context.Context, photo *entity.Photo) error
	Update(ctx context.Context, photo *entity.Photo) error
	Delete(ctx context.Context, id int64) (bool, error)
	// ClearPrimary quita la marca primaria de las demás fotos del ítem.
	ClearPrimary(ctx context.Context, itemID, exceptPhotoID int64) error
	// CountByFilePath cuenta las fotos (de cualquier ítem) que apuntan a filePath.
	CountByFilePath(ctx context.Context, filePath string) (int, error)
}
