package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/thrift-inventory/internal/domain"
	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
	"github.com/jhoicas/thrift-inventory/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

var itemColumns = []string{
	"item_id", "department_id", "category_id", "item_type_id", "brand", "size_id",
	"color_primary_id", "color_secondary_id", "material", "condition_id", "status_id",
	"current_location_id", "price", "original_price", "on_sale", "sale_price", "description",
	"internal_notes", "customer_notes", "season", "date_added", "date_sold", "version",
}

var itemSelectList = "i." + strings.Join(itemColumns, ", i.")

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para ítems. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(
		&it.ID, &it.DepartmentID, &it.CategoryID, &it.ItemTypeID, &it.Brand, &it.SizeID,
		&it.ColorPrimaryID, &it.ColorSecondaryID, &it.Material, &it.ConditionID, &it.StatusID,
		&it.CurrentLocationID, &it.Price, &it.OriginalPrice, &it.OnSale, &it.SalePrice, &it.Description,
		&it.InternalNotes, &it.CustomerNotes, &it.Season, &it.DateAdded, &it.DateSold, &it.Version,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *ItemRepo) queryItems(ctx context.Context, query string, args ...any) ([]*entity.Item, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	list := make([]*entity.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// List aplica filtros, orden y paginación. El total se calcula antes de paginar.
func (r *ItemRepo) List(ctx context.Context, f repository.ItemFilter) ([]*entity.Item, int, error) {
	countSQL, countArgs, listSQL, listArgs := buildItemList(f)
	var total int
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}
	list, err := r.queryItems(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	return list, total, nil
}

func (r *ItemRepo) get(ctx context.Context, id int64, lock bool) (*entity.Item, error) {
	query := "SELECT " + itemSelectList + " FROM items i WHERE i.item_id = $1"
	if lock {
		query += " FOR UPDATE"
	}
	it, err := scanItem(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	if it.TagIDs, err = r.tagIDs(ctx, id); err != nil {
		return nil, err
	}
	return it, nil
}

// GetByID devuelve (nil, nil) si no existe. Incluye TagIDs.
func (r *ItemRepo) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate obtiene el ítem y bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
func (r *ItemRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Item, error) {
	return r.get(ctx, id, true)
}

// ListForUpdate bloquea en orden de id los ítems existentes de ids. No carga tags.
func (r *ItemRepo) ListForUpdate(ctx context.Context, ids []int64) ([]*entity.Item, error) {
	if len(ids) == 0 {
		return []*entity.Item{}, nil
	}
	query := "SELECT " + itemSelectList + " FROM items i WHERE i.item_id = ANY($1) ORDER BY i.item_id FOR UPDATE"
	list, err := r.queryItems(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("lock items: %w", err)
	}
	return list, nil
}

// Create inserta el ítem; date_added toma now() si viene vacío. Asigna ID, DateAdded y Version.
func (r *ItemRepo) Create(ctx context.Context, it *entity.Item) error {
	var dateAdded *time.Time
	if !it.DateAdded.IsZero() {
		dateAdded = &it.DateAdded
	}
	query := `
		INSERT INTO items (department_id, category_id, item_type_id, brand, size_id, color_primary_id,
			color_secondary_id, material, condition_id, status_id, current_location_id, price, original_price,
			on_sale, sale_price, description, internal_notes, customer_notes, season, date_added, date_sold)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19,
			COALESCE($20::timestamptz, now()), $21)
		RETURNING item_id, date_added, version`
	err := r.q.QueryRow(ctx, query,
		it.DepartmentID, it.CategoryID, it.ItemTypeID, it.Brand, it.SizeID, it.ColorPrimaryID,
		it.ColorSecondaryID, it.Material, it.ConditionID, it.StatusID, it.CurrentLocationID, it.Price, it.OriginalPrice,
		it.OnSale, it.SalePrice, it.Description, it.InternalNotes, it.CustomerNotes, it.Season, dateAdded, it.DateSold,
	).Scan(&it.ID, &it.DateAdded, &it.Version)
	if err != nil {
		return mapWriteError("insert item", err)
	}
	return nil
}

// Update persiste todos los campos si la versión coincide e incrementa item.Version.
func (r *ItemRepo) Update(ctx context.Context, it *entity.Item) error {
	query := `
		UPDATE items SET department_id = $2, category_id = $3, item_type_id = $4, brand = $5, size_id = $6,
			color_primary_id = $7, color_secondary_id = $8, material = $9, condition_id = $10, status_id = $11,
			current_location_id = $12, price = $13, original_price = $14, on_sale = $15, sale_price = $16,
			description = $17, internal_notes = $18, customer_notes = $19, season = $20, date_sold = $21,
			version = version + 1
		WHERE item_id = $1 AND version = $22
		RETURNING version`
	err := r.q.QueryRow(ctx, query,
		it.ID, it.DepartmentID, it.CategoryID, it.ItemTypeID, it.Brand, it.SizeID,
		it.ColorPrimaryID, it.ColorSecondaryID, it.Material, it.ConditionID, it.StatusID,
		it.CurrentLocationID, it.Price, it.OriginalPrice, it.OnSale, it.SalePrice,
		it.Description, it.InternalNotes, it.CustomerNotes, it.Season, it.DateSold,
		it.Version,
	).Scan(&it.Version)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return mapWriteError("update item", err)
	}
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM items WHERE item_id = $1)`, it.ID).Scan(&exists); err != nil {
		return fmt.Errorf("check item: %w", err)
	}
	if !exists {
		return domain.NewNotFound("Item")
	}
	return fmt.Errorf("item %d version %d: %w", it.ID, it.Version, domain.ErrConflict)
}

// Delete elimina el ítem; fotos, historial y tags caen en cascada.
func (r *ItemRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM items WHERE item_id = $1`, id)
	if err != nil {
		return false, mapWriteError("delete item", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ReplaceTags reemplaza el conjunto de tags. Solo se insertan los tags que existen.
func (r *ItemRepo) ReplaceTags(ctx context.Context, itemID int64, tagIDs []int64) ([]int64, error) {
	if _, err := r.q.Exec(ctx, `DELETE FROM item_tags WHERE item_id = $1`, itemID); err != nil {
		return nil, fmt.Errorf("clear tags: %w", err)
	}
	if len(tagIDs) > 0 {
		_, err := r.q.Exec(ctx, `
			INSERT INTO item_tags (item_id, tag_id)
			SELECT $1, tag_id FROM tags WHERE tag_id = ANY($2)
			ON CONFLICT DO NOTHING`, itemID, tagIDs)
		if err != nil {
			return nil, mapWriteError("insert tags", err)
		}
	}
	return r.tagIDs(ctx, itemID)
}

func (r *ItemRepo) tagIDs(ctx context.Context, itemID int64) ([]int64, error) {
	rows, err := r.q.Query(ctx, `SELECT tag_id FROM item_tags WHERE item_id = $1 ORDER BY tag_id`, itemID)
	if err != nil {
		return nil, fmt.Errorf("list item tags: %w", err)
	}
	defer rows.Close()
	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan tag id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// TagsByItems devuelve los tags de cada ítem, ordenados por nombre.
func (r *ItemRepo) TagsByItems(ctx context.Context, itemIDs []int64) (map[int64][]entity.Tag, error) {
	out := make(map[int64][]entity.Tag, len(itemIDs))
	if len(itemIDs) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx, `
		SELECT it.item_id, t.tag_id, t.tag_name, t.tag_category, t.description, t.active
		FROM item_tags it JOIN tags t ON t.tag_id = it.tag_id
		WHERE it.item_id = ANY($1)
		ORDER BY t.tag_name, t.tag_id`, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("tags by items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var itemID int64
		var t entity.Tag
		if err := rows.Scan(&itemID, &t.ID, &t.Name, &t.Category, &t.Description, &t.Active); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		out[itemID] = append(out[itemID], t)
	}
	return out, rows.Err()
}
