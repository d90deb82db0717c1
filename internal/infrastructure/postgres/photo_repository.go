package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
	"github.com/jhoicas/thrift-inventory/internal/domain/repository"
)

var _ repository.PhotoRepository = (*PhotoRepo)(nil)

const photoSelect = `SELECT photo_id, item_id, file_path, is_primary, sort_order, uploaded_date FROM item_photos`

// PhotoRepo fotos de ítems sobre PostgreSQL.
type PhotoRepo struct {
	q Querier
}

// NewPhotoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPhotoRepository(q Querier) *PhotoRepo {
	return &PhotoRepo{q: q}
}

func scanPhoto(row pgx.Row) (*entity.Photo, error) {
	var p entity.Photo
	if err := row.Scan(&p.ID, &p.ItemID, &p.FilePath, &p.IsPrimary, &p.SortOrder, &p.UploadedDate); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByItem ordena por sort_order y luego id.
func (r *PhotoRepo) ListByItem(ctx context.Context, itemID int64) ([]*entity.Photo, error) {
	m, err := r.ListByItems(ctx, []int64{itemID})
	if err != nil {
		return nil, err
	}
	if m[itemID] == nil {
		return []*entity.Photo{}, nil
	}
	return m[itemID], nil
}

// ListByItems fotos de varios ítems en una consulta.
func (r *PhotoRepo) ListByItems(ctx context.Context, itemIDs []int64) (map[int64][]*entity.Photo, error) {
	out := make(map[int64][]*entity.Photo, len(itemIDs))
	if len(itemIDs) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx, photoSelect+` WHERE item_id = ANY($1) ORDER BY sort_order, photo_id`, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		out[p.ItemID] = append(out[p.ItemID], p)
	}
	return out, rows.Err()
}

// GetByID devuelve (nil, nil) si no existe.
func (r *PhotoRepo) GetByID(ctx context.Context, id int64) (*entity.Photo, error) {
	p, err := scanPhoto(r.q.QueryRow(ctx, photoSelect+` WHERE photo_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get photo: %w", err)
	}
	return p, nil
}

// Create inserta la foto; uploaded_date toma now() si viene vacío.
func (r *PhotoRepo) Create(ctx context.Context, p *entity.Photo) error {
	var uploaded *time.Time
	if !p.UploadedDate.IsZero() {
		uploaded = &p.UploadedDate
	}
	err := r.q.QueryRow(ctx, `
		INSERT INTO item_photos (item_id, file_path, is_primary, sort_order, uploaded_date)
		VALUES ($1, $2, $3, $4, COALESCE($5::timestamptz, now()))
		RETURNING photo_id, uploaded_date`,
		p.ItemID, p.FilePath, p.IsPrimary, p.SortOrder, uploaded,
	).Scan(&p.ID, &p.UploadedDate)
	if err != nil {
		return mapWriteError("insert photo", err)
	}
	return nil
}

// Update reescribe ruta, marca primaria y orden.
func (r *PhotoRepo) Update(ctx context.Context, p *entity.Photo) error {
	_, err := r.q.Exec(ctx, `
		UPDATE item_photos SET file_path = $2, is_primary = $3, sort_order = $4 WHERE photo_id = $1`,
		p.ID, p.FilePath, p.IsPrimary, p.SortOrder)
	if err != nil {
		return mapWriteError("update photo", err)
	}
	return nil
}

// Delete devuelve false si no existía.
func (r *PhotoRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM item_photos WHERE photo_id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete photo: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ClearPrimary quita la marca primaria de las demás fotos del ítem.
func (r *PhotoRepo) ClearPrimary(ctx context.Context, itemID, exceptPhotoID int64) error {
	_, err := r.q.Exec(ctx, `
		UPDATE item_photos SET is_primary = FALSE
		WHERE item_id = $1 AND photo_id <> $2 AND is_primary`, itemID, exceptPhotoID)
	if err != nil {
		return fmt.Errorf("clear primary photo: %w", err)
	}
	return nil
}

func (r *PhotoRepo) CountByFilePath(ctx context.Context, filePath string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM item_photos WHERE file_path = $1`, filePath).Scan(&n); err != nil {
		return 0, fmt.Errorf("count photos by path: %w", err)
	}
	return n, nil
}
