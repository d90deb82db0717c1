package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/thrift-inventory/internal/domain"
	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
	"github.com/jhoicas/thrift-inventory/internal/domain/repository"
)

var _ repository.PhotoRepository = (*PhotoRepo)(nil)

// PhotoRepo fotos en memoria.
type PhotoRepo struct {
	c *conn
}

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

func (r *PhotoRepo) ListByItems(ctx context.Context, itemIDs []int64) (map[int64][]*entity.Photo, error) {
	out := make(map[int64][]*entity.Photo, len(itemIDs))
	err := r.c.do(ctx, func(st *state) error {
		want := make(map[int64]bool, len(itemIDs))
		for _, id := range itemIDs {
			want[id] = true
		}
		for _, p := range st.photos {
			if want[p.ItemID] {
				p := p
				out[p.ItemID] = append(out[p.ItemID], &p)
			}
		}
		for _, list := range out {
			sort.Slice(list, func(i, j int) bool {
				if list[i].SortOrder != list[j].SortOrder {
					return list[i].SortOrder < list[j].SortOrder
				}
				return list[i].ID < list[j].ID
			})
		}
		return nil
	})
	return out, err
}

func (r *PhotoRepo) GetByID(ctx context.Context, id int64) (*entity.Photo, error) {
	var out *entity.Photo
	err := r.c.do(ctx, func(st *state) error {
		if p, ok := st.photos[id]; ok {
			out = &p
		}
		return nil
	})
	return out, err
}

func (r *PhotoRepo) Create(ctx context.Context, p *entity.Photo) error {
	return r.c.do(ctx, func(st *state) error {
		if _, ok := st.items[p.ItemID]; !ok {
			return fmt.Errorf("insert photo: %w", domain.ErrIntegrity)
		}
		p.ID = st.nextID("item_photos")
		if p.UploadedDate.IsZero() {
			p.UploadedDate = time.Now().UTC()
		}
		st.photos[p.ID] = *p
		return nil
	})
}

func (r *PhotoRepo) Update(ctx context.Context, p *entity.Photo) error {
	return r.c.do(ctx, func(st *state) error {
		if _, ok := st.photos[p.ID]; ok {
			st.photos[p.ID] = *p
		}
		return nil
	})
}

func (r *PhotoRepo) Delete(ctx context.Context, id int64) (bool, error) {
	deleted := false
	err := r.c.do(ctx, func(st *state) error {
		if _, ok := st.photos[id]; ok {
			delete(st.photos, id)
			deleted = true
		}
		return nil
	})
	return deleted, err
}

func (r *PhotoRepo) ClearPrimary(ctx context.Context, itemID, exceptPhotoID int64) error {
	return r.c.do(ctx, func(st *state) error {
		for id, p := range st.photos {
			if p.ItemID == itemID && id != exceptPhotoID && p.IsPrimary {
				p.IsPrimary = false
				st.photos[id] = p
			}
		}
		return nil
	})
}

func (r *PhotoRepo) CountByFilePath(ctx context.Context, filePath string) (int, error) {
	n := 0
	err := r.c.do(ctx, func(st *state) error {
		for _, p := range st.photos {
			if p.FilePath == filePath {
				n++
			}
		}
		return nil
	})
	return n, err
}
