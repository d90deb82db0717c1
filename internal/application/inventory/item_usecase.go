package inventory

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jhoicas/thrift-inventory/internal/application/dto"
	"github.com/jhoicas/thrift-inventory/internal/domain"
	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
	invdomain "github.com/jhoicas/thrift-inventory/internal/domain/inventory"
	"github.com/jhoicas/thrift-inventory/internal/domain/repository"
	"github.com/jhoicas/thrift-inventory/pkg/logger"
)

// ItemUseCase casos de uso de ítems: listado, detalle, alta, PATCH con historial y borrado.
// Las mutaciones corren en una transacción (Run) y las lecturas en una instantánea (View).
type ItemUseCase struct {
	tx      TxRunner
	storage PhotoStorage
	metrics Metrics
	log     *logger.Logger
	now     func() time.Time
}

// NewItemUseCase construye el caso de uso. storage puede ser nil (sin archivos que limpiar al borrar).
func NewItemUseCase(tx TxRunner, storage PhotoStorage, metrics Metrics, log *logger.Logger) *ItemUseCase {
	return &ItemUseCase{
		tx:      tx,
		storage: storage,
		metrics: metricsOrNoop(metrics),
		log:     logger.OrNop(log).Named("items"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// List aplica filtros, orden y paginación. sort_by desconocido cae en date_added.
func (uc *ItemUseCase) List(ctx context.Context, q dto.ItemListQuery) (*dto.ItemListResponse, error) {
	q.Defaults()
	if err := q.Validate(); err != nil {
		return nil, err
	}
	f := repository.ItemFilter{
		DepartmentID:   q.DepartmentID,
		CategoryID:     q.CategoryID,
		ItemTypeID:     q.ItemTypeID,
		Brand:          nonEmpty(q.Brand),
		SizeID:         q.SizeID,
		ColorPrimaryID: q.ColorPrimaryID,
		ConditionID:    q.ConditionID,
		StatusID:       q.StatusID,
		LocationID:     q.LocationID,
		MinPrice:       q.MinPrice,
		MaxPrice:       q.MaxPrice,
		OnSale:         q.OnSale,
		Season:         nonEmpty(q.Season),
		Search:         nonEmpty(q.Search),
		TagIDs:         q.TagIDs,
		SortBy:         repository.ResolveItemSortKey(q.SortBy),
		SortDesc:       q.SortOrder == "desc",
		Limit:          q.PageSize,
		Offset:         pageOffset(q.Page, q.PageSize),
	}
	var out []dto.ItemResponse
	var total int
	err := uc.tx.View(ctx, func(repos TxRepos) error {
		items, n, err := repos.Items.List(ctx, f)
		if err != nil {
			return fmt.Errorf("list items: %w", err)
		}
		total = n
		out, err = loadRelations(ctx, repos, items)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &dto.ItemListResponse{
		Items:        out,
		PageResponse: dto.NewPageResponse(total, q.Page, q.PageSize),
	}, nil
}

// Get devuelve el ítem con relaciones e historial completo (más reciente primero).
func (uc *ItemUseCase) Get(ctx context.Context, id int64) (*dto.ItemDetailResponse, error) {
	var out *dto.ItemDetailResponse
	err := uc.tx.View(ctx, func(repos TxRepos) error {
		item, err := repos.Items.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.NewNotFound("Item")
		}
		rel, err := loadRelations(ctx, repos, []*entity.Item{item})
		if err != nil {
			return err
		}
		entries, err := repos.History.ListByItem(ctx, id, 0, 0)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		out = &dto.ItemDetailResponse{ItemResponse: rel[0], History: make([]dto.HistoryResponse, 0, len(entries))}
		for _, h := range entries {
			out.History = append(out.History, dto.NewHistoryResponse(h))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create valida referencias, inserta el ítem y sus tags y registra la entrada "Created" en la misma transacción.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	item := in.ToEntity()
	var out dto.ItemResponse
	var hl *historyLog
	err := uc.tx.Run(ctx, func(repos TxRepos) error {
		hl = newHistoryLog(repos.History)
		if err := checkReferences(ctx, repos.Catalog, item); err != nil {
			return err
		}
		if err := repos.Items.Create(ctx, item); err != nil {
			return fmt.Errorf("create item: %w", err)
		}
		if len(in.TagIDs) > 0 {
			tags, err := repos.Items.ReplaceTags(ctx, item.ID, in.TagIDs)
			if err != nil {
				return fmt.Errorf("set tags: %w", err)
			}
			item.TagIDs = tags
		}
		if err := hl.append(ctx, invdomain.CreatedEntry(item, uc.now())); err != nil {
			return err
		}
		rel, err := loadRelations(ctx, repos, []*entity.Item{item})
		if err != nil {
			return err
		}
		out = rel[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	hl.flush(uc.metrics)
	return &out, nil
}

// Update aplica un PATCH bloqueando la fila antes de comparar, de modo que el historial describe
// la transición realmente aplicada. Sin cambios efectivos no escribe nada.
func (uc *ItemUseCase) Update(ctx context.Context, id int64, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out dto.ItemResponse
	var hl *historyLog
	err := uc.tx.Run(ctx, func(repos TxRepos) error {
		hl = newHistoryLog(repos.History)
		item, err := repos.Items.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.NewNotFound("Item")
		}
		if in.Version != nil && *in.Version != item.Version {
			return fmt.Errorf("item %d at version %d, got %d: %w", id, item.Version, *in.Version, domain.ErrConflict)
		}

		var diff invdomain.Diff
		refsTouched := applyItemPatch(item, &in, &diff)
		if refsTouched {
			if err := checkReferences(ctx, repos.Catalog, item); err != nil {
				return err
			}
		}
		if in.TagIDs != nil {
			before := item.TagIDs
			after, err := repos.Items.ReplaceTags(ctx, item.ID, *in.TagIDs)
			if err != nil {
				return fmt.Errorf("set tags: %w", err)
			}
			diff.Add("tags", invdomain.FormatTagSet(before), invdomain.FormatTagSet(after))
			item.TagIDs = after
		}

		if diff.Len() > 0 {
			if err := repos.Items.Update(ctx, item); err != nil {
				return fmt.Errorf("update item: %w", err)
			}
			if err := hl.append(ctx, invdomain.UpdatedEntry(item.ID, diff, uc.now())); err != nil {
				return err
			}
		}
		rel, err := loadRelations(ctx, repos, []*entity.Item{item})
		if err != nil {
			return err
		}
		out = rel[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	hl.flush(uc.metrics)
	return &out, nil
}

// Delete elimina el ítem; fotos, historial y tags caen en cascada.
// Tras el commit se borran los archivos que ninguna otra foto referencia.
func (uc *ItemUseCase) Delete(ctx context.Context, id int64) error {
	var orphans []string
	err := uc.tx.Run(ctx, func(repos TxRepos) error {
		photos, err := repos.Photos.ListByItem(ctx, id)
		if err != nil {
			return err
		}
		ok, err := repos.Items.Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		if !ok {
			return domain.NewNotFound("Item")
		}
		orphans, err = unreferencedFiles(ctx, repos.Photos, photos)
		return err
	})
	if err != nil {
		return err
	}
	removeFiles(ctx, uc.storage, uc.log, orphans)
	return nil
}

// History lista el historial del ítem, más reciente primero.
func (uc *ItemUseCase) History(ctx context.Context, id int64, page dto.PageRequest) ([]dto.HistoryResponse, error) {
	page.DefaultPage()
	if err := dto.Validate(page); err != nil {
		return nil, err
	}
	var entries []*entity.HistoryEntry
	err := uc.tx.View(ctx, func(repos TxRepos) error {
		item, err := repos.Items.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.NewNotFound("Item")
		}
		entries, err = repos.History.ListByItem(ctx, id, page.Limit, page.Skip)
		if err != nil {
			return fmt.Errorf("list history: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.HistoryResponse, 0, len(entries))
	for _, h := range entries {
		out = append(out, dto.NewHistoryResponse(h))
	}
	return out, nil
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

// ── PATCH campo a campo ──────────────────────────────────────────────────────

// applyItemPatch aplica los campos presentes y registra en diff los que cambian.
// Devuelve true si se tocó alguna FK (hay que revalidar referencias).
func applyItemPatch(it *entity.Item, in *dto.UpdateItemRequest, d *invdomain.Diff) bool {
	refs := false
	refs = setID(d, "department_id", &it.DepartmentID, in.DepartmentID) || refs
	refs = setID(d, "category_id", &it.CategoryID, in.CategoryID) || refs
	refs = setID(d, "item_type_id", &it.ItemTypeID, in.ItemTypeID) || refs
	setOptString(d, "brand", &it.Brand, in.Brand)
	refs = setID(d, "size_id", &it.SizeID, in.SizeID) || refs
	refs = setID(d, "color_primary_id", &it.ColorPrimaryID, in.ColorPrimaryID) || refs
	refs = setOptID(d, "color_secondary_id", &it.ColorSecondaryID, in.ColorSecondaryID) || refs
	setOptString(d, "material", &it.Material, in.Material)
	refs = setID(d, "condition_id", &it.ConditionID, in.ConditionID) || refs
	refs = setID(d, "status_id", &it.StatusID, in.StatusID) || refs
	refs = setOptID(d, "current_location_id", &it.CurrentLocationID, in.CurrentLocationID) || refs
	if in.Price != nil {
		d.Add("price", invdomain.FormatDecimal(it.Price), invdomain.FormatDecimal(*in.Price))
		it.Price = *in.Price
	}
	if in.OriginalPrice.Set {
		d.Add("original_price", invdomain.FormatOptDecimal(it.OriginalPrice), invdomain.FormatOptDecimal(in.OriginalPrice.Value))
		it.OriginalPrice = in.OriginalPrice.Value
	}
	if in.OnSale != nil {
		d.Add("on_sale", invdomain.FormatBool(it.OnSale), invdomain.FormatBool(*in.OnSale))
		it.OnSale = *in.OnSale
	}
	if in.SalePrice.Set {
		d.Add("sale_price", invdomain.FormatOptDecimal(it.SalePrice), invdomain.FormatOptDecimal(in.SalePrice.Value))
		it.SalePrice = in.SalePrice.Value
	}
	if in.Description != nil {
		d.Add("description", it.Description, *in.Description)
		it.Description = *in.Description
	}
	setOptString(d, "internal_notes", &it.InternalNotes, in.InternalNotes)
	setOptString(d, "customer_notes", &it.CustomerNotes, in.CustomerNotes)
	setOptString(d, "season", &it.Season, in.Season)
	if in.DateSold.Set {
		d.Add("date_sold", invdomain.FormatOptTime(it.DateSold), invdomain.FormatOptTime(in.DateSold.Value))
		it.DateSold = in.DateSold.Value
	}
	return refs
}

func setID(d *invdomain.Diff, field string, dst *int64, v *int64) bool {
	if v == nil {
		return false
	}
	changed := d.Add(field, invdomain.FormatID(*dst), invdomain.FormatID(*v))
	*dst = *v
	return changed
}

func setOptID(d *invdomain.Diff, field string, dst **int64, v dto.Nullable[int64]) bool {
	if !v.Set {
		return false
	}
	changed := d.Add(field, invdomain.FormatOptID(*dst), invdomain.FormatOptID(v.Value))
	*dst = v.Value
	return changed
}

func setOptString(d *invdomain.Diff, field string, dst **string, v dto.Nullable[string]) {
	if !v.Set {
		return
	}
	d.Add(field, invdomain.FormatOptString(*dst), invdomain.FormatOptString(v.Value))
	*dst = v.Value
}

// pageOffset (page-1)*size, saturado en math.MaxInt para páginas que desbordan int.
func pageOffset(page, size int) int {
	if page <= 1 || size <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/size {
		return math.MaxInt
	}
	return (page - 1) * size
}
