package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/thrift-inventory/internal/domain"
	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
)

// PriceTagUseCase genera la etiqueta de precio imprimible de un ítem.
type PriceTagUseCase struct {
	repos     TxRepos
	renderer  PriceTagRenderer
	storeName string
}

// NewPriceTagUseCase construye el caso de uso.
func NewPriceTagUseCase(repos TxRepos, renderer PriceTagRenderer, storeName string) *PriceTagUseCase {
	return &PriceTagUseCase{repos: repos, renderer: renderer, storeName: storeName}
}

// QRContent contenido del código QR de la etiqueta: identifica el ítem para el escáner de caja.
func QRContent(itemID int64) string {
	return fmt.Sprintf("item:%d", itemID)
}

// Render devuelve el PDF de la etiqueta del ítem.
func (uc *PriceTagUseCase) Render(ctx context.Context, itemID int64) ([]byte, error) {
	item, err := uc.repos.Items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NewNotFound("Item")
	}
	rel, err := loadRelations(ctx, uc.repos, []*entity.Item{item})
	if err != nil {
		return nil, err
	}
	r := rel[0]
	tag := PriceTag{
		StoreName:     uc.storeName,
		ItemID:        item.ID,
		Description:   item.Description,
		Price:         item.Price,
		OriginalPrice: item.OriginalPrice,
		OnSale:        item.OnSale,
		SalePrice:     item.SalePrice,
		QRContent:     QRContent(item.ID),
	}
	if item.Brand != nil {
		tag.Brand = *item.Brand
	}
	if r.Department != nil {
		tag.Department = r.Department.Name
	}
	if r.Category != nil {
		tag.Category = r.Category.Name
	}
	if r.ItemType != nil {
		tag.ItemType = r.ItemType.Name
	}
	if r.Size != nil {
		tag.Size = r.Size.Value
	}
	if r.ColorPrimary != nil {
		colors := []string{r.ColorPrimary.Name}
		if r.ColorSecondary != nil {
			colors = append(colors, r.ColorSecondary.Name)
		}
		tag.Color = strings.Join(colors, " / ")
	}
	if r.Condition != nil {
		tag.Condition = r.Condition.Name
	}
	pdf, err := uc.renderer.Render(tag)
	if err != nil {
		return nil, fmt.Errorf("render price tag: %w", err)
	}
	return pdf, nil
}
