package inventory

import (
	"context"
	"io"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/thrift-inventory/internal/domain/repository"
)

// TxRepos repositorios atados a una misma unidad de trabajo (transacción de BD o snapshot en memoria).
type TxRepos struct {
	Items   repository.ItemRepository
	History repository.HistoryRepository
	Photos  repository.PhotoRepository
	Catalog repository.Catalog
}

// TxRunner ejecuta fn dentro de una transacción. Si fn devuelve error se hace rollback; si no, commit.
// Garantiza que un ítem y sus entradas de historial se persistan juntos o no se persistan.
// View ejecuta lecturas sobre una única instantánea: fn ve un estado consistente y no debe escribir.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
	View(ctx context.Context, fn func(repos TxRepos) error) error
}

// PhotoStorage almacena el binario de las fotos subidas. Save devuelve la ruta pública (ej. /images/12_levis_<uuid>.jpg).
type PhotoStorage interface {
	Save(ctx context.Context, itemID int64, label string, r io.Reader) (string, error)
	// Remove borra el archivo de una ruta pública. Las rutas que no le pertenecen se ignoran.
	Remove(ctx context.Context, filePath string) error
}

// PriceTag datos impresos en la etiqueta de precio de un ítem.
type PriceTag struct {
	StoreName     string
	ItemID        int64
	Description   string
	Brand         string
	Department    string
	Category      string
	ItemType      string
	Size          string
	Color         string
	Condition     string
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal
	OnSale        bool
	SalePrice     *decimal.Decimal
	QRContent     string
}

// PriceTagRenderer genera el documento imprimible (PDF) de una etiqueta.
type PriceTagRenderer interface {
	Render(tag PriceTag) ([]byte, error)
}

// Metrics contadores de negocio. Lo implementa pkg/metrics; nil equivale a no registrar nada.
type Metrics interface {
	HistoryRecorded(action string)
	BulkApplied(operation string, items int)
}

type noopMetrics struct{}

func (noopMetrics) HistoryRecorded(string)  {}
func (noopMetrics) BulkApplied(string, int) {}

func metricsOrNoop(m Metrics) Metrics {
	if m == nil {
		return noopMetrics{}
	}
	return m
}
