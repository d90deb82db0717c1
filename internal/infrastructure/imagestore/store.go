// Package imagestore guarda en disco las fotos subidas, normalizadas a JPEG.
package imagestore

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"golang.org/x/image/draw"

	"github.com/jhoicas/thrift-inventory/internal/application/inventory"
	"github.com/jhoicas/thrift-inventory/internal/domain"
	"github.com/jhoicas/thrift-inventory/pkg/config"
	"github.com/jhoicas/thrift-inventory/pkg/logger"
)

var _ inventory.PhotoStorage = (*Store)(nil)

const maxSlugLen = 40

// Formatos aceptados, detectados por contenido y no por la cabecera del cliente.
var allowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// Store implementa inventory.PhotoStorage sobre un directorio local.
type Store struct {
	dir       string
	urlPrefix string
	maxDim    int
	quality   int
	log       *logger.Logger
}

// New crea el directorio si no existe.
func New(cfg config.ImagesConfig, log *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("imagestore: crear %s: %w", cfg.Dir, err)
	}
	return &Store{
		dir:       cfg.Dir,
		urlPrefix: strings.TrimSuffix(cfg.URLPrefix, "/"),
		maxDim:    cfg.MaxDimension,
		quality:   cfg.JPEGQuality,
		log:       logger.OrNop(log).Named("imagestore"),
	}, nil
}

// Dir directorio servido como estático.
func (s *Store) Dir() string { return s.dir }

// Save decodifica la imagen, la reduce si supera el lado máximo y la escribe como JPEG.
// El nombre es {itemID}_{slug(label)}_{uuid}.jpg.
func (s *Store) Save(ctx context.Context, itemID int64, label string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := Process(r, s.maxDim, s.quality)
	if err != nil {
		return "", err
	}
	name := FileName(itemID, label, uuid.NewString())
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("imagestore: escribir %s: %w", name, err)
	}
	s.log.Debug().Int64("item_id", itemID).Str("file", name).Int("bytes", len(data)).Msg("foto guardada")
	return s.urlPrefix + "/" + name, nil
}

// Remove borra el archivo de una ruta servida por este store. Un archivo ya ausente no es error.
func (s *Store) Remove(ctx context.Context, filePath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name, ok := s.ownedName(filePath)
	if !ok {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("imagestore: borrar %s: %w", name, err)
	}
	return nil
}

func (s *Store) ownedName(filePath string) (string, bool) {
	rest, ok := strings.CutPrefix(filePath, s.urlPrefix+"/")
	if !ok || rest == "" || strings.Contains(rest, "/") || rest != path.Clean(rest) || strings.HasPrefix(rest, ".") {
		return "", false
	}
	return rest, true
}

// FileName arma el nombre del archivo. label vacío o sin caracteres útiles se reemplaza por "item".
func FileName(itemID int64, label, id string) string {
	stem := slug.Make(label)
	if len(stem) > maxSlugLen {
		stem = strings.Trim(stem[:maxSlugLen], "-")
	}
	if stem == "" {
		stem = "item"
	}
	return fmt.Sprintf("%d_%s_%s.jpg", itemID, stem, id)
}

// Process valida el formato, reduce la imagen a maxDim y la recodifica como JPEG.
// Un contenido que no es imagen devuelve un error de validación sobre el campo file.
func Process(r io.Reader, maxDim, quality int) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("imagestore: leer imagen: %w", err)
	}
	if detected := http.DetectContentType(data); !allowedMIME[detected] {
		return nil, domain.NewValidationError("file", "unsupported image format: "+detected)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, domain.NewValidationError("file", "invalid image")
	}
	img = downscale(img, maxDim)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("imagestore: codificar jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// downscale conserva la proporción; devuelve img sin cambios si ya cabe.
func downscale(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxDim <= 0 || (w <= maxDim && h <= maxDim) {
		return img
	}
	nw, nh := maxDim, maxDim
	if w > h {
		nh = max(1, h*maxDim/w)
	} else {
		nw = max(1, w*maxDim/h)
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
