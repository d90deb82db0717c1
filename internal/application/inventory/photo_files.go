package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/thrift-inventory/internal/domain/entity"
	"github.com/jhoicas/thrift-inventory/internal/domain/repository"
	"github.com/jhoicas/thrift-inventory/pkg/logger"
)

// unreferencedFiles devuelve las rutas de deleted que ya no usa ninguna foto.
// Se llama dentro de la transacción, después de borrar las filas.
func unreferencedFiles(ctx context.Context, photos repository.PhotoRepository, deleted []*entity.Photo) ([]string, error) {
	seen := make(map[string]bool, len(deleted))
	var out []string
	for _, p := range deleted {
		if seen[p.FilePath] {
			continue
		}
		seen[p.FilePath] = true
		n, err := photos.CountByFilePath(ctx, p.FilePath)
		if err != nil {
			return nil, fmt.Errorf("count photo references: %w", err)
		}
		if n == 0 {
			out = append(out, p.FilePath)
		}
	}
	return out, nil
}

// removeFiles borra los archivos tras el commit. Un fallo solo se registra: la fila ya no existe.
func removeFiles(ctx context.Context, storage PhotoStorage, log *logger.Logger, paths []string) {
	if storage == nil {
		return
	}
	for _, p := range paths {
		if err := storage.Remove(ctx, p); err != nil && !errors.Is(err, context.Canceled) {
			log.Warn().Err(err).Str("file_path", p).Msg("no se pudo borrar el archivo de la foto")
		}
	}
}
