package migrations

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
)

// ErrApplyMigration возвращается при ошибке применения миграции
var ErrApplyMigration = errors.New("migrations: failed to apply migration")

//go:embed *.sql
var files embed.FS

// Apply выполняет все *.sql файлы по порядку имён
// Миграции идемпотентны, поэтому повторный запуск безопасен
func Apply(ctx context.Context, db dbmetrics.DBExecutor) error {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return fmt.Errorf("%w: list files: %v", ErrApplyMigration, err)
	}
	sort.Strings(names)

	for _, name := range names {
		script, err := files.ReadFile(name)
		if err != nil {
			return fmt.Errorf("%w: read %s: %v", ErrApplyMigration, name, err)
		}
		if _, err := db.ExecContext(ctx, string(script)); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrApplyMigration, name, err)
		}
	}

	return nil
}
