package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"petregistry/pkg/storage"

	"github.com/pressly/goose/v3"
)

// Migrate applies every pending goose migration found in dir of fsys.
func (p *PgSQL) Migrate(ctx context.Context, fsys fs.FS, dir string) error {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return fmt.Errorf("could not migrate: %w", storage.ErrAlreadyInTx)
	}

	goose.SetBaseFS(fsys)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect to postgres: %w", err)
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("could not migrate pgsql: %w", err)
	}

	return nil
}
