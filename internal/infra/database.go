package infra

import (
	"fmt"

	"inventaris/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and configures the
// pool. TranslateError maps driver errors onto gorm.ErrDuplicatedKey /
// gorm.ErrForeignKeyViolated so services never inspect SQLSTATE codes.
// Schema bootstrap is NOT run here — call Migrate explicitly (it is a
// first-class operation, also invoked from tests).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return db, nil
}

// Migrate creates or updates the produk/stok/karyawan tables and applies the
// SQL patches AutoMigrate cannot express. Idempotent: safe to re-run on an
// already-provisioned schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Produk{},
		&model.Stok{},
		&model.Karyawan{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate may skip on existing
// databases. Each statement is guarded by an existence check so re-running on
// an already-patched schema is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		// Older deployments created the stok→produk FK without ON DELETE CASCADE;
		// product deletes must cascade to the stock row.
		{"recreate fk_stok_produk with cascade", `
DO $$ BEGIN
  IF EXISTS (SELECT 1 FROM pg_constraint c
             WHERE c.conrelid = to_regclass('stok') AND c.conname = 'fk_stok_produk'
               AND c.confdeltype <> 'c') THEN
    ALTER TABLE stok DROP CONSTRAINT fk_stok_produk;
  END IF;
  IF NOT EXISTS (SELECT 1 FROM pg_constraint
                 WHERE conrelid = to_regclass('stok') AND conname = 'fk_stok_produk') THEN
    ALTER TABLE stok
      ADD CONSTRAINT fk_stok_produk
      FOREIGN KEY (kode_produk) REFERENCES produk(kode_produk) ON DELETE CASCADE;
  END IF;
END $$`},
		// trigram-free substring search still benefits from lower() btree indexes
		// for the common exact-prefix case
		{"index lower(nama) on produk", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_produk_nama_lower') THEN
    CREATE INDEX idx_produk_nama_lower ON produk (lower(nama));
  END IF;
END $$`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
