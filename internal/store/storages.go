package store

import (
	"context"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
)

// Storages aggregates every persistence backend the application uses: the
// catalog item repository and the uploaded image store.
type Storages struct {
	ItemRepository ItemRepository
	ImageStorage   ImageStorage

	// db is kept for connection lifecycle management (Close on shutdown).
	db *DB
}

// NewStorages connects to the database, bootstraps the schema, prepares the
// uploads directory, and wires the repositories together.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	images, err := NewImageStorage(cfg.Files, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		ItemRepository: NewItemRepository(db, log),
		ImageStorage:   images,
		db:             db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
