package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const itemColumns = "item_id, name, price, description, image_url, created_at"

// itemRepository is the PostgreSQL-backed implementation of [ItemRepository].
// It executes all catalog operations against the "shop_items" table using
// the embedded [*DB] connection.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

// itemFilterConjunction translates an [models.ItemFilter] into squirrel
// predicates. Zero-valued filter fields contribute nothing; MinPrice and
// MaxPrice are inclusive and combinable; the name match is a
// case-insensitive substring (ILIKE with surrounding wildcards).
func itemFilterConjunction(filter models.ItemFilter) squirrel.And {
	conj := squirrel.And{}
	if filter.MinPrice != nil {
		conj = append(conj, squirrel.GtOrEq{"price": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		conj = append(conj, squirrel.LtOrEq{"price": *filter.MaxPrice})
	}
	if filter.Name != "" {
		conj = append(conj, squirrel.ILike{"name": "%" + filter.Name + "%"})
	}
	return conj
}

// CreateItem persists a new catalog item and returns the fully populated
// [models.ShopItem] with server-assigned fields (ItemID, CreatedAt).
//
// The INSERT returns all columns via a RETURNING clause, so the caller
// receives the canonical database representation of the created item.
// Optional fields (description, image path) are stored as NULL when empty.
//
// Error handling:
//   - PostgreSQL not_null/check violation → [ErrInvalidItemData].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *itemRepository) CreateItem(ctx context.Context, item models.ShopItem) (models.ShopItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Insert(item.TableName()).
		Columns("name", "price", "description", "image_url").
		Values(item.Name, item.Price, nullableString(item.Description), nullableString(item.ImageURL)).
		Suffix("RETURNING " + itemColumns).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error building insert query")
		return models.ShopItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.NotNullViolation, pgerrcode.CheckViolation:
			return models.ShopItem{}, ErrInvalidItemData
		default:
			return models.ShopItem{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	created, err := scanItem(row)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error: scanning error")
		return models.ShopItem{}, err
	}

	return created, nil
}

// FindItems retrieves the page of catalog items matching filter.
//
// Results are ordered by item_id, which preserves insertion order — the
// store-default ordering the listing endpoint documents. Limit and offset
// are applied verbatim; the caller is responsible for validating them.
func (r *itemRepository) FindItems(ctx context.Context, filter models.ItemFilter, limit, offset int) ([]models.ShopItem, error) {
	log := logger.FromContext(ctx)

	builder := psql.
		Select("item_id", "name", "price", "description", "image_url", "created_at").
		From(models.ShopItem{}.TableName()).
		OrderBy("item_id").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	if conj := itemFilterConjunction(filter); len(conj) > 0 {
		builder = builder.Where(conj)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.FindItems").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.FindItems").Msg("error executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.ShopItem, 0, limit)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			log.Err(err).Str("func", "*itemRepository.FindItems").Msg("error scanning item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*itemRepository.FindItems").Msg("error iterating item rows")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return items, nil
}

// CountItems returns the total number of catalog items matching filter.
// The same predicates as [itemRepository.FindItems] are applied so that
// pagination metadata stays consistent with the returned page.
func (r *itemRepository) CountItems(ctx context.Context, filter models.ItemFilter) (int64, error) {
	log := logger.FromContext(ctx)

	builder := psql.
		Select("count(*)").
		From(models.ShopItem{}.TableName())

	if conj := itemFilterConjunction(filter); len(conj) > 0 {
		builder = builder.Where(conj)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.CountItems").Msg("error building count query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&count); err != nil {
		log.Err(err).Str("func", "*itemRepository.CountItems").Msg("error scanning count")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanItem reads one shop_items row, converting NULL description/image_url
// columns to empty strings.
func scanItem(row rowScanner) (models.ShopItem, error) {
	var item models.ShopItem
	var description, imageURL sql.NullString

	if err := row.Scan(&item.ItemID, &item.Name, &item.Price, &description, &imageURL, &item.CreatedAt); err != nil {
		return models.ShopItem{}, err
	}

	item.Description = description.String
	item.ImageURL = imageURL.String

	return item, nil
}

// nullableString maps an empty string to SQL NULL.
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
