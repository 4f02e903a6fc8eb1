package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrInvalidItemData is returned when an INSERT of a catalog item is
	// rejected by a database constraint (e.g. a NULL name or price),
	// indicating the item failed validation at the persistence boundary.
	ErrInvalidItemData = errors.New("invalid item data")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan shop item rows")
)

// File storage errors returned by [ImageStorage] implementations.
var (
	// ErrSavingImage is returned when an uploaded image cannot be written
	// to the uploads directory.
	ErrSavingImage = errors.New("failed to save uploaded image")
)
