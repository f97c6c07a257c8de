package schemagen

import "github.com/reoring/schemagen/schemaerr"

// Error is the single error type returned by every stage.
type Error = schemaerr.Error

// Sentinels for errors.Is.
var (
	ErrSchemaShape           = schemaerr.ErrSchemaShape
	ErrSchemaCycle           = schemaerr.ErrSchemaCycle
	ErrPropertyConflict      = schemaerr.ErrPropertyConflict
	ErrPropertyNameCollision = schemaerr.ErrPropertyNameCollision
	ErrHintConfig            = schemaerr.ErrHintConfig
	ErrEnumHintCountMismatch = schemaerr.ErrEnumHintCountMismatch
	ErrOutputConflict        = schemaerr.ErrOutputConflict
	ErrNameCollision         = schemaerr.ErrNameCollision
	ErrSettings              = schemaerr.ErrSettings
)

// AsError extracts the *Error carried by err.
func AsError(err error) (*Error, bool) { return schemaerr.As(err) }
