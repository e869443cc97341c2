package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "idx_productos_descarga_activa"})

	assert.True(t, IsUniqueViolation(err))
	assert.True(t, IsUniqueViolation(err, "idx_productos_descarga_activa"))
	assert.False(t, IsUniqueViolation(err, "idx_tanques_nombre"))
	assert.False(t, IsForeignKeyViolation(err))
	assert.False(t, IsUniqueViolation(errors.New("23505")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	err := &pgconn.PgError{Code: "23503", ConstraintName: "fk_proveedores_camiones"}

	assert.True(t, IsForeignKeyViolation(err))
	assert.True(t, IsForeignKeyViolation(err, "fk_proveedores_camiones"))
	assert.False(t, IsUniqueViolation(err))
}
