package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// unique_violation en la tabla de códigos de error de PostgreSQL.
const codeUniqueViolation = "23505"

// isUniqueViolation reporta si err proviene de una violación de constraint
// único: sku o code duplicado, email ya registrado o número de documento
// repetido. Los repositorios lo traducen a los sentinelas de dominio.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
