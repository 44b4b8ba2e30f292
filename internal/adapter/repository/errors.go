package repository

import (
	"errors"

	"github.com/hugohenrick/bizit/internal/domain/apperr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE tratados pelos repositórios
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeInvalidText          = "22P02"
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// notFoundOr converte linha ausente ou ID malformado em apperr.ErrNotFound
func notFoundOr(err error, format string, args ...interface{}) error {
	if errors.Is(err, pgx.ErrNoRows) || pgCode(err) == codeInvalidText {
		return apperr.NotFound(format, args...)
	}
	return err
}

// mapTxError traduz falhas de serialização e deadlock em conflito de concorrência
func mapTxError(err error) error {
	if err == nil {
		return nil
	}
	switch pgCode(err) {
	case codeSerializationFailure, codeDeadlockDetected:
		return apperr.Concurrency(err, "conflito de concorrência no banco de dados")
	case codeUniqueViolation:
		return apperr.Wrap(apperr.KindValidation, err, "registro duplicado")
	case codeForeignKeyViolation:
		return apperr.Wrap(apperr.KindNotFound, err, "registro relacionado não encontrado")
	}
	return err
}
