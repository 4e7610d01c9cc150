// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	preferencesTable = "preferences"
	nameColumn       = "name"
	valueColumn      = "value"
)

// placeholders returns the bind-variable format of dialect.
func placeholders(dialect string) (sq.PlaceholderFormat, error) {
	switch dialect {
	case DialectSQLite:
		return sq.Question, nil
	case DialectPostgres:
		return sq.Dollar, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}
}

// buildGetValueQuery builds the SELECT of a single preference value.
func buildGetValueQuery(dialect, name string) (string, []any, error) {
	format, err := placeholders(dialect)
	if err != nil {
		return "", nil, err
	}

	query, args, err := sq.Select(valueColumn).
		From(preferencesTable).
		Where(sq.Eq{nameColumn: name}).
		PlaceholderFormat(format).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpsertValueQuery builds an INSERT that replaces the value of an
// existing preference. Both SQLite and PostgreSQL accept the ON CONFLICT
// clause.
func buildUpsertValueQuery(dialect, name, value string) (string, []any, error) {
	format, err := placeholders(dialect)
	if err != nil {
		return "", nil, err
	}

	query, args, err := sq.Insert(preferencesTable).
		Columns(nameColumn, valueColumn).
		Values(name, value).
		Suffix("ON CONFLICT (" + nameColumn + ") DO UPDATE SET " + valueColumn + " = EXCLUDED." + valueColumn).
		PlaceholderFormat(format).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
