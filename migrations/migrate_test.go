// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_NilDB(t *testing.T) {
	applied, err := Migrate(context.Background(), nil)
	require.Error(t, err)
	assert.Nil(t, applied)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_DatabaseFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// any statement goose issues fails
	mock.MatchExpectationsInOrder(false)
	mock.ExpectExec(".*").WillReturnError(errors.New("connection reset"))
	mock.ExpectQuery(".*").WillReturnError(errors.New("connection reset"))

	applied, err := Migrate(context.Background(), db)
	require.Error(t, err)
	assert.Nil(t, applied)
	assert.Contains(t, err.Error(), "migration error")
}

func TestEmbeddedMigrations_WorksTable(t *testing.T) {
	data, err := embedMigrations.ReadFile("00001_create_works.sql")
	require.NoError(t, err)

	sql := string(data)
	for _, want := range []string{"-- +goose Up", "CREATE TABLE IF NOT EXISTS works", "-- +goose Down"} {
		assert.Contains(t, sql, want)
	}
}
