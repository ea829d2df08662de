// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
)

// memoryDSN opens a private in-memory database without touching the
// extension repository.
const memoryDSN = ":memory:?autoinstall_known_extensions=false&autoload_known_extensions=false"

// OpenDuckDB opens an in-memory DuckDB database and checks that it answers.
func OpenDuckDB(ctx context.Context) (*sql.DB, error) {
	conn, err := sql.Open("duckdb", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}

	// One connection keeps every statement on the same in-memory catalog.
	conn.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to ping duckdb: %w", err)
	}
	return conn, nil
}

// readCSV returns a read_csv table expression for path with every column
// read as text.
func readCSV(path string) string {
	return fmt.Sprintf("read_csv(%s, header=true, all_varchar=true)", quoteLiteral(path))
}

// quoteLiteral renders s as a SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close() //nolint:errcheck // cleanup is best-effort
	}
}
