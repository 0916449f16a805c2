// Package duckdb stores GWAS summary statistics in a DuckDB database, so
// large result sets can be imported once and plotted repeatedly with
// different filters.
package duckdb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/statgen/gwasplot/internal/gwas"
)

// Store manages a DuckDB connection holding summary statistics.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS gwas_results (
		study VARCHAR,
		chrom VARCHAR,
		snp VARCHAR,
		p DOUBLE,
		PRIMARY KEY (study, snp, chrom)
	)`)
	return err
}

// WriteRecords appends records under the given study name.
func (s *Store) WriteRecords(study string, records []gwas.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO gwas_results (study, chrom, snp, p) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(study, r.Chrom, r.SNP, r.P); err != nil {
			return fmt.Errorf("insert %s: %w", r.SNP, err)
		}
	}

	return tx.Commit()
}

// Records reads all records for a study back out, optionally keeping only
// p-values at or below maxP (pass 1 to keep everything).
func (s *Store) Records(study string, maxP float64) ([]gwas.Record, error) {
	rows, err := s.db.Query(
		`SELECT chrom, snp, p FROM gwas_results WHERE study = ? AND p <= ? ORDER BY chrom, snp`,
		study, maxP)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []gwas.Record
	for rows.Next() {
		var r gwas.Record
		if err := rows.Scan(&r.Chrom, &r.SNP, &r.P); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// Studies lists the distinct study names present in the store.
func (s *Store) Studies() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT study FROM gwas_results ORDER BY study`)
	if err != nil {
		return nil, fmt.Errorf("query studies: %w", err)
	}
	defer rows.Close()

	var studies []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan study: %w", err)
		}
		studies = append(studies, name)
	}

	return studies, rows.Err()
}

// Count returns the number of records stored for a study.
func (s *Store) Count(study string) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM gwas_results WHERE study = ?`, study).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}
