// Copyright 2026 The fast-align-go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sqlite

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/czcorpus/fast-align/store"

	_ "github.com/mattn/go-sqlite3" // load the driver
)

// Writer is a store.Store backed by a sqlite3 file.
type Writer struct {
	Path     string
	database *sql.DB
	tx       *sql.Tx
	stmt     *sql.Stmt
}

// New returns a store.Store backed by the sqlite3 file at path.
func New(path string) (store.Store, error) {
	return &Writer{Path: path}, nil
}

func (w *Writer) Initialize() error {
	existed := fileExists(w.Path)
	database, err := sql.Open("sqlite3", w.Path)
	if err != nil {
		return fmt.Errorf("failed to open translation table db: %s", err)
	}
	w.database = database

	if existed {
		log.Info().Str("path", w.Path).Msg("translation table db already exists, dropping table")
		if _, err := w.database.Exec("DROP TABLE IF EXISTS translation"); err != nil {
			return fmt.Errorf("failed to drop table 'translation': %s", err)
		}
	}
	if _, err := w.database.Exec(
		"CREATE TABLE translation (source TEXT, target TEXT, log_prob REAL)"); err != nil {
		return fmt.Errorf("failed to create table 'translation': %s", err)
	}
	w.database.Exec("PRAGMA synchronous = OFF")
	w.database.Exec("PRAGMA journal_mode = MEMORY")

	w.tx, err = w.database.Begin()
	if err != nil {
		return err
	}
	w.stmt, err = w.tx.Prepare("INSERT INTO translation (source, target, log_prob) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare INSERT: %s", err)
	}
	return nil
}

func (w *Writer) PutCell(source, target string, logProb float64) error {
	if w.stmt == nil {
		return fmt.Errorf("cannot write cell - store not initialized")
	}
	_, err := w.stmt.Exec(source, target, logProb)
	return err
}

func (w *Writer) Commit() error {
	if err := w.stmt.Close(); err != nil {
		return err
	}
	if err := w.tx.Commit(); err != nil {
		return err
	}
	_, err := w.database.Exec("CREATE INDEX translation_source_idx ON translation(source)")
	return err
}

func (w *Writer) Close() error {
	return w.database.Close()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
