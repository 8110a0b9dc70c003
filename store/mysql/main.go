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

package mysql

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/czcorpus/fast-align/store"

	_ "github.com/go-sql-driver/mysql" // load the driver
)

// Writer is a store.Store backed by a MySQL/MariaDB database, addressed
// by a plain DSN rather than the discrete host/user/password fields the
// teacher's configuration used, since a translation table has no
// corpus-grouping or self-join concerns to configure around.
type Writer struct {
	DSN      string
	database *sql.DB
	tx       *sql.Tx
	stmt     *sql.Stmt
}

// New returns a store.Store backed by the MySQL/MariaDB database dsn
// addresses.
func New(dsn string) (store.Store, error) {
	return &Writer{DSN: dsn}, nil
}

func (w *Writer) Initialize() error {
	database, err := sql.Open("mysql", w.DSN)
	if err != nil {
		return fmt.Errorf("failed to open translation table db: %s", err)
	}
	w.database = database

	if _, err := w.database.Exec("DROP TABLE IF EXISTS translation"); err != nil {
		return fmt.Errorf("failed to drop table 'translation': %s", err)
	}
	if _, err := w.database.Exec(
		"CREATE TABLE translation (source VARCHAR(255), target VARCHAR(255), log_prob DOUBLE, INDEX(source))"); err != nil {
		return fmt.Errorf("failed to create table 'translation': %s", err)
	}

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
	return w.tx.Commit()
}

func (w *Writer) Close() error {
	if err := w.database.Close(); err != nil {
		log.Warn().Err(err).Msg("error closing database")
		return err
	}
	return nil
}
