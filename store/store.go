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

// Package store provides an optional database sink for the final
// translation table, as an alternative to (or in addition to) the flat
// file format align.TTable.Export writes. spec.md's conditional
// probability table (§5 "Output") names only the flat format; this
// package is a SPEC_FULL.md addition for callers that want the result
// queryable without reloading the whole table into memory.
package store

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
)

// Conf selects and configures a Store backend.
type Conf struct {
	Type       string `json:"type"`
	SQLitePath string `json:"sqlitePath"`
	MySQLDSN   string `json:"mysqlDSN"`
}

// IsConfigured reports whether a backend was selected at all. A zero
// Conf means "no store sink", not "an error".
func (c Conf) IsConfigured() bool {
	return c.Type != ""
}

// LoadConf reads a JSON-encoded Conf from path.
func LoadConf(path string) (Conf, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Conf{}, fmt.Errorf("failed to read store configuration: %w", err)
	}
	var conf Conf
	if err := sonic.Unmarshal(raw, &conf); err != nil {
		return Conf{}, fmt.Errorf("failed to parse store configuration: %w", err)
	}
	return conf, nil
}

// Store persists the trained conditional-probability table cell by
// cell. Implementations batch writes in a single transaction committed
// once by Commit.
type Store interface {
	Initialize() error
	PutCell(source, target string, logProb float64) error
	Commit() error
	Close() error
}
