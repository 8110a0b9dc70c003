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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializePutCellCommitRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.db")
	w := &Writer{Path: path}
	require.NoError(t, w.Initialize())
	require.NoError(t, w.PutCell("chat", "cat", -0.1))
	require.NoError(t, w.Commit())
	require.NoError(t, w.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var source, target string
	var logProb float64
	row := db.QueryRow("SELECT source, target, log_prob FROM translation")
	require.NoError(t, row.Scan(&source, &target, &logProb))
	assert.Equal(t, "chat", source)
	assert.Equal(t, "cat", target)
	assert.InDelta(t, -0.1, logProb, 1e-9)
}

func TestPutCellBeforeInitializeFails(t *testing.T) {
	w := &Writer{Path: filepath.Join(t.TempDir(), "table.db")}
	err := w.PutCell("a", "b", 0)
	assert.Error(t, err)
}
