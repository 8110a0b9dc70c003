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

package factory

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/czcorpus/fast-align/store"
	"github.com/czcorpus/fast-align/store/sqlite"
)

func TestNewDispatchesOnType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.db")
	s, err := New(store.Conf{Type: "sqlite", SQLitePath: path})
	require.NoError(t, err)
	_, ok := s.(*sqlite.Writer)
	assert.True(t, ok)
}

func TestNewRejectsUnknownType(t *testing.T) {
	_, err := New(store.Conf{Type: "oracle"})
	assert.Error(t, err)
}

func TestNewRejectsMissingPath(t *testing.T) {
	_, err := New(store.Conf{Type: "sqlite"})
	assert.Error(t, err)
}
