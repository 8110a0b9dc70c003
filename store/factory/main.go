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
	"fmt"

	"github.com/czcorpus/fast-align/store"
	"github.com/czcorpus/fast-align/store/mysql"
	"github.com/czcorpus/fast-align/store/sqlite"
)

// New dispatches on conf.Type and returns the matching store.Store.
func New(conf store.Conf) (store.Store, error) {
	switch conf.Type {
	case "sqlite":
		if conf.SQLitePath == "" {
			return nil, fmt.Errorf("store type 'sqlite' requires sqlitePath")
		}
		return sqlite.New(conf.SQLitePath)
	case "mysql":
		if conf.MySQLDSN == "" {
			return nil, fmt.Errorf("store type 'mysql' requires mysqlDSN")
		}
		return mysql.New(conf.MySQLDSN)
	default:
		return nil, fmt.Errorf("unknown store type: %q", conf.Type)
	}
}
