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

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityChain(t *testing.T) {
	c, err := FactoryFromNames(nil)
	assert.NoError(t, err)
	assert.Equal(t, "Hello", c.Apply("Hello"))
}

func TestToLowerChain(t *testing.T) {
	c, err := FactoryFromNames([]string{TransformerToLower})
	assert.NoError(t, err)
	assert.Equal(t, "hello", c.Apply("Hello"))
}

func TestNilChainIsNoOp(t *testing.T) {
	var c *Chain
	assert.Equal(t, "Hello", c.Apply("Hello"))
}

func TestUnknownTransformerErrors(t *testing.T) {
	_, err := FactoryFromNames([]string{"stem"})
	assert.Error(t, err)
}
