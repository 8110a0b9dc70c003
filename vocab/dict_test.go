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

package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternAssignsStableIncreasingIDs(t *testing.T) {
	v := New()
	idA := v.Intern("a")
	idB := v.Intern("b")
	idA2 := v.Intern("a")

	assert.Equal(t, 1, idA)
	assert.Equal(t, 2, idB)
	assert.Equal(t, idA, idA2, "re-interning the same string returns the same id")
	assert.Equal(t, 2, v.Size())
}

func TestInternNeverReturnsReservedID(t *testing.T) {
	v := New()
	for _, s := range []string{"x", "y", "z"} {
		assert.NotEqual(t, UnknownID, v.Intern(s))
	}
}

func TestLookupRoundTrips(t *testing.T) {
	v := New()
	id := v.Intern("hello")
	assert.Equal(t, "hello", v.Lookup(id))
}

func TestLookupOutOfRange(t *testing.T) {
	v := New()
	assert.Equal(t, "", v.Lookup(UnknownID))
	assert.Equal(t, "", v.Lookup(999))
	assert.Equal(t, "", v.Lookup(-1))
}

func TestInternFrozenReturnsUnknownForUnseenString(t *testing.T) {
	v := New()
	assert.Equal(t, UnknownID, v.InternFrozen("never-seen"))
	assert.Equal(t, 0, v.Size(), "InternFrozen must not create an entry")
}

func TestInternFrozenFindsExistingID(t *testing.T) {
	v := New()
	id := v.Intern("hello")
	assert.Equal(t, id, v.InternFrozen("hello"))
	assert.Equal(t, 1, v.Size(), "InternFrozen must not grow the vocabulary")
}
