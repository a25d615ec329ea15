// Copyright (C) 2025 MapleRisk Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	assert.Equal(t, []int{2, 4}, Filter([]int{1, 2, 3, 4}, func(i int) bool { return i%2 == 0 }))
	assert.Empty(t, Filter([]int{}, func(i int) bool { return true }))
}

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, Map([]string{"a", "b"}, strings.ToUpper))
}

func TestAny(t *testing.T) {
	assert.True(t, Any([]int{1, 2, 3}, func(i int) bool { return i > 2 }))
	assert.False(t, Any([]int{1, 2, 3}, func(i int) bool { return i > 3 }))
	assert.False(t, Any(nil, func(i int) bool { return true }))
}

func TestContainsAll(t *testing.T) {
	assert.True(t, ContainsAll([]string{"a", "b", "c"}, []string{"a", "c"}))
	assert.False(t, ContainsAll([]string{"a", "b"}, []string{"a", "z"}))
	assert.True(t, ContainsAll([]string{}, []string{}))
}

func TestUniq(t *testing.T) {
	t.Run("keeps first occurrence order", func(t *testing.T) {
		assert.Equal(t, []string{"b", "a", "c"}, Uniq([]string{"b", "a", "b", "c", "a"}))
	})

	t.Run("nil stays nil-safe", func(t *testing.T) {
		assert.Empty(t, Uniq[string](nil))
	})
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, 5, OrDefault(Ptr(5), 9))
	assert.Equal(t, 9, OrDefault[int](nil, 9))
}

func TestSafeDereference(t *testing.T) {
	assert.Equal(t, "x", SafeDereference(Ptr("x")))
	assert.Equal(t, "", SafeDereference(nil))
}

func TestEmptyThenNil(t *testing.T) {
	assert.Nil(t, EmptyThenNil(""))
	assert.Equal(t, "v", *EmptyThenNil("v"))
}
