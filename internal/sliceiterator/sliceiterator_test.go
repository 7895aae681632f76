// This file is part of go-argh.
//
// Copyright (C) 2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package sliceiterator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterator(t *testing.T) {
	i := New([]string{"a", "b", "c", "d"})
	assert.Equal(t, 4, i.Size())
	assert.Equal(t, -1, i.Index())
	assert.Equal(t, "", i.Value())

	visited := []string{}
	for i.Next() {
		visited = append(visited, i.Value())
		if i.Index() == 1 {
			val, ok := i.PeekNextValue()
			assert.True(t, ok)
			assert.Equal(t, "c", val)
			assert.False(t, i.IsLast())
		}
		if i.Index() == 3 {
			assert.True(t, i.IsLast())
		}
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, visited)
	_, ok := i.PeekNextValue()
	assert.False(t, ok)

	// Next past the end stays false and Value stays empty.
	assert.False(t, i.Next())
	assert.Equal(t, "", i.Value())
}

func TestIteratorSkipNext(t *testing.T) {
	i := New([]string{"--name", "value", "positional"})
	visited := []string{}
	for i.Next() {
		visited = append(visited, i.Value())
		if i.Value() == "--name" {
			val, ok := i.PeekNextValue()
			assert.True(t, ok)
			assert.Equal(t, "value", val)
			i.SkipNext()
		}
	}
	assert.Equal(t, []string{"--name", "positional"}, visited)
}

func TestIteratorEmpty(t *testing.T) {
	i := New(nil)
	assert.Equal(t, 0, i.Size())
	assert.False(t, i.Next())
	_, ok := i.PeekNextValue()
	assert.False(t, ok)
	assert.Equal(t, "", i.Value())
}
