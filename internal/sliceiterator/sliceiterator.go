// This file is part of go-argh.
//
// Copyright (C) 2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package sliceiterator - builds an iterator from a slice to allow peeking at
// and skipping over the next value, the one token of lookahead the classifier
// needs.
package sliceiterator

// Iterator - iterator data
type Iterator struct {
	data []string
	idx  int
}

// New - builds a string Iterator positioned before the first element.
func New(data []string) *Iterator {
	return &Iterator{data: data, idx: -1}
}

// Size - returns Iterator size
func (a *Iterator) Size() int {
	return len(a.data)
}

// Index - return current index.
func (a *Iterator) Index() int {
	return a.idx
}

// Next - moves the index forward and returns a bool to indicate if there is
// another value.
func (a *Iterator) Next() bool {
	if a.idx < len(a.data) {
		a.idx++
	}
	return a.idx < len(a.data)
}

// Value - returns value at current index or an empty string after the list
// has been fully read.
func (a *Iterator) Value() string {
	if a.idx < 0 || a.idx >= len(a.data) {
		return ""
	}
	return a.data[a.idx]
}

// PeekNextValue - Returns the next value and indicates whether or not it is
// valid without moving the index.
func (a *Iterator) PeekNextValue() (string, bool) {
	if a.idx+1 >= len(a.data) {
		return "", false
	}
	return a.data[a.idx+1], true
}

// SkipNext - consumes the next value so the following Next call moves past
// it. Used after the peeked value has been taken as a parameter value.
func (a *Iterator) SkipNext() {
	if a.idx < len(a.data) {
		a.idx++
	}
}

// IsLast - Tells if the current element is the last.
func (a *Iterator) IsLast() bool {
	return a.idx == len(a.data)-1
}
