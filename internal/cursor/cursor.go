// This file is part of go-car.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package cursor - positional reader over a token sequence that allows peeking
// at the following token and consuming it in the same step.
package cursor

// Cursor - read-only view over the tokens with the current position.
type Cursor struct {
	data []string
	idx  int
}

// New - builds a Cursor positioned before the first token.
func New(data []string) *Cursor {
	return &Cursor{data: data, idx: -1}
}

// Size - number of tokens.
func (c *Cursor) Size() int {
	return len(c.data)
}

// Index - current position, -1 before the first call to Next.
func (c *Cursor) Index() int {
	return c.idx
}

// Next - moves forward and tells if there is a token at the new position.
func (c *Cursor) Next() bool {
	if c.idx < len(c.data) {
		c.idx++
	}
	return c.idx < len(c.data)
}

// Value - token at the current position or an empty string when out of range.
func (c *Cursor) Value() string {
	if c.idx < 0 || c.idx >= len(c.data) {
		return ""
	}
	return c.data[c.idx]
}

// Peek - returns the following token and whether it exists.
func (c *Cursor) Peek() (string, bool) {
	if c.idx+1 >= len(c.data) {
		return "", false
	}
	return c.data[c.idx+1], true
}

// IsFirst - Tells if the current token is the first one.
func (c *Cursor) IsFirst() bool {
	return c.idx == 0
}

// Consumed - how many tokens have been read so far, current one included.
func (c *Cursor) Consumed() int {
	if c.idx >= len(c.data) {
		return len(c.data)
	}
	return c.idx + 1
}
