// This file is part of go-car.
//
// Copyright (C) 2019-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package car

import (
	"strconv"
	"strings"

	"github.com/DavidGamba/go-car/text"
)

// DocRefPlaceholder - textual form of a documentation reference, optionally followed by #<index>.
const DocRefPlaceholder = "%man"

// DocRef - Reference to an external documentation page.
// Without an index the first page is used.
type DocRef struct {
	Index    int
	HasIndex bool
}

func (DocRef) helpAction() {}

// ManPage - Builds a DocRef pointing to the page at the given index.
func ManPage(index int) DocRef {
	return DocRef{Index: index, HasIndex: true}
}

// String - Returns the textual form, `%man` or `%man#<index>`.
func (r DocRef) String() string {
	if !r.HasIndex {
		return DocRefPlaceholder
	}
	return DocRefPlaceholder + "#" + strconv.Itoa(r.Index)
}

// ParseDocRef - Parses `%man` or `%man#<index>`.
func ParseDocRef(s string) (DocRef, error) {
	placeholder, index, hasIndex := strings.Cut(s, "#")
	if placeholder != DocRefPlaceholder {
		return DocRef{}, schemaError(text.ErrorDocRef, s)
	}
	if !hasIndex {
		return DocRef{}, nil
	}
	i, err := strconv.Atoi(index)
	if err != nil || i < 0 {
		return DocRef{}, schemaError(text.ErrorDocRef, s)
	}
	return ManPage(i), nil
}

// Documenter - Displays the external documentation for a reference.
// Errors are not validation errors, they are only logged.
type Documenter interface {
	ShowDoc(ref DocRef) error
}

// DocumenterFunc - Adapter to use a function as a Documenter.
type DocumenterFunc func(ref DocRef) error

// ShowDoc calls fn(ref).
func (fn DocumenterFunc) ShowDoc(ref DocRef) error {
	return fn(ref)
}
