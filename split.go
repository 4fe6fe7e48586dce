// This file is part of go-car.
//
// Copyright (C) 2019-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package car

import "strings"

const (
	assignOperator = "="
	appendOperator = "--"
	argIndicator   = "-"
)

// splitToken - Splits the token at the first '='.
// For example: -v=a=b returns ("-v", "a=b", true).
func splitToken(token string) (actual, inline string, hasInline bool) {
	return strings.Cut(token, assignOperator)
}

// resolveAlias - Returns the canonical key when token is a long alias, token otherwise.
func (s *Schema) resolveAlias(token string) string {
	if key, ok := s.aliases[token]; ok {
		return key
	}
	return token
}

// isKnownToken - Tells if the value is an option key or long alias.
func (s *Schema) isKnownToken(value string) bool {
	if _, ok := s.options[value]; ok {
		return true
	}
	_, ok := s.aliases[value]
	return ok
}
