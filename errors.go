// This file is part of go-car.
//
// Copyright (C) 2019-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package car

import (
	"errors"
	"fmt"
)

// The sentinels have no text of their own, the user facing message comes
// from the text package format they are wrapped with.
// Use errors.Is to tell them apart.
var (
	// ErrParsing - Wrapped by every validation failure.
	ErrParsing = errors.New("")

	// ErrInvalidArgument - The token is not part of the schema.
	ErrInvalidArgument = errors.New("")

	// ErrRepeatedOption - The option was already used in this run.
	ErrRepeatedOption = errors.New("")

	// ErrMissingValue - The var has no inline value, no following token and no default.
	ErrMissingValue = errors.New("")

	// ErrInvalidValue - Every value available for the var was rejected.
	ErrInvalidValue = errors.New("")

	// ErrInvalidSchema - The option definition is not valid.
	ErrInvalidSchema = errors.New("")
)

func parseError(sentinel error, format string, a ...interface{}) error {
	a = append(a, sentinel, ErrParsing)
	return fmt.Errorf(format+"%w%w", a...)
}

func schemaError(format string, a ...interface{}) error {
	a = append(a, ErrInvalidSchema)
	return fmt.Errorf(format+"%w", a...)
}

// ExitCode - Maps the outcome of a validation to a process exit code: 0 on success, 1 on failure.
func ExitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}
