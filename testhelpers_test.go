// This file is part of go-car.
//
// Copyright (C) 2019-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package car

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func checkError(t *testing.T, got, expected error) {
	t.Helper()
	if (got == nil && expected != nil) || (got != nil && expected == nil) || (got != nil && expected != nil && !errors.Is(got, expected)) {
		t.Errorf("wrong error received: got = '%#v', want '%#v'", got, expected)
	}
}

// setupTestLogging - Defines an output for the default Logger and returns a
// function that prints the output if the output is not empty.
//
// Usage:
//
//	logTestOutput := setupTestLogging(t)
//	defer logTestOutput()
func setupTestLogging(t *testing.T) func() {
	buf := &bytes.Buffer{}
	Logger.SetOutput(buf)
	return func() {
		Logger.SetOutput(io.Discard)
		if buf.Len() > 0 {
			t.Log("\n" + buf.String())
		}
	}
}

// testSchema - flags -f, -g, list and the exclusive -c; vars -v and -m (with default).
func testSchema() *Schema {
	return New().
		Flag("-f", LongAlias("--flag")).
		Flag("-g").
		Flag("list").
		Flag("-c", LongAlias("--combo"), Exclusive()).
		Var("-v", LongAlias("--var")).
		Var("-m", LongAlias("--mixed"), Default("mixed"))
}

type successCall struct {
	key    string
	values map[string]interface{}
}

// successRecorder - returns an OnSuccess handler that stores every call.
func successRecorder(calls *[]successCall) SuccessFn {
	return func(key string, values map[string]interface{}) {
		*calls = append(*calls, successCall{key: key, values: values})
	}
}
