// This file is part of go-car.
//
// Copyright (C) 2019-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package car

import "github.com/DavidGamba/go-car/text"

// Stop - Indicates how a successful validation ended.
type Stop int

// Successful endings.
const (
	StopEnd       Stop = iota // all tokens were read
	StopHelp                  // a HelpFn was called
	StopAppend                // a var was satisfied with the tokens after --
	StopExclusive             // an exclusive flag was found
)

func (s Stop) String() string {
	switch s {
	case StopHelp:
		return "help"
	case StopAppend:
		return "append"
	case StopExclusive:
		return "exclusive"
	}
	return "end"
}

// Result - Options used in a validation run and their values.
// Flags hold true and vars hold their string value.
type Result struct {
	values   map[string]interface{}
	order    []string
	stop     Stop
	consumed int
}

func newResult() *Result {
	return &Result{values: make(map[string]interface{})}
}

// record - Saves the value of an option, an option can only be saved once.
func (r *Result) record(key string, value interface{}) error {
	if _, ok := r.values[key]; ok {
		return parseError(ErrRepeatedOption, text.ErrorRepeatedOption, key)
	}
	r.values[key] = value
	r.order = append(r.order, key)
	return nil
}

// Called - Indicates if the option was used.
func (r *Result) Called(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Value - Returns the untyped value of the option or nil if it wasn't used.
func (r *Result) Value(key string) interface{} {
	return r.values[key]
}

// String - Returns the value of a var or an empty string.
func (r *Result) String(key string) string {
	s, _ := r.values[key].(string)
	return s
}

// Bool - Tells if a flag was used.
func (r *Result) Bool(key string) bool {
	b, _ := r.values[key].(bool)
	return b
}

// Keys - Returns the used options in the order they were recorded.
func (r *Result) Keys() []string {
	return append([]string(nil), r.order...)
}

// Len - number of options used.
func (r *Result) Len() int {
	return len(r.order)
}

// Map - Returns a copy of the values.
func (r *Result) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(r.values))
	for k, v := range r.values {
		m[k] = v
	}
	return m
}

// Stop - Indicates how the validation ended.
func (r *Result) Stop() Stop {
	return r.stop
}

// Consumed - Number of tokens read before the validation ended.
func (r *Result) Consumed() int {
	return r.consumed
}
