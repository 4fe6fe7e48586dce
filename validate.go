// This file is part of go-car.
//
// Copyright (C) 2019-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package car

import (
	"fmt"
	"os"

	"github.com/google/shlex"

	"github.com/DavidGamba/go-car/internal/cursor"
	"github.com/DavidGamba/go-car/text"
)

// Validate - Validates the given tokens against the schema.
// The tokens must not include the program name, for example `os.Args[1:]`.
//
// On success it returns the Result, Result.Stop tells if the validation read
// all tokens or ended early.
// On failure the OnFailure handler is called with the error message and the
// error is returned, use errors.Is to check its kind.
func (s *Schema) Validate(args []string) (*Result, error) {
	result, err := s.validate(args)
	if err != nil {
		s.fail(err)
		return nil, err
	}
	return result, nil
}

// ValidateOSArgs - Validates `os.Args[1:]`.
func (s *Schema) ValidateOSArgs() (*Result, error) {
	return s.Validate(os.Args[1:])
}

// ValidateString - Splits the command line string using shell quoting rules and validates the resulting tokens.
func (s *Schema) ValidateString(line string) (*Result, error) {
	args, err := shlex.Split(line)
	if err != nil {
		err = fmt.Errorf(text.ErrorSplitLine+"%w", line, err, ErrParsing)
		s.fail(err)
		return nil, err
	}
	return s.Validate(args)
}

func (s *Schema) fail(err error) {
	Logger.Debug("validation failed", "error", err)
	if s.onFailure != nil {
		s.onFailure(err.Error())
	}
}

func (s *Schema) validate(args []string) (*Result, error) {
	result := newResult()
	captured := appendCapture(args)
	c := cursor.New(args)

ARGS_LOOP:
	for c.Next() {
		token := c.Value()
		actual, inline, _ := splitToken(token)
		actual = s.resolveAlias(actual)
		Logger.Debug("token", "index", c.Index(), "raw", token, "key", actual)

		spec, ok := s.options[actual]
		if !ok {
			if actual == appendOperator {
				continue
			}
			return nil, parseError(ErrInvalidArgument, text.ErrorInvalidArgument, token)
		}

		switch spec.Kind {
		case VarKind:
			stop, err := s.handleVar(result, spec, inline, captured, c)
			if err != nil {
				return nil, err
			}
			if stop != StopEnd {
				result.stop = stop
				break ARGS_LOOP
			}
		case FlagKind:
			if spec.Exclusive {
				// An exclusive flag that is not first is dropped.
				if c.IsFirst() {
					if err := s.save(result, spec, true); err != nil {
						return nil, err
					}
				}
				result.stop = StopExclusive
				break ARGS_LOOP
			}
			if err := s.save(result, spec, true); err != nil {
				return nil, err
			}
		}
	}

	result.consumed = c.Consumed()
	if result.stop == StopAppend {
		result.consumed = len(args)
	}
	Logger.Debug("validation done", "stop", result.stop, "consumed", result.consumed)
	return result, nil
}

// handleVar - Resolves, records and dispatches the help of a var.
// The returned Stop is StopEnd when validation continues.
func (s *Schema) handleVar(result *Result, spec *OptionSpec, inline, captured string, c *cursor.Cursor) (Stop, error) {
	if result.Called(spec.Key) {
		return StopEnd, parseError(ErrRepeatedOption, text.ErrorRepeatedOption, spec.Key)
	}
	res, err := s.resolveValue(spec, inline, captured, c)
	if err != nil {
		return StopEnd, err
	}
	if res.source == sourceNext {
		c.Next()
	}
	if s.dispatchHelp(spec, res.value) {
		return StopHelp, nil
	}
	if err := s.save(result, spec, res.value); err != nil {
		return StopEnd, err
	}
	if res.source == sourceAppend {
		return StopAppend, nil
	}
	return StopEnd, nil
}

func (s *Schema) save(result *Result, spec *OptionSpec, value interface{}) error {
	if err := result.record(spec.Key, value); err != nil {
		return err
	}
	if spec.OnSuccess != nil {
		spec.OnSuccess(spec.Key, result.Map())
	}
	return nil
}
