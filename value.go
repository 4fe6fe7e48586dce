// This file is part of go-car.
//
// Copyright (C) 2019-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package car

import (
	"strings"

	"github.com/DavidGamba/go-car/internal/cursor"
	"github.com/DavidGamba/go-car/text"
)

// Characters removed from accepted values.
var sanitizer = strings.NewReplacer(
	">", "",
	"<", "",
	",", "",
	`\`, "",
	"/", "",
	"[", "",
	"]", "",
)

// valueSource - where a var value came from.
type valueSource int

const (
	sourceAppend valueSource = iota + 1
	sourceInline
	sourceNext
	sourceDefault
)

func (vs valueSource) String() string {
	switch vs {
	case sourceAppend:
		return "append"
	case sourceInline:
		return "inline"
	case sourceNext:
		return "next"
	case sourceDefault:
		return "default"
	}
	return "none"
}

// appendCapture - Returns the tokens after the first '--' joined by spaces,
// or an empty string when there is no '--' or nothing follows it.
func appendCapture(args []string) string {
	for i, arg := range args {
		if arg == appendOperator {
			return strings.TrimSpace(strings.Join(args[i+1:], " "))
		}
	}
	return ""
}

type resolution struct {
	value  string
	source valueSource
}

type candidate struct {
	value  string
	source valueSource
}

// resolveValue - Picks the value of a var.
// The user provided value, either the append capture, the inline value or
// the following token, is tried first and the default after it.
// The first candidate that passes acceptValue wins.
func (s *Schema) resolveValue(spec *OptionSpec, inline, captured string, c *cursor.Cursor) (resolution, error) {
	candidates := []candidate{}
	if captured != "" {
		candidates = append(candidates, candidate{captured, sourceAppend})
	} else if inline != "" {
		candidates = append(candidates, candidate{inline, sourceInline})
	} else if next, ok := c.Peek(); ok {
		candidates = append(candidates, candidate{next, sourceNext})
	}
	if spec.HasDefault {
		candidates = append(candidates, candidate{spec.Default, sourceDefault})
	}
	if len(candidates) == 0 {
		return resolution{}, parseError(ErrMissingValue, text.ErrorMissingValue, spec.Key)
	}
	for _, cand := range candidates {
		if value, ok := s.acceptValue(spec, cand.value); ok {
			Logger.Debug("resolved value", "key", spec.Key, "source", cand.source, "value", value)
			return resolution{value: value, source: cand.source}, nil
		}
		Logger.Debug("rejected value", "key", spec.Key, "source", cand.source, "value", cand.value)
	}
	return resolution{}, parseError(ErrInvalidValue, text.ErrorInvalidValue, candidates[0].value, spec.Key)
}

// acceptValue - Validates a candidate value and returns its sanitized form.
// Help triggers are accepted untouched so they can reach the help dispatcher.
func (s *Schema) acceptValue(spec *OptionSpec, value string) (string, bool) {
	if isHelpTrigger(spec, value) {
		return value, true
	}
	if strings.HasPrefix(value, argIndicator) {
		return "", false
	}
	if value == assignOperator || value == appendOperator {
		return "", false
	}
	if s.isKnownToken(value) {
		return "", false
	}
	value = sanitizer.Replace(value)
	if value == "" {
		return "", false
	}
	return value, true
}
