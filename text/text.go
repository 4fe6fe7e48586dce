// This file is part of go-car.
//
// Copyright (C) 2019-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
package text

// ErrorInvalidArgument holds the text for an argument that is not part of the schema.
// It has a string placeholder '%s' for the raw token.
var ErrorInvalidArgument = "invalid argument \"%s\""

// ErrorRepeatedOption holds the text for an option declared more than once.
// It has a string placeholder '%s' for the canonical key.
var ErrorRepeatedOption = "repeated option \"%s\""

// ErrorMissingValue holds the text for a var without any value to read.
// It has a string placeholder '%s' for the canonical key.
var ErrorMissingValue = "no valid value to read for option \"%s\""

// ErrorInvalidValue holds the text for a var whose value was rejected.
// It has two string placeholders: the rejected value and the canonical key.
var ErrorInvalidValue = "invalid value \"%s\" for option \"%s\""

// ErrorSplitLine holds the text for a command line string that can't be split into tokens.
var ErrorSplitLine = "unable to split command line \"%s\": %w"

// Schema definition errors.
var (
	ErrorEmptyKey        = "option key can't be empty"
	ErrorReservedKey     = "option key \"%s\" is reserved"
	ErrorKeyWithOperator = "option key \"%s\" can't contain \"=\""
	ErrorUnknownKind     = "option \"%s\" must be declared as a flag or a var"
	ErrorKeyDefined      = "option \"%s\" is already defined"
	ErrorAliasDefined    = "long alias \"%s\" is already defined for option \"%s\""
	ErrorAliasIsKey      = "long alias \"%s\" is already defined as an option"
	ErrorKeyIsAlias      = "option \"%s\" is already defined as a long alias of option \"%s\""
	ErrorAliasUnknownKey = "long alias \"%s\" refers to undefined option \"%s\""
	ErrorDocRef          = "invalid documentation reference \"%s\""
)

// HelpSynopsisHeader - "SYNOPSIS"
var HelpSynopsisHeader = "SYNOPSIS"

// HelpOptionsHeader - "OPTIONS"
var HelpOptionsHeader = "OPTIONS"

// HelpArgName - default value placeholder for vars.
var HelpArgName = "value"

// HelpDefault - default value marker. It has a '%q' placeholder for the default value.
var HelpDefault = "(default: %q)"

// HelpExclusive - marker for flags that can't be combined with other options.
var HelpExclusive = "(must be used alone)"
