// This file is part of go-car.
//
// Copyright (C) 2019-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package car

// ModifyFn - Function signature for functions that modify an option definition.
type ModifyFn func(spec *OptionSpec)

// LongAlias - Adds a long form token that resolves to the option key.
func LongAlias(alias string) ModifyFn {
	return func(spec *OptionSpec) {
		spec.LongAlias = alias
	}
}

// Exclusive - Marks a flag that can't be combined with other options.
// When used as the first argument it is recorded, in any position it ends the validation.
func Exclusive() ModifyFn {
	return func(spec *OptionSpec) {
		spec.Exclusive = true
	}
}

// Default - Value used by a var when no other value is available.
// A var with a default behaves like a flag that may read a value.
func Default(value string) ModifyFn {
	return func(spec *OptionSpec) {
		spec.Default = value
		spec.HasDefault = true
	}
}

// HelpTrigger - Adds custom values that trigger the option help.
// The global triggers `--help`, `help` and `-h` always apply.
func HelpTrigger(triggers ...string) ModifyFn {
	return func(spec *OptionSpec) {
		spec.HelpTriggers = append(spec.HelpTriggers, triggers...)
	}
}

// Help - Handler called with the option key when its value is a help trigger.
// The validation ends successfully after the call.
func Help(fn HelpFn) ModifyFn {
	return func(spec *OptionSpec) {
		spec.Help = fn
	}
}

// Doc - Displays external documentation through the schema Documenter when
// the option value is a help trigger. The validation continues.
func Doc(ref DocRef) ModifyFn {
	return func(spec *OptionSpec) {
		spec.Help = ref
	}
}

// OnSuccess - Handler called every time the option is recorded.
func OnSuccess(fn SuccessFn) ModifyFn {
	return func(spec *OptionSpec) {
		spec.OnSuccess = fn
	}
}

// Description - Add a description to an option for use in the generated usage.
func Description(msg string) ModifyFn {
	return func(spec *OptionSpec) {
		spec.Description = msg
	}
}
