// This file is part of go-car.
//
// Copyright (C) 2019-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package car - CmdArgsReader, a declarative command line argument validator.

Options are declared up front in a Schema and a single pass over the provided
tokens returns a Result with the value of every option used, or an error
describing the first problem found.

# Usage

	schema := car.New()
	schema.Flag("-f", car.LongAlias("--flag"))
	schema.Flag("-c", car.LongAlias("--combo"), car.Exclusive())
	schema.Var("-v", car.LongAlias("--var"), car.Help(func(key string) {
		fmt.Println("-v reads a value")
	}))
	schema.Var("-m", car.Default("mixed"))

	result, err := schema.Validate(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(car.ExitCode(err))
	}
	if result.Called("-v") {
		fmt.Println(result.String("-v"))
	}

# Rules

• Flags are satisfied by their presence and record true.

• Vars read their value from `-v=value`, from the following token, or from
their default, in that order.
Values that look like an option, an operator or another option are rejected.

• Everything after `--` is joined into a single value for the var being
resolved and ends the validation.

• Exclusive flags can only be used as the first argument and end the
validation.

• Each option can be used once.

# Help

The values `--help`, `help` and `-h`, plus any custom trigger declared with
HelpTrigger, call the option help instead of being a regular value.

For a given var the handlers run in this order:

 1. If the value is a help trigger and the option has a HelpFn, it is called
    and validation stops. The option is not recorded.
 2. If the value is a help trigger and the option has a DocRef, the schema
    Documenter is called and validation continues.
 3. The value is recorded and the OnSuccess handler is called.
 4. If the value came from `--`, validation stops.
*/
package car

import (
	"io"

	"github.com/charmbracelet/log"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.NewWithOptions(io.Discard, log.Options{
	Prefix: "car",
	Level:  log.DebugLevel,
})
