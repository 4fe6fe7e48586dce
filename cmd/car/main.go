// This file is part of go-car.
//
// Copyright (C) 2019-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Command car validates command lines against a car schema.
//
//	car demo [args...]                  validate against the built-in demo schema
//	car check <schema-file> [args...]   validate against a YAML or TOML schema file
//	car usage <schema-file> [name]      print the synopsis and options of a schema file
//
// Environment:
//
//	CAR_DEBUG=true        log validation steps to stderr
//	CAR_NO_COLOR=true     disable colored output
//	CAR_MAN_PAGES="a b"   man pages used for %man help actions
package main

import (
	"os"
)

func main() {
	os.Exit(program(os.Args))
}
