// This file is part of go-car.
//
// Copyright (C) 2019-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/DavidGamba/go-car"
	"github.com/DavidGamba/go-car/man"
	"github.com/DavidGamba/go-car/schemafile"
)

// Logger - CLI logger, writes to stderr.
var Logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "car"})

func program(args []string) int {
	return run(args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := loadConfig()
	Logger.SetOutput(stderr)
	Logger.SetLevel(log.InfoLevel)
	car.Logger.SetOutput(io.Discard)
	if cfg.Debug {
		Logger.SetLevel(log.DebugLevel)
		car.Logger.SetOutput(stderr)
	}
	p := newPrinter(stdout, stderr, cfg.NoColor)

	root := newRootCommand(cfg, p)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.Execute()
	if err != nil {
		// Validation failures are already reported by the schema OnFailure handler.
		if !errors.Is(err, car.ErrParsing) {
			p.failure(err.Error())
		}
		return car.ExitCode(err)
	}
	return 0
}

func newRootCommand(cfg config, p *printer) *cobra.Command {
	root := &cobra.Command{
		Use:           "car",
		Short:         "Validate command lines against a schema",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newDemoCommand(cfg, p))
	root.AddCommand(newCheckCommand(cfg, p))
	root.AddCommand(newUsageCommand(p))
	return root
}

// handlers are the named handlers available to schema files.
//
//	describe     help handler, prints the option description
//	log          success handler, logs the values recorded so far
func handlers(p *printer, schema **car.Schema) schemafile.Handlers {
	return schemafile.Handlers{
		Help: map[string]car.HelpFn{
			"describe": func(key string) {
				description := ""
				if *schema != nil {
					if spec, ok := (*schema).Lookup(key); ok {
						description = spec.Description
					}
				}
				p.help(key, description)
			},
		},
		Success: map[string]car.SuccessFn{
			"log": func(key string, values map[string]interface{}) {
				Logger.Debug("option recorded", "key", key, "value", values[key], "count", len(values))
			},
		},
	}
}

// validate runs the schema over args and prints the result.
func validate(cfg config, p *printer, d *schemafile.Definition, args []string) error {
	if len(cfg.ManPages) > 0 {
		d.Man = man.New(cfg.ManPages...)
		d.Schema.SetDocumenter(d.Man)
	}
	d.Schema.OnFailure(p.failure)
	Logger.Debug("validating", "args", args)
	result, err := d.Schema.Validate(args)
	if err != nil {
		return err
	}
	p.result(result)
	return nil
}
