// This file is part of go-car.
//
// Copyright (C) 2019-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	_ "embed"

	"github.com/spf13/cobra"

	"github.com/DavidGamba/go-car"
	"github.com/DavidGamba/go-car/schemafile"
)

//go:embed demo.yaml
var demoSchema []byte

func loadDemo(p *printer) (*schemafile.Definition, error) {
	var schema *car.Schema
	d, err := schemafile.Parse(demoSchema, schemafile.YAML, handlers(p, &schema))
	if err != nil {
		return nil, err
	}
	schema = d.Schema
	return d, nil
}

func newDemoCommand(cfg config, p *printer) *cobra.Command {
	return &cobra.Command{
		Use:                "demo [args...]",
		Short:              "Validate args against the built-in demo schema",
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDemo(p)
			if err != nil {
				return err
			}
			return validate(cfg, p, d, args)
		},
	}
}
