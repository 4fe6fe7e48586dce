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

	"github.com/spf13/cobra"

	"github.com/DavidGamba/go-car"
	"github.com/DavidGamba/go-car/schemafile"
)

func newCheckCommand(cfg config, p *printer) *cobra.Command {
	return &cobra.Command{
		Use:                "check <schema-file> [args...]",
		Short:              "Validate args against a YAML or TOML schema file",
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("missing schema file")
			}
			var schema *car.Schema
			d, err := schemafile.Load(args[0], handlers(p, &schema))
			if err != nil {
				return err
			}
			schema = d.Schema
			return validate(cfg, p, d, args[1:])
		},
	}
}
