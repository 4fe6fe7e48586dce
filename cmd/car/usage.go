// This file is part of go-car.
//
// Copyright (C) 2019-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DavidGamba/go-car"
	"github.com/DavidGamba/go-car/schemafile"
)

func newUsageCommand(p *printer) *cobra.Command {
	return &cobra.Command{
		Use:           "usage <schema-file> [name]",
		Short:         "Print the synopsis and options of a schema file",
		Args:          cobra.RangeArgs(1, 2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var schema *car.Schema
			d, err := schemafile.Load(args[0], handlers(p, &schema))
			if err != nil {
				return err
			}
			name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			if len(args) > 1 {
				name = args[1]
			}
			fmt.Fprint(p.out, d.Schema.Usage(name))
			return nil
		},
	}
}
