// This file is part of go-car.
//
// Copyright (C) 2019-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package car

import (
	"github.com/DavidGamba/go-car/internal/help"
)

// Usage - Returns the SYNOPSIS and OPTIONS sections for the schema.
// name is the program name shown in the synopsis.
func (s *Schema) Usage(name string) string {
	options := make([]help.Option, 0, len(s.order))
	for _, spec := range s.Options() {
		options = append(options, help.Option{
			Key:         spec.Key,
			LongAlias:   spec.LongAlias,
			TakesValue:  spec.Kind == VarKind,
			Description: spec.Description,
			Default:     spec.Default,
			HasDefault:  spec.Kind == VarKind && spec.HasDefault,
			Exclusive:   !spec.Combinable(),
		})
	}
	help.Sort(options)
	out := help.Synopsis(name, options)
	if list := help.OptionList(options); list != "" {
		out += "\n" + list
	}
	return out
}
