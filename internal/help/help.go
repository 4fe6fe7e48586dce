// This file is part of go-car.
//
// Copyright (C) 2015-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - internal help text generation.
package help

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/DavidGamba/go-car/text"
)

// Padding - indentation used for every section body.
var Padding = 4

// Width - line width after which the synopsis wraps.
var Width = 80

// Option - help relevant information of an option.
type Option struct {
	Key         string
	LongAlias   string
	TakesValue  bool
	Description string
	Default     string
	HasDefault  bool
	Exclusive   bool
}

// names - "-v|--var <value>"
func (o Option) names() string {
	out := o.Key
	if o.LongAlias != "" {
		out += "|" + o.LongAlias
	}
	if o.TakesValue {
		out += " <" + text.HelpArgName + ">"
	}
	return out
}

// Sort - sorts options by key.
func Sort(list []Option) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].Key < list[j].Key
	})
}

// Synopsis - Return a synopsis line for the script wrapped at Width.
func Synopsis(scriptName string, options []Option) string {
	scriptName = strings.Repeat(" ", Padding) + scriptName
	var out string
	line := scriptName
	for _, opt := range options {
		syn := "[" + opt.names() + "]"
		if len(line)+len(syn)+1 > Width {
			out += line + "\n"
			line = fmt.Sprintf("%s %s", strings.Repeat(" ", len(scriptName)), syn)
		} else {
			line += fmt.Sprintf(" %s", syn)
		}
	}
	out += line
	return fmt.Sprintf("%s:\n%s\n", text.HelpSynopsisHeader, out)
}

// OptionList - Return a formatted list of options, their descriptions and defaults.
func OptionList(options []Option) string {
	if len(options) == 0 {
		return ""
	}
	factor := 0
	for _, opt := range options {
		if l := len(opt.names()); l > factor {
			factor = l
		}
	}
	factor += Padding
	out := ""
	for _, opt := range options {
		parts := []string{}
		if opt.Description != "" {
			indent := "\n" + strings.Repeat(" ", Padding+factor)
			parts = append(parts, strings.ReplaceAll(opt.Description, "\n", indent))
		}
		if opt.HasDefault {
			parts = append(parts, fmt.Sprintf(text.HelpDefault, opt.Default))
		}
		if opt.Exclusive {
			parts = append(parts, text.HelpExclusive)
		}
		line := strings.Repeat(" ", Padding) + pad(opt.names(), factor) + strings.Join(parts, " ")
		out += strings.TrimRight(line, " ") + "\n\n"
	}
	return fmt.Sprintf("%s:\n%s", text.HelpOptionsHeader, out)
}

// pad - Given a string and a padding factor it will return the string padded with spaces.
func pad(s string, factor int) string {
	return fmt.Sprintf("%-"+strconv.Itoa(factor)+"s", s)
}
