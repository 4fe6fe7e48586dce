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
	"io"

	"github.com/fatih/color"

	"github.com/DavidGamba/go-car"
)

type printer struct {
	out   io.Writer
	err   io.Writer
	key   *color.Color
	value *color.Color
	fail  *color.Color
	info  *color.Color
}

func newPrinter(out, err io.Writer, noColor bool) *printer {
	p := &printer{
		out:   out,
		err:   err,
		key:   color.New(color.FgCyan, color.Bold),
		value: color.New(color.FgGreen),
		fail:  color.New(color.FgRed),
		info:  color.New(color.FgYellow),
	}
	if noColor {
		for _, c := range []*color.Color{p.key, p.value, p.fail, p.info} {
			c.DisableColor()
		}
	}
	return p
}

// result prints the recorded values in recording order followed by the stop reason.
func (p *printer) result(r *car.Result) {
	for _, key := range r.Keys() {
		switch v := r.Value(key).(type) {
		case string:
			fmt.Fprintf(p.out, "%s\t%s\n", p.key.Sprint(key), p.value.Sprintf("%q", v))
		default:
			fmt.Fprintf(p.out, "%s\t%s\n", p.key.Sprint(key), p.value.Sprint(v))
		}
	}
	fmt.Fprintf(p.out, "%s\n", p.info.Sprintf("stop: %s, consumed: %d", r.Stop(), r.Consumed()))
}

func (p *printer) failure(msg string) {
	fmt.Fprintf(p.err, "%s\n", p.fail.Sprintf("ERROR: %s", msg))
}

func (p *printer) help(key, description string) {
	if description == "" {
		description = "no description available"
	}
	fmt.Fprintf(p.out, "%s: %s\n", p.key.Sprint(key), description)
}
