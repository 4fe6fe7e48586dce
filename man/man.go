// This file is part of go-car.
//
// Copyright (C) 2019-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package man - Displays man pages for car.DocRef help actions.
//
// Pages are listed in order, a reference without an index shows the first
// page and a reference with an index wraps around the list:
//
//	pages := man.New("mycmd.1", "mycmd-var.1")
//	schema := car.New().SetDocumenter(pages)
//	schema.Var("-w", car.Doc(car.ManPage(1)))
package man

import (
	"errors"
	"fmt"

	"github.com/DavidGamba/dgtools/run"

	"github.com/DavidGamba/go-car"
)

// ErrNoPages - The documenter has no pages to show.
var ErrNoPages = errors.New("no man pages defined")

// RunFn - Function signature for the function that displays a page.
type RunFn func(page string) error

// Pages - car.Documenter backed by the system man command.
type Pages struct {
	pages []string
	run   RunFn
}

// New - Returns a documenter for the given pages.
func New(pages ...string) *Pages {
	return &Pages{
		pages: append([]string(nil), pages...),
		run:   runMan,
	}
}

// SetRunner - Overrides how pages are displayed.
func (p *Pages) SetRunner(fn RunFn) *Pages {
	p.run = fn
	return p
}

// Pages - Returns the configured pages.
func (p *Pages) Pages() []string {
	return append([]string(nil), p.pages...)
}

// Page - Returns the page a reference points to.
func (p *Pages) Page(ref car.DocRef) (string, error) {
	if len(p.pages) == 0 {
		return "", fmt.Errorf("%s: %w", ref, ErrNoPages)
	}
	if !ref.HasIndex {
		return p.pages[0], nil
	}
	return p.pages[ref.Index%len(p.pages)], nil
}

// ShowDoc - Displays the page the reference points to.
func (p *Pages) ShowDoc(ref car.DocRef) error {
	page, err := p.Page(ref)
	if err != nil {
		return err
	}
	car.Logger.Debug("showing man page", "ref", ref, "page", page)
	err = p.run(page)
	if err != nil {
		return fmt.Errorf("failed to show man page '%s': %w", page, err)
	}
	return nil
}

func runMan(page string) error {
	return run.CMD("man", page).Log().Run()
}
