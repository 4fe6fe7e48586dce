// This file is part of go-car.
//
// Copyright (C) 2019-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package man

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidGamba/go-car"
)

func TestPage(t *testing.T) {
	tests := []struct {
		name     string
		pages    []string
		ref      car.DocRef
		expected string
		err      error
	}{
		{"no index", []string{"a.1", "b.1"}, car.DocRef{}, "a.1", nil},
		{"index", []string{"a.1", "b.1"}, car.ManPage(1), "b.1", nil},
		{"index wraps", []string{"a.1", "b.1"}, car.ManPage(3), "b.1", nil},
		{"single page", []string{"a.1"}, car.ManPage(5), "a.1", nil},
		{"no pages", nil, car.DocRef{}, "", ErrNoPages},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := New(tt.pages...).Page(tt.ref)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, page)
		})
	}
}

func TestShowDoc(t *testing.T) {
	shown := []string{}
	p := New("a.1", "b.1").SetRunner(func(page string) error {
		shown = append(shown, page)
		return nil
	})
	require.NoError(t, p.ShowDoc(car.ManPage(1)))
	require.NoError(t, p.ShowDoc(car.DocRef{}))
	assert.Equal(t, []string{"b.1", "a.1"}, shown)

	p.SetRunner(func(string) error { return errors.New("exit status 16") })
	assert.EqualError(t, p.ShowDoc(car.DocRef{}), "failed to show man page 'a.1': exit status 16")

	assert.ErrorIs(t, New().ShowDoc(car.DocRef{}), ErrNoPages)
}

func TestSchemaDocumenter(t *testing.T) {
	shown := []string{}
	pages := New("cmd.1", "cmd-w.1").SetRunner(func(page string) error {
		shown = append(shown, page)
		return nil
	})
	schema := car.New().
		SetDocumenter(pages).
		Var("-w", car.Doc(car.ManPage(1)))

	result, err := schema.Validate([]string{"-w", "help"})
	require.NoError(t, err)
	assert.Equal(t, []string{"cmd-w.1"}, shown)
	assert.Equal(t, "help", result.String("-w"))
}
