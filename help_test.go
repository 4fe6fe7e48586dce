// This file is part of go-car.
//
// Copyright (C) 2019-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package car

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpFn(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected map[string]interface{}
		consumed int
	}{
		{"global trigger", []string{"-v", "--help"}, map[string]interface{}{}, 2},
		{"word trigger", []string{"-v", "help"}, map[string]interface{}{}, 2},
		{"short trigger", []string{"-v", "-h"}, map[string]interface{}{}, 2},
		{"inline trigger", []string{"-v=-h"}, map[string]interface{}{}, 1},
		{"custom trigger", []string{"-v", "h"}, map[string]interface{}{}, 2},
		{"long alias", []string{"--var", "help"}, map[string]interface{}{}, 2},
		{"after other options", []string{"-f", "-v", "help", "-g"}, map[string]interface{}{"-f": true}, 3},
		{"stops before errors", []string{"-v", "help", "-z"}, map[string]interface{}{}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logTestOutput := setupTestLogging(t)
			defer logTestOutput()

			helpCalls := []string{}
			successCalls := []successCall{}
			schema := New().
				Flag("-f").
				Flag("-g").
				Flag("-h").
				Var("-v", LongAlias("--var"), HelpTrigger("h"),
					Help(func(key string) { helpCalls = append(helpCalls, key) }),
					OnSuccess(successRecorder(&successCalls)))

			result, err := schema.Validate(tt.args)
			require.NoError(t, err)
			assert.Equal(t, []string{"-v"}, helpCalls)
			assert.Empty(t, successCalls)
			assert.Equal(t, StopHelp, result.Stop())
			assert.Equal(t, tt.consumed, result.Consumed())
			if diff := cmp.Diff(tt.expected, result.Map()); diff != "" {
				t.Errorf("unexpected result (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHelpFnNotTriggered(t *testing.T) {
	called := false
	schema := New().Var("-v", Help(func(string) { called = true }))
	result, err := schema.Validate([]string{"-v", "h"})
	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, "h", result.String("-v"))
	assert.Equal(t, StopEnd, result.Stop())
}

func TestHelpFnFromDefault(t *testing.T) {
	called := ""
	schema := New().Var("-d", Default("help"), Help(func(key string) { called = key }))
	result, err := schema.Validate([]string{"-d"})
	require.NoError(t, err)
	assert.Equal(t, "-d", called)
	assert.Equal(t, StopHelp, result.Stop())
	assert.False(t, result.Called("-d"))
}

func TestHelpDoc(t *testing.T) {
	tests := []struct {
		name  string
		docFn func(refs *[]DocRef) Documenter
		refs  []DocRef
	}{
		{"documenter", func(refs *[]DocRef) Documenter {
			return DocumenterFunc(func(ref DocRef) error {
				*refs = append(*refs, ref)
				return nil
			})
		}, []DocRef{{Index: 1, HasIndex: true}}},
		{"documenter error", func(refs *[]DocRef) Documenter {
			return DocumenterFunc(func(ref DocRef) error {
				*refs = append(*refs, ref)
				return errors.New("man: command not found")
			})
		}, []DocRef{{Index: 1, HasIndex: true}}},
		{"no documenter", func(refs *[]DocRef) Documenter { return nil }, []DocRef{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logTestOutput := setupTestLogging(t)
			defer logTestOutput()

			refs := []DocRef{}
			schema := New().
				Flag("-f").
				Var("-w", Doc(ManPage(1))).
				SetDocumenter(tt.docFn(&refs))

			result, err := schema.Validate([]string{"-w", "--help", "-f"})
			require.NoError(t, err)
			assert.Equal(t, tt.refs, refs)
			assert.Equal(t, StopEnd, result.Stop())
			expected := map[string]interface{}{"-w": "--help", "-f": true}
			if diff := cmp.Diff(expected, result.Map()); diff != "" {
				t.Errorf("unexpected result (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHelpDocNotTriggered(t *testing.T) {
	called := false
	schema := New().
		Var("-w", Doc(DocRef{})).
		SetDocumenter(DocumenterFunc(func(DocRef) error { called = true; return nil }))
	result, err := schema.Validate([]string{"-w", "page"})
	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, "page", result.String("-w"))
}

func TestHelpTriggers(t *testing.T) {
	triggers := HelpTriggers()
	assert.Equal(t, []string{"--help", "help", "-h"}, triggers)
	triggers[0] = "changed"
	assert.Equal(t, "--help", HelpTriggers()[0])
}
