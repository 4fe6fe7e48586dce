// This file is part of go-car.
//
// Copyright (C) 2019-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package schemafile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidGamba/go-car"
)

type recorder struct {
	help    []string
	success []string
}

func (r *recorder) handlers() Handlers {
	return Handlers{
		Help: map[string]car.HelpFn{
			"v_help": func(key string) { r.help = append(r.help, key) },
		},
		Success: map[string]car.SuccessFn{
			"used": func(key string, _ map[string]interface{}) { r.success = append(r.success, key) },
		},
	}
}

func TestLoad(t *testing.T) {
	for _, path := range []string{"testdata/command.yaml", "testdata/command.toml"} {
		t.Run(path, func(t *testing.T) {
			r := &recorder{}
			d, err := Load(path, r.handlers())
			require.NoError(t, err)
			require.NotNil(t, d.Man)
			assert.Equal(t, []string{"command.1", "command-welp.1"}, d.Man.Pages())

			keys := []string{}
			for _, o := range d.Schema.Options() {
				keys = append(keys, o.Key)
			}
			assert.Equal(t, []string{"-v", "-f", "-c", "-m", "-w"}, keys)

			spec, ok := d.Schema.Lookup("--combo")
			require.True(t, ok)
			assert.False(t, spec.Combinable())

			spec, _ = d.Schema.Lookup("-m")
			assert.Equal(t, car.VarKind, spec.Kind)
			assert.True(t, spec.HasDefault)
			assert.Equal(t, "mixed", spec.Default)

			spec, _ = d.Schema.Lookup("-w")
			assert.Equal(t, car.ManPage(1), spec.Help)

			result, err := d.Schema.Validate([]string{"--flag", "--var=x", "--mixed"})
			require.NoError(t, err)
			expected := map[string]interface{}{"-f": true, "-v": "x", "-m": "mixed"}
			if diff := cmp.Diff(expected, result.Map()); diff != "" {
				t.Errorf("unexpected result (-want +got):\n%s", diff)
			}
			assert.Equal(t, []string{"-f", "-v"}, r.success)

			result, err = d.Schema.Validate([]string{"-v", "h"})
			require.NoError(t, err)
			assert.Equal(t, car.StopHelp, result.Stop())
			assert.Equal(t, []string{"-v"}, r.help)
		})
	}
}

func TestLoadDocumenter(t *testing.T) {
	d, err := Load("testdata/command.yaml", (&recorder{}).handlers())
	require.NoError(t, err)
	shown := []string{}
	d.Man.SetRunner(func(page string) error {
		shown = append(shown, page)
		return nil
	})
	_, err = d.Schema.Validate([]string{"--welp", "--help"})
	require.NoError(t, err)
	assert.Equal(t, []string{"command-welp.1"}, shown)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("testdata/command.json", Handlers{})
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load("testdata/missing.yaml", Handlers{})
	assert.Error(t, err)

	_, err = Load("testdata/command.yaml", Handlers{})
	assert.ErrorIs(t, err, ErrUnknownHandler)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  error
	}{
		{"flag and var", "options:\n  - key: -x\n    flag: true\n    var: true\n", nil},
		{"no kind", "options:\n  - key: -x\n", car.ErrInvalidSchema},
		{"duplicate key", "options:\n  - key: -x\n    flag: true\n  - key: -x\n    var: true\n", car.ErrInvalidSchema},
		{"bad doc ref", "options:\n  - key: -x\n    var: true\n    help: \"%man#x\"\n", car.ErrInvalidSchema},
		{"unknown help", "options:\n  - key: -x\n    var: true\n    help: nope\n", ErrUnknownHandler},
		{"unknown success", "options:\n  - key: -x\n    flag: true\n    on_success: nope\n", ErrUnknownHandler},
		{"bad yaml", "options: [", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), YAML, Handlers{})
			require.Error(t, err)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestParseNoMan(t *testing.T) {
	d, err := Parse([]byte("options = [{key = \"-f\", flag = true}]\n"), TOML, Handlers{})
	require.NoError(t, err)
	assert.Nil(t, d.Man)
	result, err := d.Schema.Validate([]string{"-f"})
	require.NoError(t, err)
	assert.True(t, result.Bool("-f"))
}

func TestFormatFromPath(t *testing.T) {
	for path, expected := range map[string]Format{"a.yaml": YAML, "a.YML": YAML, "a.toml": TOML} {
		f, err := FormatFromPath(path)
		require.NoError(t, err)
		assert.Equal(t, expected, f)
	}
}
