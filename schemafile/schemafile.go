// This file is part of go-car.
//
// Copyright (C) 2019-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package schemafile - Loads a car.Schema from a YAML or TOML file.
//
// Example YAML file:
//
//	man: [mycmd.1, mycmd-var.1]
//	options:
//	  - key: -v
//	    var: true
//	    long: --var
//	    help: v_help
//	    help_trigger: [h]
//	  - key: -w
//	    var: true
//	    help: "%man#1"
//	  - key: -c
//	    flag: true
//	    combine: false
//
// Handler names used by help and on_success are resolved with Handlers.
// Help values starting with %man are documentation references displayed
// with the man package.
package schemafile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/DavidGamba/go-car"
	"github.com/DavidGamba/go-car/man"
)

// ErrUnknownFormat - The file extension is not supported.
var ErrUnknownFormat = errors.New("unknown schema file format")

// ErrUnknownHandler - A handler name is not registered.
var ErrUnknownHandler = errors.New("unknown handler")

// Format - Schema file encoding.
type Format int

// Supported formats.
const (
	YAML Format = iota
	TOML
)

// File - Schema file contents.
type File struct {
	Man     []string `yaml:"man" toml:"man"`
	Options []Entry  `yaml:"options" toml:"options"`
}

// Entry - Option definition as written in the file.
type Entry struct {
	Key         string   `yaml:"key" toml:"key"`
	Flag        bool     `yaml:"flag" toml:"flag"`
	Var         bool     `yaml:"var" toml:"var"`
	Combine     *bool    `yaml:"combine" toml:"combine"`
	Default     *string  `yaml:"default" toml:"default"`
	Long        string   `yaml:"long" toml:"long"`
	Help        string   `yaml:"help" toml:"help"`
	HelpTrigger []string `yaml:"help_trigger" toml:"help_trigger"`
	OnSuccess   string   `yaml:"on_success" toml:"on_success"`
	Description string   `yaml:"description" toml:"description"`
}

// Handlers - Named handlers referenced from the file.
type Handlers struct {
	Help    map[string]car.HelpFn
	Success map[string]car.SuccessFn
}

// Definition - Result of loading a schema file.
type Definition struct {
	Schema *car.Schema
	// Man pages listed in the file, set as the schema documenter when not empty.
	Man *man.Pages
}

// FormatFromPath - Returns the format matching the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return 0, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// Load - Reads and builds the schema file at path.
func Load(path string, h Handlers) (*Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	d, err := Parse(data, format, h)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse - Decodes data in the given format and builds the schema.
func Parse(data []byte, format Format, h Handlers) (*Definition, error) {
	f := File{}
	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &f)
	case TOML:
		err = toml.Unmarshal(data, &f)
	default:
		return nil, ErrUnknownFormat
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode schema: %w", err)
	}
	return f.Build(h)
}

// Build - Defines every entry in a new schema.
func (f *File) Build(h Handlers) (*Definition, error) {
	d := &Definition{Schema: car.New()}
	if len(f.Man) > 0 {
		d.Man = man.New(f.Man...)
		d.Schema.SetDocumenter(d.Man)
	}
	for i, e := range f.Options {
		spec, err := e.spec(h)
		if err != nil {
			return nil, fmt.Errorf("option %d: %w", i, err)
		}
		err = d.Schema.Define(spec)
		if err != nil {
			return nil, fmt.Errorf("option %d: %w", i, err)
		}
	}
	return d, nil
}

func (e *Entry) spec(h Handlers) (car.OptionSpec, error) {
	spec := car.OptionSpec{
		Key:          e.Key,
		LongAlias:    e.Long,
		HelpTriggers: e.HelpTrigger,
		Description:  e.Description,
	}
	switch {
	case e.Flag && e.Var:
		return spec, fmt.Errorf("option '%s' can't be both a flag and a var", e.Key)
	case e.Flag:
		spec.Kind = car.FlagKind
		spec.Exclusive = e.Combine != nil && !*e.Combine
	case e.Var:
		spec.Kind = car.VarKind
		if e.Default != nil {
			spec.Default = *e.Default
			spec.HasDefault = true
		}
	}

	if strings.HasPrefix(e.Help, car.DocRefPlaceholder) {
		ref, err := car.ParseDocRef(e.Help)
		if err != nil {
			return spec, err
		}
		spec.Help = ref
	} else if e.Help != "" {
		fn, ok := h.Help[e.Help]
		if !ok {
			return spec, fmt.Errorf("help '%s': %w", e.Help, ErrUnknownHandler)
		}
		spec.Help = fn
	}

	if e.OnSuccess != "" {
		fn, ok := h.Success[e.OnSuccess]
		if !ok {
			return spec, fmt.Errorf("on_success '%s': %w", e.OnSuccess, ErrUnknownHandler)
		}
		spec.OnSuccess = fn
	}
	return spec, nil
}
