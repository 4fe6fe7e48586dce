// This file is part of go-car.
//
// Copyright (C) 2019-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package car

import (
	"fmt"
	"strings"

	"github.com/DavidGamba/go-car/text"
)

// Kind - Indicates how an option is satisfied.
type Kind int

// Option kinds.
// The zero value is not a valid kind so an OptionSpec must declare one.
const (
	InvalidKind Kind = iota
	FlagKind         // satisfied by its presence
	VarKind          // requires a value
)

func (k Kind) String() string {
	switch k {
	case FlagKind:
		return "flag"
	case VarKind:
		return "var"
	}
	return "invalid"
}

// SuccessFn - Handler called every time its option is recorded.
// values is a snapshot of the result at that point.
type SuccessFn func(key string, values map[string]interface{})

// HelpAction - What to do when an option value is a help trigger.
// It is either a HelpFn or a DocRef, nil means no action.
type HelpAction interface {
	helpAction()
}

// HelpFn - Help handler, it receives the canonical key of the option.
// Calling it ends the validation successfully.
type HelpFn func(key string)

func (HelpFn) helpAction() {}

// OptionSpec - Definition of an option.
type OptionSpec struct {
	Key  string // canonical key, for example -v
	Kind Kind

	// Exclusive flags can't be combined with other options.
	Exclusive bool

	// Default value for vars, only used when HasDefault is set.
	Default    string
	HasDefault bool

	LongAlias string // optional alternate token, for example --var

	Help         HelpAction
	HelpTriggers []string // custom triggers, additional to the global ones

	OnSuccess   SuccessFn
	Description string // used for the generated usage
}

// Combinable - Tells if the option can be used together with other options.
func (spec *OptionSpec) Combinable() bool {
	return !(spec.Kind == FlagKind && spec.Exclusive)
}

// Schema - Set of option definitions.
// A Schema is read only once defined, the same Schema can validate any
// number of token sequences, concurrently if required.
type Schema struct {
	options    map[string]*OptionSpec
	order      []string          // definition order
	aliases    map[string]string // map[long alias]key
	onFailure  func(msg string)
	documenter Documenter
}

// New returns an empty Schema.
// This is the starting point when using go-car.
// For example:
//
//	schema := car.New()
func New() *Schema {
	return &Schema{
		options: make(map[string]*OptionSpec),
		aliases: make(map[string]string),
	}
}

// Define - Adds an option definition and returns an ErrInvalidSchema error if it conflicts with the existing ones.
func (s *Schema) Define(spec OptionSpec) error {
	switch {
	case spec.Key == "":
		return schemaError(text.ErrorEmptyKey)
	case spec.Key == appendOperator || spec.Key == assignOperator:
		return schemaError(text.ErrorReservedKey, spec.Key)
	case strings.Contains(spec.Key, assignOperator):
		return schemaError(text.ErrorKeyWithOperator, spec.Key)
	case spec.Kind != FlagKind && spec.Kind != VarKind:
		return schemaError(text.ErrorUnknownKind, spec.Key)
	}
	if _, ok := s.options[spec.Key]; ok {
		return schemaError(text.ErrorKeyDefined, spec.Key)
	}
	if key, ok := s.aliases[spec.Key]; ok {
		return schemaError(text.ErrorKeyIsAlias, spec.Key, key)
	}
	if spec.LongAlias != "" {
		if err := s.checkAlias(spec.LongAlias, spec.Key); err != nil {
			return err
		}
		s.aliases[spec.LongAlias] = spec.Key
	}
	spec.HelpTriggers = append([]string(nil), spec.HelpTriggers...)
	s.options[spec.Key] = &spec
	s.order = append(s.order, spec.Key)
	Logger.Debug("defined option", "key", spec.Key, "kind", spec.Kind, "alias", spec.LongAlias)
	return nil
}

func (s *Schema) checkAlias(alias, key string) error {
	if strings.Contains(alias, assignOperator) || alias == appendOperator {
		return schemaError(text.ErrorReservedKey, alias)
	}
	if _, ok := s.options[alias]; ok || alias == key {
		return schemaError(text.ErrorAliasIsKey, alias)
	}
	if k, ok := s.aliases[alias]; ok {
		return schemaError(text.ErrorAliasDefined, alias, k)
	}
	return nil
}

// define will *panic* if the option conflicts with the existing ones.
// This is not an error because the programmer has to fix this!
func (s *Schema) define(key string, kind Kind, fns ...ModifyFn) *Schema {
	spec := OptionSpec{Key: key, Kind: kind}
	for _, fn := range fns {
		fn(&spec)
	}
	if err := s.Define(spec); err != nil {
		panic(err.Error())
	}
	return s
}

// Flag - Defines a flag option, it records true when used.
func (s *Schema) Flag(key string, fns ...ModifyFn) *Schema {
	return s.define(key, FlagKind, fns...)
}

// Var - Defines an option that requires a value.
func (s *Schema) Var(key string, fns ...ModifyFn) *Schema {
	return s.define(key, VarKind, fns...)
}

// LongForms - Registers long aliases for already defined options.
// The map goes from long alias to canonical key, for example:
//
//	schema.LongForms(map[string]string{"--var": "-v", "--flag": "-f"})
//
// It *panics* if a key is undefined, already has a long alias or the alias is taken.
func (s *Schema) LongForms(longForms map[string]string) *Schema {
	for alias, key := range longForms {
		spec, ok := s.options[key]
		if !ok {
			panic(fmt.Sprintf(text.ErrorAliasUnknownKey, alias, key))
		}
		if spec.LongAlias != "" {
			panic(fmt.Sprintf(text.ErrorAliasDefined, spec.LongAlias, key))
		}
		if err := s.checkAlias(alias, key); err != nil {
			panic(err.Error())
		}
		spec.LongAlias = alias
		s.aliases[alias] = key
	}
	return s
}

// OnFailure - Sets a handler called once with the error message every time a validation fails.
func (s *Schema) OnFailure(fn func(msg string)) *Schema {
	s.onFailure = fn
	return s
}

// SetDocumenter - Sets the collaborator used to display DocRef help actions.
func (s *Schema) SetDocumenter(d Documenter) *Schema {
	s.documenter = d
	return s
}

// Lookup - Returns a copy of the option definition for the given key or long alias.
func (s *Schema) Lookup(name string) (OptionSpec, bool) {
	spec, ok := s.options[s.resolveAlias(name)]
	if !ok {
		return OptionSpec{}, false
	}
	return *spec, true
}

// Options - Returns a copy of the option definitions in definition order.
func (s *Schema) Options() []OptionSpec {
	list := make([]OptionSpec, 0, len(s.order))
	for _, key := range s.order {
		list = append(list, *s.options[key])
	}
	return list
}
