// This file is part of go-car.
//
// Copyright (C) 2019-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package car

// helpTriggers - values that trigger the help of any option.
var helpTriggers = []string{"--help", "help", "-h"}

// HelpTriggers - Returns the global help triggers.
func HelpTriggers() []string {
	return append([]string(nil), helpTriggers...)
}

func isHelpTrigger(spec *OptionSpec, value string) bool {
	for _, t := range helpTriggers {
		if value == t {
			return true
		}
	}
	for _, t := range spec.HelpTriggers {
		if value == t {
			return true
		}
	}
	return false
}

// dispatchHelp - Runs the option help action when value is a help trigger.
// It returns true when validation has to stop.
func (s *Schema) dispatchHelp(spec *OptionSpec, value string) bool {
	if spec.Help == nil || !isHelpTrigger(spec, value) {
		return false
	}
	switch action := spec.Help.(type) {
	case HelpFn:
		Logger.Debug("help called", "key", spec.Key, "trigger", value)
		if action != nil {
			action(spec.Key)
		}
		return true
	case DocRef:
		if s.documenter == nil {
			Logger.Debug("no documenter set", "key", spec.Key, "ref", action)
			return false
		}
		// Documentation problems don't fail the validation.
		if err := s.documenter.ShowDoc(action); err != nil {
			Logger.Debug("failed to show documentation", "key", spec.Key, "ref", action, "error", err)
		}
	}
	return false
}
