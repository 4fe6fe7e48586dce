// This file is part of go-car.
//
// Copyright (C) 2019-2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"github.com/spf13/viper"
)

type config struct {
	Debug    bool
	NoColor  bool
	ManPages []string
}

// loadConfig reads the CAR_ prefixed environment.
func loadConfig() config {
	v := viper.New()
	v.SetEnvPrefix("CAR")
	v.AutomaticEnv()

	v.SetDefault("debug", false)
	v.SetDefault("no_color", false)
	v.SetDefault("man_pages", []string{})

	return config{
		Debug:    v.GetBool("debug"),
		NoColor:  v.GetBool("no_color"),
		ManPages: v.GetStringSlice("man_pages"),
	}
}
