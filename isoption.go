// This file is part of go-argh.
//
// Copyright (C) 2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argh

import (
	"strconv"
	"strings"
)

// isNumber - Check if the given string is a numeric literal.
// The whole string has to parse as a float, a partial parse like "-3abc" does
// not count as a number.
func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

/*
isOption - Check if the given string is an option (starts with - or /).

The numeric check runs first so that a negative number given as a positional
value ("-3.14") is never mistaken for an option. The same test is used on the
lookahead token when deciding whether an option has a value available.
*/
func isOption(s string) bool {
	if s == "" {
		return false
	}
	if isNumber(s) {
		return false
	}
	return s[0] == '-' || s[0] == '/'
}

// trimLeadingMarkers - Return the bare name: the string without its leading
// '-' markers, or, when it has none, without its leading '/' markers.
// A string of all dashes trims down to the empty name.
func trimLeadingMarkers(s string) string {
	trimmed := strings.TrimLeft(s, "-")
	if trimmed != s {
		return trimmed
	}
	return strings.TrimLeft(s, "/")
}
