// This file is part of go-argh.
//
// Copyright (C) 2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argh

import (
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// GotFlag - tells if the flag appeared under the given name or any of its
// aliases. Names are compared after marker stripping, so "-v", "--v" and "v"
// all ask about the same flag.
func (p *Parser) GotFlag(name string, aliases ...string) bool {
	return lo.SomeBy(append([]string{name}, aliases...), func(alias string) bool {
		return lo.Contains(p.flags, trimLeadingMarkers(alias))
	})
}

// FlagCount - how many times the flag appeared, summed over the given name
// and its aliases. Repeated flags are retained, "-v -v -v" counts 3.
func (p *Parser) FlagCount(name string, aliases ...string) int {
	count := 0
	for _, alias := range append([]string{name}, aliases...) {
		count += lo.Count(p.flags, trimLeadingMarkers(alias))
	}
	return count
}

// Flags - every flag occurrence in the order it appeared, duplicates
// retained. The returned slice is a copy.
func (p *Parser) Flags() []string {
	return append([]string{}, p.flags...)
}

// Params - a copy of the parameter name/value results.
func (p *Parser) Params() map[string]string {
	return lo.Assign(p.params)
}

// PosArgs - the positional values in input order. Like the original args but
// without the options. The returned slice is a copy.
func (p *Parser) PosArgs() []string {
	return append([]string{}, p.positional...)
}

// Size - number of positional values.
func (p *Parser) Size() int {
	return len(p.positional)
}

// Pos - positional value by index. Out of range indexes give a Value carrying
// ErrorNotFound, not a crash and not a silent zero.
func (p *Parser) Pos(i int) Value {
	if i < 0 || i >= len(p.positional) {
		return Value{err: errors.Wrapf(ErrorNotFound, "positional %d", i)}
	}
	return Value{raw: p.positional[i]}
}

// PosOr - positional value by index with a default for out of range indexes.
// The default goes through generic stringification, see ParamOr.
func (p *Parser) PosOr(i int, def interface{}) Value {
	v := p.Pos(i)
	if v.Defined() {
		return v
	}
	return defaultValue(def)
}

// PosString - raw positional string by index, empty when out of range.
func (p *Parser) PosString(i int) string {
	if i < 0 || i >= len(p.positional) {
		return ""
	}
	return p.positional[i]
}

// Param - parameter value by name, trying each alias in order and returning
// the first match. Names are compared after marker stripping. A name that was
// never supplied gives a Value carrying ErrorNotFound.
func (p *Parser) Param(name string, aliases ...string) Value {
	for _, alias := range append([]string{name}, aliases...) {
		if value, ok := p.params[trimLeadingMarkers(alias)]; ok {
			return Value{raw: value}
		}
	}
	return Value{err: errors.Wrapf(ErrorNotFound, "parameter %q", name)}
}

// ParamOr - Param with a default for missing names. The default can be any
// value with a generic string form ("42", 42 and 42.0 all work); it is
// stringified and converted back on access so the typed accessors on the
// returned Value behave the same for found and defaulted lookups.
func (p *Parser) ParamOr(def interface{}, name string, aliases ...string) Value {
	v := p.Param(name, aliases...)
	if v.Defined() {
		return v
	}
	return defaultValue(def)
}
