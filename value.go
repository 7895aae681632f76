// This file is part of go-argh.
//
// Copyright (C) 2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argh

import (
	"encoding"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cast"
)

// Value - the result of a positional or parameter lookup.
//
// It either holds the raw string that was found (or the stringified default)
// or it carries an explicit error for an absent lookup. An absent Value never
// converts to a zero value silently: Err() reports ErrorNotFound and every
// conversion method passes the error through.
type Value struct {
	raw string
	err error
}

// Defined - tells if the lookup produced a usable string.
func (v Value) Defined() bool {
	return v.err == nil
}

// Err - the lookup or default stringification error, nil when Defined.
// For absent lookups errors.Is(v.Err(), argh.ErrorNotFound) holds.
func (v Value) Err() error {
	return v.err
}

// String - the raw underlying string, empty when the Value is not Defined.
func (v Value) String() string {
	return v.raw
}

// StringOr - the raw underlying string, or def when the Value is not Defined.
func (v Value) StringOr(def string) string {
	if v.err != nil {
		return def
	}
	return v.raw
}

// Int - converts the raw string to an int.
func (v Value) Int() (int, error) {
	if v.err != nil {
		return 0, v.err
	}
	i, err := strconv.Atoi(v.raw)
	if err != nil {
		return 0, errors.Wrapf(err, "can't convert %q to int", v.raw)
	}
	return i, nil
}

// IntOr - converts the raw string to an int, def on any failure.
func (v Value) IntOr(def int) int {
	i, err := v.Int()
	if err != nil {
		return def
	}
	return i
}

// Int64 - converts the raw string to an int64.
func (v Value) Int64() (int64, error) {
	if v.err != nil {
		return 0, v.err
	}
	i, err := strconv.ParseInt(v.raw, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "can't convert %q to int64", v.raw)
	}
	return i, nil
}

// Uint64 - converts the raw string to a uint64.
func (v Value) Uint64() (uint64, error) {
	if v.err != nil {
		return 0, v.err
	}
	u, err := strconv.ParseUint(v.raw, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "can't convert %q to uint64", v.raw)
	}
	return u, nil
}

// Float64 - converts the raw string to a float64.
func (v Value) Float64() (float64, error) {
	if v.err != nil {
		return 0, v.err
	}
	f, err := strconv.ParseFloat(v.raw, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "can't convert %q to float64", v.raw)
	}
	return f, nil
}

// Float64Or - converts the raw string to a float64, def on any failure.
func (v Value) Float64Or(def float64) float64 {
	f, err := v.Float64()
	if err != nil {
		return def
	}
	return f
}

// Bool - converts the raw string to a bool, strconv.ParseBool rules.
func (v Value) Bool() (bool, error) {
	if v.err != nil {
		return false, v.err
	}
	b, err := strconv.ParseBool(v.raw)
	if err != nil {
		return false, errors.Wrapf(err, "can't convert %q to bool", v.raw)
	}
	return b, nil
}

// BoolOr - converts the raw string to a bool, def on any failure.
func (v Value) BoolOr(def bool) bool {
	b, err := v.Bool()
	if err != nil {
		return def
	}
	return b
}

// Duration - converts the raw string to a time.Duration.
func (v Value) Duration() (time.Duration, error) {
	if v.err != nil {
		return 0, v.err
	}
	d, err := time.ParseDuration(v.raw)
	if err != nil {
		return 0, errors.Wrapf(err, "can't convert %q to duration", v.raw)
	}
	return d, nil
}

// DurationOr - converts the raw string to a time.Duration, def on any failure.
func (v Value) DurationOr(def time.Duration) time.Duration {
	d, err := v.Duration()
	if err != nil {
		return def
	}
	return d
}

// Text - parses the raw string into any type with a standard text
// representation, for example a *net.IP or a *time.Time.
func (v Value) Text(target encoding.TextUnmarshaler) error {
	if v.err != nil {
		return v.err
	}
	return target.UnmarshalText([]byte(v.raw))
}

// defaultValue - builds a Value out of a caller supplied default.
// The default is stringified the generic way so the caller can hand over an
// int, a float, a Stringer, etc. A default that can't be stringified gives a
// failed Value rather than a panic.
func defaultValue(def interface{}) Value {
	s, err := cast.ToStringE(def)
	if err != nil {
		return Value{err: errors.Wrap(err, "default value")}
	}
	return Value{raw: s}
}
