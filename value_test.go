// This file is part of go-argh.
//
// Copyright (C) 2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argh

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueConversions(t *testing.T) {
	p := New("int", "float", "bool", "duration", "ip")
	p.Parse([]string{
		"--int", "-42",
		"--float", "2.5",
		"--bool", "true",
		"--duration", "1h30m",
		"--ip", "127.0.0.1",
	})

	i, err := p.Param("int").Int()
	require.NoError(t, err)
	assert.Equal(t, -42, i)

	i64, err := p.Param("int").Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(-42), i64)

	f, err := p.Param("float").Float64()
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	b, err := p.Param("bool").Bool()
	require.NoError(t, err)
	assert.True(t, b)

	d, err := p.Param("duration").Duration()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, d)

	var ip net.IP
	require.NoError(t, p.Param("ip").Text(&ip))
	assert.Equal(t, net.ParseIP("127.0.0.1"), ip)
}

func TestValueConversionFailures(t *testing.T) {
	p := New("word")
	p.Parse([]string{"--word", "hello"})
	v := p.Param("word")

	_, err := v.Int()
	assert.Error(t, err)
	_, err = v.Float64()
	assert.Error(t, err)
	_, err = v.Bool()
	assert.Error(t, err)
	_, err = v.Duration()
	assert.Error(t, err)
	var ip net.IP
	assert.Error(t, v.Text(&ip))

	// The raw string stays retrievable regardless.
	assert.Equal(t, "hello", v.String())

	// Or variants fall back.
	assert.Equal(t, 5, v.IntOr(5))
	assert.Equal(t, 0.5, v.Float64Or(0.5))
	assert.True(t, v.BoolOr(true))
	assert.Equal(t, time.Second, v.DurationOr(time.Second))
	assert.Equal(t, "hello", v.StringOr("other"))
}

func TestAbsentValue(t *testing.T) {
	p := NewParsed([]string{})
	v := p.Param("missing")

	assert.False(t, v.Defined())
	assert.ErrorIs(t, v.Err(), ErrorNotFound)

	// Absent propagates through every conversion, never a silent zero.
	_, err := v.Int()
	assert.ErrorIs(t, err, ErrorNotFound)
	_, err = v.Uint64()
	assert.ErrorIs(t, err, ErrorNotFound)
	_, err = v.Float64()
	assert.ErrorIs(t, err, ErrorNotFound)
	_, err = v.Bool()
	assert.ErrorIs(t, err, ErrorNotFound)
	_, err = v.Duration()
	assert.ErrorIs(t, err, ErrorNotFound)
	var ip net.IP
	assert.ErrorIs(t, v.Text(&ip), ErrorNotFound)

	assert.Equal(t, 3, v.IntOr(3))
	assert.Equal(t, "def", v.StringOr("def"))
}

func TestValueUint64(t *testing.T) {
	p := New("n")
	p.Parse([]string{"--n", "18446744073709551615"})
	u, err := p.Param("n").Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), u)

	p.Parse([]string{"--n", "-1"})
	_, err = p.Param("n").Uint64()
	assert.Error(t, err)
}
