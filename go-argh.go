// This file is part of go-argh.
//
// Copyright (C) 2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package argh - frills-free command line argument classifier.

Given the raw args a process receives at startup, argh partitions them into
three buckets: positional values, boolean flags and name/value parameters.
There are no option declarations, no help text and no validation rules; the
caller inspects the result through typed accessors and layers whatever policy
it wants on top.

Usage

	p := argh.New("output") // register "output" as a parameter up front
	p.Parse(os.Args[1:])

	if p.GotFlag("verbose", "v") {
		// ...
	}
	file := p.Param("output", "o").StringOr("a.out")
	count, err := p.ParamOr(1, "count").Int()

Terminology

A command line is composed of two types of args:

 1. Positional values, free standing strings.
 2. Options: args beginning with '-' (or '/'). We identify two kinds:
    2.1 Flags: boolean options, their mere presence is the signal.
    2.2 Parameters: a name followed by a value, or joined to it with '='.

A token that looks like a negative number ("-3.14") is never an option, it is
kept as a positional value.

Ambiguity

"--name Bob" could mean the flag "name" followed by the positional "Bob", or
the parameter name=Bob. Registering "name" with AddParam resolves it as a
parameter; for unregistered names the Mode decides (PreferFlag by default).
*/
package argh

import (
	"io"
	"log"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Mode - resolution for an option name that is not registered as a parameter
// when it is followed by a value candidate.
type Mode int

const (
	// PreferFlag - an unregistered option name becomes a flag and the
	// following token stays free to be classified on its own. The default.
	PreferFlag Mode = iota

	// PreferParam - an unregistered option name captures the following token
	// as its value.
	PreferParam
)

// Parser - holds the classification settings and, after a Parse call, its
// results. Not safe for concurrent use.
type Parser struct {
	mode        Mode
	bundling    bool
	equalsSplit bool

	registered map[string]struct{}

	// Parse outputs.
	flags      []string          // multiset, occurrence order, duplicates retained
	params     map[string]string // last write wins
	positional []string          // input order, duplicates retained
}

// New - returns an empty *Parser.
// Any given names are registered as parameters, same as calling AddParams.
func New(params ...string) *Parser {
	p := &Parser{
		equalsSplit: true,
		registered:  make(map[string]struct{}),
		params:      make(map[string]string),
	}
	p.AddParams(params...)
	return p
}

// NewParsed - builds a *Parser with the given registered parameter names and
// immediately classifies args with the default settings.
func NewParsed(args []string, params ...string) *Parser {
	p := New(params...)
	p.Parse(args)
	return p
}

// AddParam - registers a name as a parameter.
// Leading '-' or '/' markers are stripped, so "--output", "-output" and
// "output" all register the same name.
func (p *Parser) AddParam(name string) *Parser {
	p.registered[trimLeadingMarkers(name)] = struct{}{}
	return p
}

// AddParams - registers each name as a parameter. See AddParam.
func (p *Parser) AddParams(names ...string) *Parser {
	for _, name := range names {
		p.AddParam(name)
	}
	return p
}

// SetMode - sets the resolution Mode for unregistered option names.
func (p *Parser) SetMode(mode Mode) *Parser {
	p.mode = mode
	return p
}

// SetBundling - when enabled, a single dash unregistered option with a multi
// character name expands into one flag per character: "-abc" gives the flags
// a, b and c. If the last character is a registered parameter it instead
// captures the following value: with "f" registered, "-xvf file.txt" gives
// the flags x and v plus the parameter f=file.txt. Disabled by default.
func (p *Parser) SetBundling(enabled bool) *Parser {
	p.bundling = enabled
	return p
}

// SetEqualsSplit - controls recognition of single token "name=value"
// parameters. Enabled by default; when disabled such tokens go through the
// normal flag/parameter resolution with '=' kept as part of the name.
func (p *Parser) SetEqualsSplit(enabled bool) *Parser {
	p.equalsSplit = enabled
	return p
}

// isParam - tells if the bare name was registered as a parameter.
func (p *Parser) isParam(name string) bool {
	_, ok := p.registered[name]
	return ok
}
