// This file is part of go-argh.
//
// Copyright (C) 2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argh

import (
	"strings"

	"github.com/DavidGamba/go-argh/internal/sliceiterator"
)

/*
Parse - Classify the given args into positional values, flags and parameters.

Single left to right pass with one token of lookahead:

 1. A token that is not an option is a positional value.
 2. The leading markers are stripped off to get the bare name.
 3. A bare name containing '=' is split into a name=value parameter
    (unless SetEqualsSplit(false)).
 4. A single dash multi character unregistered name expands per character
    when bundling is enabled.
 5. Otherwise the next token decides: when there is none, or it is itself an
    option, the name is a flag. When a value candidate follows, a registered
    name (or PreferParam mode) captures it as a parameter; otherwise the name
    is a flag and the value candidate is classified on its own.

Each call starts from empty results, previous Parse output is discarded.
Registered parameter names are kept.

Classification never fails: every ambiguity resolves deterministically and
the absence of a value only surfaces later, through the accessors.
*/
func (p *Parser) Parse(args []string) {
	Logger.Printf("Parse args: %v(%d)\n", args, len(args))
	p.reset()
	it := sliceiterator.New(args)
	for it.Next() {
		arg := it.Value()
		if !isOption(arg) {
			Logger.Printf("positional: %s\n", arg)
			p.positional = append(p.positional, arg)
			continue
		}

		name := trimLeadingMarkers(arg)

		if p.equalsSplit {
			if idx := strings.Index(name, "="); idx >= 0 {
				Logger.Printf("param from equals: %s\n", name)
				p.setParam(name[:idx], name[idx+1:])
				continue
			}
		}

		// Exactly one marker char stripped means the single dash (or slash) form.
		if len(arg)-len(name) == 1 && p.bundling && !p.isParam(name) {
			keepParam := ""
			runes := []rune(name)
			if len(runes) > 0 && p.isParam(string(runes[len(runes)-1])) {
				// The last char is a registered parameter, hold it back so it
				// still gets a chance to capture a following value.
				keepParam = string(runes[len(runes)-1])
				runes = runes[:len(runes)-1]
			}
			for _, r := range runes {
				Logger.Printf("bundled flag: %c\n", r)
				p.addFlag(string(r))
			}
			if keepParam == "" {
				continue
			}
			name = keepParam
		}

		next, ok := it.PeekNextValue()
		if !ok || isOption(next) {
			Logger.Printf("flag: %s\n", name)
			p.addFlag(name)
			continue
		}

		if p.isParam(name) || p.mode == PreferParam {
			Logger.Printf("param: %s=%s\n", name, next)
			p.setParam(name, next)
			it.SkipNext()
			continue
		}
		Logger.Printf("flag: %s\n", name)
		p.addFlag(name)
	}
	Logger.Printf("Parse results: pos %v, flags %v, params %v\n", p.positional, p.flags, p.params)
}

// reset - drops the results of a previous Parse call.
// Registered parameter names survive.
func (p *Parser) reset() {
	p.flags = nil
	p.params = make(map[string]string)
	p.positional = nil
}

func (p *Parser) addFlag(name string) {
	p.flags = append(p.flags, name)
}

// setParam - repeated names silently overwrite, last one wins.
func (p *Parser) setParam(name, value string) {
	p.params[name] = value
}
