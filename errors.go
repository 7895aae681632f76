// This file is part of go-argh.
//
// Copyright (C) 2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argh

import "github.com/cockroachdb/errors"

// ErrorNotFound - Reported through Value.Err() when a positional index is out
// of range or a parameter name was never supplied and no default was given.
var ErrorNotFound = errors.New("not found")
