// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package settings provides specialized data types for configuration
// settings which need custom (de)serialization or validation logic.
package settings

import (
	"log/slog"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a specialization of the time.Duration which produces a
// more human-readable representation when marshaled.
type Duration time.Duration

// UnmarshalText reifies the encoding.TextUnmarshaler interface, so
// a byte slice (e.g., read from a YAML file) can be decoded as a
// time duration. The format of the `data` argument should conform
// to the time.ParseDuration expected format. In absence of errors,
// a nil error will be returned and only then, `d` receiver will be
// updated to contain the decoded duration.
func (d *Duration) UnmarshalText(data []byte) error {
	dd, err := time.ParseDuration(string(data))
	if err != nil {
		return err
	}
	*d = Duration(dd)
	return nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface by
// delegating to UnmarshalText, as the yaml library does not consult
// the encoding.TextUnmarshaler interface on its own.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// MarshalText implements the encoding.TextMarshaler interface and
// serializes `d` duration according to the time.Duration string
// representation format, e.g., 2h3m4s, with this difference that zero
// trailing values will be dropped for sake of more readability.
// That is, no 0s or 0m0s suffix may be included.
func (d Duration) MarshalText() ([]byte, error) {
	s := time.Duration(d).String()
	if strings.HasSuffix(s, "m0s") {
		s = s[:len(s)-2]
	}
	if strings.HasSuffix(s, "h0m") {
		s = s[:len(s)-2]
	}
	return []byte(s), nil
}

// LogValue implements slog.LogValuer and returns a DurationValue if
// this Duration is not nil, otherwise, it returns a StringValue with
// the constant "nil-duration" value.
func (d *Duration) LogValue() slog.Value {
	if d == nil {
		return slog.StringValue("nil-duration")
	}
	return slog.DurationValue(time.Duration(*d))
}
