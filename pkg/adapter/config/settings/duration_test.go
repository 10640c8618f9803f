// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings_test

import (
	"testing"
	"time"

	"github.com/momeni/vehicles-api/pkg/adapter/config/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDurationUnmarshal(t *testing.T) {
	for _, tc := range []struct {
		text     string
		expected time.Duration
	}{
		{"5s", 5 * time.Second},
		{"2m", 2 * time.Minute},
		{"1h30m", 90 * time.Minute},
	} {
		t.Run(tc.text, func(t *testing.T) {
			var d settings.Duration
			err := yaml.Unmarshal([]byte(tc.text), &d)
			require.NoError(t, err, "cannot unmarshal duration")
			assert.Equal(t, tc.expected, time.Duration(d))
		})
	}

	var d settings.Duration
	err := yaml.Unmarshal([]byte("five seconds"), &d)
	assert.Error(t, err, "free-form durations must be rejected")
}

func TestDurationMarshal(t *testing.T) {
	for _, tc := range []struct {
		d        time.Duration
		expected string
	}{
		{5 * time.Second, "5s"},
		{2 * time.Minute, "2m"},
		{time.Hour, "1h"},
		{90 * time.Minute, "1h30m"},
	} {
		t.Run(tc.expected, func(t *testing.T) {
			b, err := settings.Duration(tc.d).MarshalText()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, string(b))
		})
	}
}

func TestDurationLogValue(t *testing.T) {
	d := settings.Duration(5 * time.Second)
	assert.Equal(t, 5*time.Second, d.LogValue().Duration())
	var nilD *settings.Duration
	assert.Equal(t, "nil-duration", nilD.LogValue().String())
}
