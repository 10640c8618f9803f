// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
)

// Condition specifies the car condition enum and accepts the two
// new and used states. Although this enum is numeric, it is
// (de)serialized as an upper-case string, matching the wire format
// which is expected by the REST API clients.
type Condition int

// Valid values for the Condition enum.
const (
	ConditionInvalid Condition = iota // zero value is invalid

	ConditionNew  // a brand new car
	ConditionUsed // a second-hand car
)

// ErrUnknownCondition indicates that a given string may not be parsed
// as a valid/known car condition. This error encodes a description
// string and does not communicate the invalid condition string itself
// because the caller of ParseCondition already knows about it.
var ErrUnknownCondition = errors.New("unknown car condition")

// ConditionError indicates an invalid condition value, containing the
// invalid enum value as an integer.
type ConditionError int

// Error implements the error interface, returning a string
// representation of the ConditionError.
func (e ConditionError) Error() string {
	return fmt.Sprintf("invalid car condition: %d", int(e))
}

// Validate returns nil if the Condition value is valid. For invalid
// values, an instance of the ConditionError will be returned.
func (c Condition) Validate() error {
	switch c {
	case ConditionNew, ConditionUsed:
		return nil
	default:
		return ConditionError(c)
	}
}

// String converts the Condition enum to a string, helping to
// serialize it for transmission to web clients. An invalid condition
// causes a panic.
func (c Condition) String() string {
	switch c {
	case ConditionNew:
		return "NEW"
	case ConditionUsed:
		return "USED"
	default:
		panic(ConditionError(c))
	}
}

// ParseCondition parses the given string and returns a Condition,
// helping to deserialize it when reading a REST API request or a
// database column. For invalid strings, ConditionInvalid and
// ErrUnknownCondition will be returned.
func ParseCondition(c string) (Condition, error) {
	switch c {
	case "NEW":
		return ConditionNew, nil
	case "USED":
		return ConditionUsed, nil
	default:
		return ConditionInvalid, ErrUnknownCondition
	}
}
