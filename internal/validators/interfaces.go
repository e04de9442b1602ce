// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks plant, journal and schedule input before it
// reaches the persistence gateway.
//
// Services validate whole values or, when only part of a value changed
// (e.g. a journal note edit), restrict the check to the named fields using
// the Field* constants.
package validators

import "context"

// Validator checks value and returns the first violated rule. When fields
// are given only those fields are checked; an unknown field name yields
// [ErrUnknownField] and an unsupported value type [ErrUnsupportedType].
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
