// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request decoding errors. Both are answered with 400 Bad Request.
var (
	// ErrInvalidJSON is returned when a JSON request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidForm is returned when a plant form cannot be parsed, for
	// example because the upload exceeds the configured size limit.
	ErrInvalidForm = errors.New("invalid form was passed")
)
