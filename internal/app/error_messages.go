// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-plant-keeper HTTP handlers.
//
// The Msg* constants are the client-facing texts written into error
// response bodies when the underlying error must not be echoed, e.g.
// because it carries storage driver details.
package app

const (
	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgStorageUnavailable is returned when the persistence gateway could
	// not be reached or a read needed for the response failed.
	MsgStorageUnavailable = "storage is temporarily unavailable"
)
