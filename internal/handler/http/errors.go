// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velkin

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. They never reach the client: every one of
// them collapses into the same 401 "Access Denied" response, and the
// distinct reason is only visible in the logs.
var (
	// ErrEmptyAuthorizationHeader is returned when the incoming request
	// does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not a well-formed Basic credential
	// (wrong scheme, broken base64, or no colon separator).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)
