// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
// incoming request does not include an "Authorization" header at all. It is
// never exposed to the caller: the middleware answers every rejection with
// the same body so that a missing token cannot be told apart from a bad one.
var ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
