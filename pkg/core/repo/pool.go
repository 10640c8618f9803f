// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package repo specifies the expectations of the use cases layer from
// the database which is supposed to be provided by a database adapter.
// It models connection pools, connections, and transactions, in
// addition to the cars and prices repositories which expose the
// supported queries as Go methods.
package repo

import "context"

// ConnHandler is a handler which takes a context and an established
// connection. It is used by the Pool.Conn method, so it can run in
// a new connection (borrowed from the pool) and release it when the
// handler returns.
type ConnHandler func(context.Context, Conn) error

// Pool represents a database connection pool.
// It is safe to be used concurrently.
type Pool interface {
	// Conn acquires a database connection, passes it into the handler
	// function, and releases it after the handler returns.
	// Errors which are returned by the handler are returned by this
	// method after possible wrapping.
	Conn(ctx context.Context, handler ConnHandler) error

	// Close closes the pool and releases its connections.
	Close() error
}
