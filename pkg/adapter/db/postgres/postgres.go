// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package postgres adapts a PostgreSQL DBMS server, which is accessed
// using the GORM framework, to the connection pool, connection, and
// transaction interfaces which are expected by the core repo package.
// The repository packages, namely carsrp and pricesrp, depend on this
// package in order to obtain a *gorm.DB instance out of a generic
// connection or transaction and run their queries with it.
package postgres
