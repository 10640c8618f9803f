package repo

import "context"

// TxHandler is a handler which takes a context and an open
// transaction. It is used by the Conn.Tx method, so it can run all
// of its statements in one transaction which commits when the handler
// returns nil and rolls back otherwise.
type TxHandler func(context.Context, Tx) error

// Conn represents a database connection.
// It is unsafe to be used concurrently.
type Conn interface {
	Queryer

	// Tx begins a new transaction on this connection, passes it into
	// the handler function, and commits or rolls it back based on the
	// handler returning nil or an error respectively.
	Tx(ctx context.Context, handler TxHandler) error

	// IsConn method prevents a non-Conn object (such as a Tx) to
	// mistakenly implement the Conn interface.
	IsConn()
}
