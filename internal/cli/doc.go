// Package cli provides the interactive aptidude command-line client.
//
// It drives a session.Facade from a read-eval-print loop: sign up or log in,
// record completed levels, inspect stats and change preferences. All state
// lives in the local database; nothing leaves the device.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends.
package cli
