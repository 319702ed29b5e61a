// Package records is the typed layer over host key-value storage.
//
// A Repository stores raw bytes under flat string keys. A Field describes one
// key: its default, how to encode a value and how to decode stored bytes.
// Reads through a Store are total: a missing key yields the default, and a
// value that fails to decode is logged and replaced by the default. Only
// failures of the storage itself are returned as errors.
//
// Each manager owns a fixed set of keys; ownership is by convention.
package records
