package repositories

import "errors"

// ErrNotFound marks a write aimed at a row that does not exist. Reads report
// absence as a nil result instead; only updates, deletes, and the inventory
// ledger wrap this sentinel.
var ErrNotFound = errors.New("record not found")
