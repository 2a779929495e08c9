//go:build blocklist_debug

package blocklist

// debugChecks makes unchecked accessors panic on out-of-range indexes.
const debugChecks = true
