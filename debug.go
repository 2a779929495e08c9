//go:build !blocklist_debug

package blocklist

const debugChecks = false
