// Package logging wraps zerolog setup for cfgsplit: console output on stderr
// plus an append-only log file under the XDG state directory.
package logging
