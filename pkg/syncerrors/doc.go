// Package syncerrors provides error definitions for versionsync operations.
//
// Errors are wrapped with the offending path or value, so callers should
// match them with [errors.Is].
package syncerrors
