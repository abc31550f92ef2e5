// Package retry provides transient-error classification and retry
// execution with exponential backoff for database connections.
package retry
