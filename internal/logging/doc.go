// Package logging provides concrete implementations of the gnafload.Logger interface.
package logging
