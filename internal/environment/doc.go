// Package environment builds the immutable environment snapshot that every
// connector reads. A snapshot is assembled once per run from the process
// environment plus optional .env overlays, and is never mutated afterwards.
// The package also redacts sensitive values for display.
package environment
