// Package platform provides cross-platform filesystem helpers for writing
// the generated document: directory creation and permission management
// on top of an afero filesystem.
package platform
