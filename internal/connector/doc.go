// Package connector defines the connector framework: the contract every
// externally launched tool server satisfies, the four built-in variants
// (filesystem, github, playwright, googledrive), the fixed registry that
// orders them, and the Manager that validates and generates them as a set.
//
// Connectors read only the environment snapshot they were built with and
// the filesystem collaborator supplied in Options. User input problems are
// reported through ValidationResult; Go errors are reserved for
// programming errors such as a variant missing one of its behaviours.
package connector
