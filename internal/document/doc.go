// Package document assembles the connector fragments into the final
// document, encodes it deterministically, checks it against the embedded
// JSON schema and writes it to disk.
package document
