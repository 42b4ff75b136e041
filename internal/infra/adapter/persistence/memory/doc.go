// Package memory implements the catalog registries in process memory.
//
// Registries are append-only until Reset and are safe for concurrent use.
package memory
