// Package repository declares the registries the catalog keeps its entities in.
package repository

import "errors"

// ErrAlreadyExists is returned when an entity with the same ID is already registered.
var ErrAlreadyExists = errors.New("already exists")
