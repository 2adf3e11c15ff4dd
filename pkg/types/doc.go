// Package types defines the Event and Note entity types, their
// enumerations, the standard error kinds returned by the storage
// layer, and the pure normalization helpers applied on the write path.
package types
