// Package store persists feature records and feature matrices as
// single msgpack blobs. The on-disk format is whatever msgpack emits
// for the stored value; there is no schema validation or versioning,
// and a writer/reader mismatch surfaces as a decode error.
package store
