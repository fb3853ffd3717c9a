// Package parcel implements the compact binary format used to pass resource
// models between local process components.
//
// A parcel is a flat, strictly sequential stream of fields with no tags and
// no framing. Readers must consume fields in exactly the order writers
// produced them; the order is the compatibility contract.
//
// # Encoding
//
//	int32   4 bytes, big-endian, two's complement
//	uint8   1 byte
//	bool    1 byte, written as 0 or 1; any nonzero byte reads as true
//	string  int32 byte length followed by UTF-8 bytes
//
// Strings are never null: the empty string is a zero length. A negative
// length is rejected.
//
// # Errors
//
// A read past the end of the stream fails with *TruncatedStreamError, which
// matches ErrTruncated with errors.Is.
package parcel
