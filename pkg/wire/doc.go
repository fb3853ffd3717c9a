// Package wire defines the CBOR wire format for resource representations.
//
// A representation travels as a CBOR map with text keys:
//
//	{
//	  "href": "/ocf/audio/1",          // optional
//	  "rt":   ["oic.r.audio"],         // optional
//	  "if":   ["oic.if.a"],            // optional
//	  "rep":  {"mute": false, "volume": 20}
//	}
//
// Encoding is deterministic (canonical key order, definite lengths).
//
// # Lazy Decoding
//
// DecodePayload validates only the envelope. Attribute values stay as raw
// CBOR until they are read through Payload.Get, so a single malformed value
// does not prevent reading the others. A value that cannot be converted to
// a rep.Value surfaces as *rep.AccessError from Get.
//
// # Value Mapping
//
//	CBOR bool          -> rep.KindBool
//	CBOR int (64-bit)  -> rep.KindInt
//	CBOR float         -> rep.KindDouble
//	CBOR text          -> rep.KindString
//	CBOR bytes         -> rep.KindBytes
//	CBOR array         -> rep.KindArray
//	CBOR map (text)    -> rep.KindObject
//	CBOR null          -> rep.KindNull
//
// Integers outside the int64 range, tags and maps with non-text keys are
// malformed.
package wire
