// Package singleton keeps a process-wide value unique across serialization.
//
// Instance returns the one *Marker of the process. Serializing it and decoding
// the bytes back would normally materialize a second, distinct *Marker. Decode
// prevents that: after the codec has produced a fresh value, Decode calls the
// value's ResolveCanonical hook and returns what the hook returns instead.
//
//	data, _ := singleton.Encode(singleton.JSON, singleton.Instance())
//	m, _ := singleton.Decode[*singleton.Marker](singleton.JSON, data)
//	m == singleton.Instance() // true
//
// NaiveMarker has the same wire form but no hook, and every decode yields a
// new pointer:
//
//	n, _ := singleton.RoundTrip(singleton.JSON, singleton.NaiveInstance())
//	n == singleton.NaiveInstance() // false
//
// Any serialization adapter for these types must go through Decode (or
// Resolve) to keep the guarantee; calling a codec's Unmarshal directly skips
// the hook.
package singleton
