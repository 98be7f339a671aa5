package singleton

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	xgxscope "github.com/xgx-io/xgx-scope"
)

const (
	markerKind = "xgx.singleton.marker"
	naiveKind  = "xgx.singleton.naive"
)

// Marker is the identity-preserving singleton. Exactly one *Marker exists in
// a process; Decode resolves every decoded copy back to it.
//
// The kind field keeps the type non-zero-sized: Go may hand out the same
// address for distinct zero-sized values, which would make pointer identity
// meaningless.
type Marker struct {
	kind string
}

// NaiveMarker encodes exactly like Marker but lacks the resolve hook, so
// every decode produces a new, distinct instance.
type NaiveMarker struct {
	kind string
}

// Package-level initialization runs once, before any goroutine can call the
// accessors, so no lazy locking is needed.
var (
	instance      = &Marker{kind: markerKind}
	naiveInstance = &NaiveMarker{kind: naiveKind}
)

// Instance returns the process-wide Marker.
func Instance() *Marker { return instance }

// NaiveInstance returns the process-wide NaiveMarker. Decoded copies are not
// resolved back to it.
func NaiveInstance() *NaiveMarker { return naiveInstance }

// Kind reports the wire kind of the marker.
func (m *Marker) Kind() string { return markerKind }

// ResolveCanonical discards the decoded receiver in favour of Instance().
func (m *Marker) ResolveCanonical() any { return instance }

func (m *Marker) String() string { return fmt.Sprintf("Marker@%p", m) }

func (m *Marker) MarshalBinary() ([]byte, error)      { return []byte(markerKind), nil }
func (m *Marker) UnmarshalBinary(data []byte) error   { return m.setKind(string(data)) }
func (m *Marker) MarshalJSON() ([]byte, error)        { return json.Marshal(wireRecord{Kind: markerKind}) }
func (m *Marker) MarshalYAML() (any, error)           { return wireRecord{Kind: markerKind}, nil }
func (m *Marker) UnmarshalJSON(data []byte) error     { return m.setKind(kindFromJSON(data)) }
func (m *Marker) UnmarshalYAML(node *yaml.Node) error { return m.setKind(kindFromYAML(node)) }

func (m *Marker) setKind(kind string) error {
	if err := checkKind(kind, markerKind); err != nil {
		return err
	}
	m.kind = kind
	return nil
}

// Kind reports the wire kind of the marker.
func (m *NaiveMarker) Kind() string { return naiveKind }

func (m *NaiveMarker) String() string { return fmt.Sprintf("NaiveMarker@%p", m) }

func (m *NaiveMarker) MarshalBinary() ([]byte, error)      { return []byte(naiveKind), nil }
func (m *NaiveMarker) UnmarshalBinary(data []byte) error   { return m.setKind(string(data)) }
func (m *NaiveMarker) MarshalJSON() ([]byte, error)        { return json.Marshal(wireRecord{Kind: naiveKind}) }
func (m *NaiveMarker) MarshalYAML() (any, error)           { return wireRecord{Kind: naiveKind}, nil }
func (m *NaiveMarker) UnmarshalJSON(data []byte) error     { return m.setKind(kindFromJSON(data)) }
func (m *NaiveMarker) UnmarshalYAML(node *yaml.Node) error { return m.setKind(kindFromYAML(node)) }

func (m *NaiveMarker) setKind(kind string) error {
	if err := checkKind(kind, naiveKind); err != nil {
		return err
	}
	m.kind = kind
	return nil
}

// wireRecord is the structured form shared by the JSON and YAML codecs.
type wireRecord struct {
	Kind string `json:"kind" yaml:"kind"`
}

func kindFromJSON(data []byte) string {
	var rec wireRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return ""
	}
	return rec.Kind
}

func kindFromYAML(node *yaml.Node) string {
	var rec wireRecord
	if err := node.Decode(&rec); err != nil {
		return ""
	}
	return rec.Kind
}

func checkKind(got, want string) error {
	if got != want {
		return xgxscope.Invalid("kind", "unexpected marker kind").
			With("got", got).
			With("want", want)
	}
	return nil
}

var (
	_ Resolver = (*Marker)(nil)
)
