package singleton

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	xgxscope "github.com/xgx-io/xgx-scope"
)

// Codec converts values to and from an opaque byte stream. Codecs only
// materialize values; canonical substitution is Decode's job.
type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

var (
	// Gob encodes with encoding/gob.
	Gob Codec = gobCodec{}
	// JSON encodes with encoding/json.
	JSON Codec = jsonCodec{}
	// YAML encodes with gopkg.in/yaml.v3.
	YAML Codec = yamlCodec{}
)

var codecs = map[string]Codec{
	Gob.Name():  Gob,
	JSON.Name(): JSON,
	YAML.Name(): YAML,
}

// CodecByName returns the codec registered under name (case-insensitive).
func CodecByName(name string) (Codec, error) {
	if c, ok := codecs[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c, nil
	}
	return nil, xgxscope.Invalid("codec", "unknown codec").
		With("name", name).
		With("known", CodecNames())
}

// CodecNames lists the registered codec names in sorted order.
func CodecNames() []string {
	out := make([]string, 0, len(codecs))
	for n := range codecs {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

type gobCodec struct{}

func (gobCodec) Name() string { return "gob" }

func (gobCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (gobCodec) Unmarshal(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

type jsonCodec struct{}

func (jsonCodec) Name() string                       { return "json" }
func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

type yamlCodec struct{}

func (yamlCodec) Name() string                  { return "yaml" }
func (yamlCodec) Marshal(v any) ([]byte, error) { return yaml.Marshal(v) }

// Unmarshal rejects an empty document, which yaml.v3 would otherwise accept
// as a no-op and leave v untouched.
func (yamlCodec) Unmarshal(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return errEmptyStream
	}
	return yaml.Unmarshal(data, v)
}

var errEmptyStream = errors.New("empty stream")

// Encode serializes v with c.
func Encode(c Codec, v any) ([]byte, error) {
	data, err := c.Marshal(v)
	if err != nil {
		return nil, xgxscope.Wrap(err, "encode failed", "codec", c.Name())
	}
	return data, nil
}

// Decode materializes a T from data with c and then resolves it to its
// canonical instance (see Resolver). A malformed or empty stream fails with
// a CodeDecode failure that wraps the codec's error.
func Decode[T any](c Codec, data []byte) (T, error) {
	var v T
	if err := c.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, xgxscope.Decode(c.Name(), err)
	}
	if isNil(v) {
		var zero T
		return zero, xgxscope.Decode(c.Name(), errEmptyStream)
	}
	return Resolve(v)
}

// RoundTrip encodes v and decodes the result as a new T.
func RoundTrip[T any](c Codec, v T) (T, error) {
	data, err := Encode(c, v)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](c, data)
}
