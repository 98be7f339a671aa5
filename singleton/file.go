package singleton

import (
	"io"
	"os"

	xgxscope "github.com/xgx-io/xgx-scope"
)

// Save encodes v with c, writes it to w, and closes w. A close failure after
// a failed encode or write is suppressed under that failure.
func Save(w io.WriteCloser, c Codec, v any) error {
	data, err := Encode(c, v)
	if err != nil {
		return xgxscope.Suppress(err, w.Close())
	}
	return writeAll(w, c, data)
}

func writeAll(w io.WriteCloser, c Codec, data []byte) error {
	return xgxscope.Use(w, func(w io.WriteCloser) error {
		if _, err := w.Write(data); err != nil {
			return xgxscope.Wrap(err, "write failed", "codec", c.Name(), "bytes", len(data))
		}
		return nil
	})
}

// Load reads everything from r, closes r, and decodes a canonical T.
func Load[T any](r io.ReadCloser, c Codec) (T, error) {
	var out T
	err := xgxscope.Use(r, func(r io.ReadCloser) error {
		data, err := io.ReadAll(r)
		if err != nil {
			return xgxscope.Wrap(err, "read failed", "codec", c.Name())
		}
		out, err = Decode[T](c, data)
		return err
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// WriteFile persists v at path with c, replacing any existing file. v is
// encoded before path is touched, so an encode failure leaves the file as it
// was.
func WriteFile(path string, c Codec, v any) error {
	data, err := Encode(c, v)
	if err != nil {
		return xgxscope.With(err, "path", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return xgxscope.Wrap(err, "create failed", "path", path)
	}
	return writeAll(f, c, data)
}

// ReadFile decodes a canonical T from the file at path.
func ReadFile[T any](path string, c Codec) (T, error) {
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, xgxscope.Wrap(err, "open failed", "path", path)
	}
	return Load[T](f, c)
}
