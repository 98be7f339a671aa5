// Package demo runs the observations printed by xgx-demo: singleton identity
// across round trips, and which failure survives a failing release step.
package demo

import (
	"fmt"
	"os"
	"path/filepath"

	xgxscope "github.com/xgx-io/xgx-scope"
	"github.com/xgx-io/xgx-scope/singleton"
)

// IdentityObservation records one round trip of one marker type.
type IdentityObservation struct {
	Type      string
	Round     int
	Codec     string
	Identical bool
	Original  string
	Decoded   string
}

// Identity round-trips both marker types rounds times with codec. When dir is
// non-empty every round goes through a file in dir, otherwise through memory.
func Identity(codec singleton.Codec, rounds int, dir string) ([]IdentityObservation, error) {
	if rounds < 1 {
		return nil, xgxscope.Invalid("rounds", "must be at least 1").With("rounds", rounds)
	}
	out := make([]IdentityObservation, 0, 2*rounds)
	for round := 1; round <= rounds; round++ {
		canonical := singleton.Instance()
		got, err := roundTrip(codec, canonical, dir, "marker", round)
		if err != nil {
			return nil, err
		}
		out = append(out, IdentityObservation{
			Type:      "Marker",
			Round:     round,
			Codec:     codec.Name(),
			Identical: got == canonical,
			Original:  canonical.String(),
			Decoded:   got.String(),
		})

		naive := singleton.NaiveInstance()
		gotNaive, err := roundTrip(codec, naive, dir, "naive", round)
		if err != nil {
			return nil, err
		}
		out = append(out, IdentityObservation{
			Type:      "NaiveMarker",
			Round:     round,
			Codec:     codec.Name(),
			Identical: gotNaive == naive,
			Original:  naive.String(),
			Decoded:   gotNaive.String(),
		})
	}
	return out, nil
}

func roundTrip[T any](c singleton.Codec, v T, dir, name string, round int) (T, error) {
	if dir == "" {
		return singleton.RoundTrip(c, v)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-%d.%s", name, round, c.Name()))
	if err := singleton.WriteFile(path, c, v); err != nil {
		var zero T
		return zero, err
	}
	defer os.Remove(path)
	return singleton.ReadFile[T](path, c)
}
