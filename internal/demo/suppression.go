package demo

import (
	"errors"

	xgxscope "github.com/xgx-io/xgx-scope"
)

// Resource is a scripted resource whose work and release steps fail on
// demand. It counts how often Close ran.
type Resource struct {
	WorkErr  error
	CloseErr error
	Closes   int
}

// Work performs the primary operation.
func (r *Resource) Work() error { return r.WorkErr }

// Close performs the release step.
func (r *Resource) Close() error {
	r.Closes++
	return r.CloseErr
}

// SuppressionOutcome is what a caller observes for one body/release pairing.
type SuppressionOutcome struct {
	Case       string
	Failed     bool
	Message    string
	Suppressed []string
	Closes     int
}

// Scenario pairs a body result with a release result.
type Scenario struct {
	Name     string
	WorkErr  error
	CloseErr error
}

// Scenarios are the four pairings of a failing/succeeding body with a
// failing/succeeding release step.
func Scenarios() []Scenario {
	return []Scenario{
		{Name: "body fails, release fails", WorkErr: errors.New("A"), CloseErr: errors.New("B")},
		{Name: "body ok, release fails", CloseErr: errors.New("B")},
		{Name: "body fails, release ok", WorkErr: errors.New("A")},
		{Name: "body ok, release ok"},
	}
}

// Suppression runs every scenario through xgxscope.Use, or through the
// overwriting defer when naive is set.
func Suppression(naive bool) []SuppressionOutcome {
	run := scoped
	if naive {
		run = Overwriting
	}
	scenarios := Scenarios()
	out := make([]SuppressionOutcome, 0, len(scenarios))
	for _, sc := range scenarios {
		res := &Resource{WorkErr: sc.WorkErr, CloseErr: sc.CloseErr}
		err := run(res)
		o := SuppressionOutcome{Case: sc.Name, Closes: res.Closes}
		if err != nil {
			o.Failed = true
			o.Message = err.Error()
			for _, s := range xgxscope.Suppressed(err) {
				o.Suppressed = append(o.Suppressed, s.Error())
			}
		}
		out = append(out, o)
	}
	return out
}

func scoped(res *Resource) error {
	return xgxscope.Use(res, (*Resource).Work)
}

// Overwriting is the cleanup construct that loses the body failure: the
// release failure is assigned over whatever was propagating.
func Overwriting(res *Resource) (err error) {
	defer func() {
		if cerr := res.Close(); cerr != nil {
			err = cerr
		}
	}()
	return res.Work()
}
