// Package xgxscope provides scoped resource acquisition that never loses a
// failure, on top of a tiny, policy-free error core.
//
// # The problem
//
// The naive cleanup construct overwrites the failure that is already
// propagating:
//
//	func work(r *Resource) (err error) {
//		defer func() {
//			err = r.Close() // a Close failure replaces the body failure
//		}()
//		return r.Do()
//	}
//
// If Do fails with "A" and Close fails with "B", the caller only ever sees "B".
//
// # The contract
//
// Use (and Acquire, CloseInto, Group) run the release step exactly once on
// every exit path and combine failures with Suppress:
//
//	+--------+---------+---------------------------------------------+
//	| body   | release | propagated                                  |
//	+--------+---------+---------------------------------------------+
//	| ok     | ok      | nil                                         |
//	| ok     | B       | B, no suppressed                            |
//	| A      | ok      | A, no suppressed                            |
//	| A      | B       | A, Suppressed() == [B]                      |
//	+--------+---------+---------------------------------------------+
//
//	err := xgxscope.Use(res, func(r *Resource) error { return r.Do() })
//	fmt.Println(err)                                  // A
//	fmt.Println(xgxscope.Suppressed(err))             // [B]
//
// # Failure Records
//
// Every failure produced here implements Error: a message, an optional code,
// ordered context fields, an optional cause and stack, and an ordered list of
// suppressed failures. Fluent builders are copy-on-write, so a failure
// observed by a catching frame never changes. Foreign errors that become
// primaries are adopted without changing their message, and they still
// satisfy errors.Is against the original.
//
// # Formatting
//
//   - %v, %s → concise Error() of the primary only
//   - %+v    → code, msg, ctx, cause, every suppressed failure (recursively
//     with %+v), and the stack when one was captured
//   - %q     → quoted Error()
//
// # Traversal
//
// errors.Is/As follow causes only. Walk, Flatten, and Has additionally follow
// suppressed lists; Suppressed returns the list of the first Failure Record on
// the chain.
package xgxscope
