// Package polish contains the request orchestrator at the heart of the
// TypePolish client.
//
// The orchestrator owns the editor state (input, output, summary, mode, tone,
// style, realtime flag) and decides, for every user action, whether to issue
// a backend request, which operation to call, and whether a resolving result
// may still be applied.
//
// # Debouncing
//
// With realtime enabled, typing does not fire a request per keystroke. Each
// input change re-arms a single cancellable timer; only after the quiet
// period (600ms by default) does the stabilized text go out.
//
// # Stale-Result Suppression
//
// Every issued request carries a monotonically increasing tag. A completion
// is applied only when its tag equals the latest issued tag; superseded
// results are dropped on arrival. This gives last-write-wins by issuance
// order, not by arrival order, across all triggers (realtime, manual polish,
// AI rewrite, tone clicks). Clearing the input also bumps the tag, so a
// late result can never resurrect state the user already emptied.
//
// # Failure Handling
//
// Gateway failures never propagate to callers. A transient notice is raised
// via the OnNotice callback and prior output stays intact; only when no
// output was ever shown does the gateway's fallback (original text plus an
// explanatory summary) become the display.
//
// # Concurrency
//
// All public operations are safe for concurrent use. Debounce expiry and
// request completions arrive on their own goroutines; a single mutex guards
// the state, and callbacks are invoked outside the lock with state copies.
package polish
