// Package picker implements the selection engine behind the fuzzy picker:
// filtering a fixed candidate set against a live query, a circular cursor over
// the resulting visible list, and committing or cancelling a selection.
//
// The package has no knowledge of terminals. A presentation layer implements
// Display and is wired to a Session with Bind; the Session reports how the
// pick ended as an Outcome instead of terminating the process.
package picker
