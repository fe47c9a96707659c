// Package privacy implements the redaction policy engine: the component
// that decides, for every outbound read, exactly which fields of which
// entries a given requester is allowed to see.
//
// The engine composes four stages into one pure function
// ([Engine.FilterEntries]): the visibility gate, field redaction against the
// merged global/per-owner rule set, and — on AI-safe reads — a sensitive
// pattern sanitizer over the remaining free text. Every stage degrades
// ambiguous input to the most restrictive safe behavior instead of raising;
// the engine has no error paths by design.
//
// The engine holds no mutable state: settings and rules are passed in as
// immutable per-request snapshots, results are never cached, and stored
// entries are never mutated — only copies in transit are transformed.
package privacy
