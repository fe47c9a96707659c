package privacy

import "github.com/ileskov/personahub/models"

// Decision is the outcome of the visibility gate for a single entry.
type Decision int

const (
	// Excluded drops the entry from the result list entirely. Terminal:
	// no later stage can resurrect an excluded entry.
	Excluded Decision = iota

	// Included passes the entry on to field redaction.
	Included
)

// Gate is the entry-level accept/reject decision. It runs before field
// redaction and considers only the entry's visibility marker and the
// requester identity — never the requested level.
//
// Rules are evaluated in order, first match wins:
//  1. Requester is the owner, or an admin → Included. Admin bypass here is
//     visibility-only: admins see that other users' entries exist, but field
//     redaction still applies to them on public read paths.
//  2. private and requester is not the owner → Excluded.
//  3. unlisted and the requester is anonymous and the read came through a
//     listing (not a direct reference) → Excluded. Unlisted content is
//     reachable by direct addressing but never enumerated anonymously.
//  4. public → Included.
//
// A missing or unrecognized visibility marker is treated as private.
func Gate(entry models.DataEntry, ctx models.RequestContext) Decision {
	if !ctx.Anonymous() && (ctx.RequesterID == entry.OwnerID || ctx.IsAdmin) {
		return Included
	}

	switch models.ParseVisibility(string(entry.Visibility)) {
	case models.VisibilityPrivate:
		return Excluded
	case models.VisibilityUnlisted:
		if ctx.Anonymous() && !ctx.DirectReference {
			return Excluded
		}
		return Included
	case models.VisibilityPublic:
		return Included
	}

	return Excluded
}
