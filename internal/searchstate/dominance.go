package searchstate

import "github.com/passbi/streetrouter/internal/geo"

// Dominates reports whether a dominates b under the active dominance
// variable, per spec.md §4.3. Both states must sit on the same edge for this
// comparison to be meaningful; callers are responsible for that invariant.
//
//   - Neither carries restriction progress: a dominates b iff a's routing
//     variable is <= b's. Equality favors the existing state, so ties are
//     resolved by the caller passing the existing state as a and the
//     candidate as b.
//   - Exactly one carries progress: incomparable.
//   - Both carry identical progress (same keys and counts): a dominates b,
//     the narrow exception that prevents infinite loops around adjacent
//     restrictions.
//   - Otherwise: incomparable.
func Dominates(a, b *State, variable geo.Variable) bool {
	aHasProgress := len(a.TurnRestrictions) > 0
	bHasProgress := len(b.TurnRestrictions) > 0

	switch {
	case !aHasProgress && !bHasProgress:
		return a.RoutingVariable(variable) <= b.RoutingVariable(variable)
	case aHasProgress && bHasProgress:
		return a.TurnRestrictions.Equal(b.TurnRestrictions)
	default:
		return false
	}
}
