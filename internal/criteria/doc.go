// Package criteria represents event filters as inspectable data.
//
// A Filter is an ordered list of steps. Each step pairs a Criterion with the
// Mode used to fold it into everything before it:
//
//	Filter{}.Or(Not{DateEquals{d}}).And(Not{DateBefore{b}})
//
// evaluates as
//
//	(date != d) AND (date >= b)
//
// Folding is strictly left to right and the first step stands alone
// whatever its mode, so mixing AND and OR steps is order dependent. The
// delete path relies on that; see engine.BuildRetentionFilter.
//
// SEALED INTERFACE:
//
// Criterion is sealed with a marker method. Only types in this package
// implement it, which keeps the switches in Match and String exhaustive:
//
//	switch c := crit.(type) {
//	case DateEquals:
//	case DateBefore:
//	case DateAfter:
//	case CategoryIn:
//	case NoCategory:
//	case DescriptionPrefix:
//	case Not:
//	}
//
// Filters compile to predicate.Predicate[event.Event] through Predicate, so
// the combinators in package predicate do the actual evaluation.
package criteria
