package criteria

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/roach88/events/internal/event"
)

// Criterion is a single test over an event.
//
// This is a sealed interface - only types in this package implement it.
type Criterion interface {
	criterion() // Marker method - seals interface to this package
}

// DateEquals matches events on Date.
type DateEquals struct {
	Date event.Date
}

func (DateEquals) criterion() {}

// DateBefore matches events strictly before Date.
type DateBefore struct {
	Date event.Date
}

func (DateBefore) criterion() {}

// DateAfter matches events strictly after Date.
type DateAfter struct {
	Date event.Date
}

func (DateAfter) criterion() {}

// CategoryIn matches events whose category is one of Categories.
// The empty string matches uncategorized events.
type CategoryIn struct {
	Categories []string
}

func (CategoryIn) criterion() {}

// NoCategory matches uncategorized events.
type NoCategory struct{}

func (NoCategory) criterion() {}

// DescriptionPrefix matches events whose description starts with Prefix.
type DescriptionPrefix struct {
	Prefix string
}

func (DescriptionPrefix) criterion() {}

// Not inverts Criterion.
type Not struct {
	Criterion Criterion
}

func (Not) criterion() {}

// Match evaluates c against e. A nil or unknown criterion matches nothing.
func Match(c Criterion, e event.Event) bool {
	switch c := c.(type) {
	case DateEquals:
		return e.CompareToDate(c.Date) == 0
	case DateBefore:
		return e.CompareToDate(c.Date) < 0
	case DateAfter:
		return e.CompareToDate(c.Date) > 0
	case CategoryIn:
		return slices.Contains(c.Categories, e.Category)
	case NoCategory:
		return !e.HasCategory()
	case DescriptionPrefix:
		return strings.HasPrefix(e.Description, c.Prefix)
	case Not:
		if c.Criterion == nil {
			return false
		}
		return !Match(c.Criterion, e)
	default:
		return false
	}
}

// Describe renders c as a short expression, e.g. `date < 2024-06-15`.
func Describe(c Criterion) string {
	switch c := c.(type) {
	case DateEquals:
		return "date = " + c.Date.String()
	case DateBefore:
		return "date < " + c.Date.String()
	case DateAfter:
		return "date > " + c.Date.String()
	case CategoryIn:
		return "category in " + quoteList(c.Categories)
	case NoCategory:
		return "no category"
	case DescriptionPrefix:
		return "description starts with " + strconv.Quote(c.Prefix)
	case Not:
		return describeNot(c.Criterion)
	default:
		return fmt.Sprintf("unknown(%T)", c)
	}
}

// describeNot renders the common negations in their positive form.
func describeNot(c Criterion) string {
	switch c := c.(type) {
	case DateEquals:
		return "date != " + c.Date.String()
	case DateBefore:
		return "date >= " + c.Date.String()
	case DateAfter:
		return "date <= " + c.Date.String()
	case CategoryIn:
		if len(c.Categories) == 1 {
			return "category != " + strconv.Quote(c.Categories[0])
		}
		return "category not in " + quoteList(c.Categories)
	case NoCategory:
		return "has category"
	case DescriptionPrefix:
		return "description not starting with " + strconv.Quote(c.Prefix)
	default:
		return "NOT (" + Describe(c) + ")"
	}
}

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
