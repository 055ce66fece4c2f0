package pick

// Change identifies which controller facet mutated.
type Change int

const (
	QueryChanged Change = iota
	VisibleChanged
	OptionsChanged
	SelectionChanged
	PresentationChanged
)

// String returns the change name for log output.
func (c Change) String() string {
	switch c {
	case QueryChanged:
		return "query"
	case VisibleChanged:
		return "visible"
	case OptionsChanged:
		return "options"
	case SelectionChanged:
		return "selection"
	case PresentationChanged:
		return "presentation"
	default:
		return "unknown"
	}
}

type subscriber struct {
	id int
	fn func(Change)
}

// Subscribe registers a listener invoked synchronously, in registration
// order, before the mutating operation returns. The returned function
// cancels the registration. Listeners must not re-enter the controller's
// mutating operations.
func (c *Controller[T]) Subscribe(fn func(Change)) func() {
	id := c.nextSub
	c.nextSub++
	c.subs = append(c.subs, subscriber{id: id, fn: fn})

	return func() {
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

func (c *Controller[T]) notify(changes ...Change) {
	for _, change := range changes {
		for _, s := range c.subs {
			s.fn(change)
		}
	}
}
