// Package pick implements a searchable-selection ("picker") controller:
// a candidate list filtered by a query, an explicit selection, and a
// two-state presentation toggle, all observable through synchronous
// listener callbacks. The package is rendering-agnostic; the ui package
// provides a Bubble Tea surface on top of it.
package pick

// Presentation reports whether the selection surface is shown.
type Presentation int

const (
	Closed Presentation = iota
	Open
)

// String returns the presentation name for log output.
func (p Presentation) String() string {
	if p == Open {
		return "open"
	}
	return "closed"
}

// Config holds controller construction options.
type Config struct {
	Title       string  // label for the trigger affordance
	Placeholder string  // hint text for the search input
	OnOpen      func()  // invoked once per Closed→Open transition
	Matcher     Matcher // filter predicate (default MatchSubstring)
}

// Controller owns one picker instance's state: the candidate set, the
// search query, the derived visible set, the selection, and the
// presentation toggle. All operations are synchronous and run on the one
// goroutine that delivers UI events; the controller does no locking and
// must not be shared across goroutines.
type Controller[T Option] struct {
	config       Config
	query        string
	candidates   []T
	visible      []T
	selection    T
	hasSelection bool
	presentation Presentation

	subs    []subscriber
	nextSub int
}

// New creates a controller with no candidates, an empty query, no
// selection, and a Closed surface.
func New[T Option](config Config) *Controller[T] {
	if config.Matcher == nil {
		config.Matcher = MatchSubstring
	}
	return &Controller[T]{config: config}
}

// SetQuery replaces the search query and synchronously recomputes the
// visible set. It always succeeds; an empty query makes the visible set
// the candidate set itself, in original order.
func (c *Controller[T]) SetQuery(text string) {
	c.query = text
	c.refilter()
	c.notify(QueryChanged, VisibleChanged)
}

// SetOptions replaces the candidate set wholesale. The visible set is
// recomputed against the current query immediately. The selection, if any,
// is untouched even when the selected option is no longer a candidate.
func (c *Controller[T]) SetOptions(options []T) {
	c.candidates = options
	c.refilter()
	c.notify(OptionsChanged, VisibleChanged)
}

// Select picks the i'th entry of the current visible set. Indexing into
// the visible set is the only selection entry point, so selecting an
// option that is not currently offered cannot be expressed. In range, it
// sets the selection, dismisses the surface if open, and returns the
// option. Out of range (including an empty visible set), it changes
// nothing and reports false.
func (c *Controller[T]) Select(i int) (T, bool) {
	if i < 0 || i >= len(c.visible) {
		var zero T
		return zero, false
	}
	opt := c.visible[i]
	c.selection = opt
	c.hasSelection = true
	if c.presentation == Open {
		c.presentation = Closed
		c.notify(SelectionChanged, PresentationChanged)
	} else {
		c.notify(SelectionChanged)
	}
	return opt, true
}

// ClearSelection removes the selection, if any.
func (c *Controller[T]) ClearSelection() {
	var zero T
	c.selection = zero
	c.hasSelection = false
	c.notify(SelectionChanged)
}

// Show transitions Closed→Open and invokes the configured OnOpen callback
// exactly once per transition. Showing an already-open controller does
// nothing.
func (c *Controller[T]) Show() {
	if c.presentation == Open {
		return
	}
	c.presentation = Open
	if c.config.OnOpen != nil {
		c.config.OnOpen()
	}
	c.notify(PresentationChanged)
}

// Dismiss transitions Open→Closed. Dismissing an already-closed controller
// does nothing.
func (c *Controller[T]) Dismiss() {
	if c.presentation == Closed {
		return
	}
	c.presentation = Closed
	c.notify(PresentationChanged)
}

// Query returns the current search query.
func (c *Controller[T]) Query() string {
	return c.query
}

// Options returns the candidate set. Callers must not mutate it.
func (c *Controller[T]) Options() []T {
	return c.candidates
}

// Visible returns the filtered subsequence of the candidate set matching
// the current query. Callers must not mutate it.
func (c *Controller[T]) Visible() []T {
	return c.visible
}

// Selection returns the selected option, or false if none is selected.
func (c *Controller[T]) Selection() (T, bool) {
	if !c.hasSelection {
		var zero T
		return zero, false
	}
	return c.selection, true
}

// Presentation returns the current surface state.
func (c *Controller[T]) Presentation() Presentation {
	return c.presentation
}

// Title returns the configured trigger label.
func (c *Controller[T]) Title() string {
	return c.config.Title
}

// Placeholder returns the configured search-input hint text.
func (c *Controller[T]) Placeholder() string {
	return c.config.Placeholder
}

func (c *Controller[T]) refilter() {
	if c.query == "" {
		c.visible = c.candidates
		return
	}
	visible := make([]T, 0, len(c.candidates))
	for _, opt := range c.candidates {
		if c.config.Matcher(opt.OptionDescription(), c.query) {
			visible = append(visible, opt)
		}
	}
	c.visible = visible
}
