package pick

// Option is the capability contract for anything offered by a picker.
// Identity is what selection matching uses; the description is both the
// filter text and the detail text shown next to the trigger once selected.
// Two options may share description text but never identity. Options are
// treated as immutable once handed to a Controller.
//
// Duplicate identities within one candidate set are a caller error; the
// controller performs no validation and selection behavior under duplicates
// is unspecified.
type Option interface {
	OptionID() string
	OptionDescription() string
}

// Item is a ready-made Option for plain string data.
type Item struct {
	ID          string
	Description string
}

// OptionID returns the item's stable identity.
func (it Item) OptionID() string { return it.ID }

// OptionDescription returns the item's display and filter text.
func (it Item) OptionDescription() string { return it.Description }
