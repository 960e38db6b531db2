package front

// LoadState tracks where a view is in its fetch cycle.
type LoadState int

const (
	StateIdle LoadState = iota
	StateLoading
	StateReady
	StateFailed
)

// Collection is the view owned copy of one fetched entity list.
// Each list view holds its own Collection, nothing is shared across views,
// so two open views of the same entity can diverge until one refreshes.
// Mutations reconcile in place instead of re-fetching.
type Collection[T any] struct {
	items []T
	id    func(T) int64
	state LoadState
}

func NewCollection[T any](id func(T) int64) *Collection[T] {
	return &Collection[T]{id: id, state: StateIdle}
}

func (c *Collection[T]) State() LoadState { return c.state }

func (c *Collection[T]) Loading() { c.state = StateLoading }

func (c *Collection[T]) Fail() { c.state = StateFailed }

// Load replaces the whole collection with a server response, in server order.
func (c *Collection[T]) Load(items []T) {
	c.items = items
	c.state = StateReady
}

func (c *Collection[T]) Items() []T { return c.items }

func (c *Collection[T]) Len() int { return len(c.items) }

// Append reconciles a successful create.
func (c *Collection[T]) Append(item T) {
	c.items = append(c.items, item)
}

// ReplaceByID reconciles a successful update. Unknown ids are ignored rather
// than appended, a replace must never fabricate a row the server did not list.
func (c *Collection[T]) ReplaceByID(item T) bool {
	id := c.id(item)
	for idx := range c.items {
		if c.id(c.items[idx]) == id {
			c.items[idx] = item
			return true
		}
	}
	return false
}

// RemoveByID reconciles a successful delete. Only call it after the server
// acknowledged, a failed delete leaves the collection untouched.
func (c *Collection[T]) RemoveByID(id int64) bool {
	for idx := range c.items {
		if c.id(c.items[idx]) == id {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			return true
		}
	}
	return false
}

func athleteID(a Athlete) int64     { return a.AthleteID }
func injuryID(i Injury) int64       { return i.InjuryID }
func treatmentID(t Treatment) int64 { return t.TreatmentID }
