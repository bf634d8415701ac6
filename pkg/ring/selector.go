package ring

// Kind discriminates Selector variants.
type Kind uint8

const (
	// KindFocused selects the focused element of the target collection.
	KindFocused Kind = iota
	// KindIndex selects the element at a given position.
	KindIndex
	// KindExternalID carries an opaque external handle.
	KindExternalID
	// KindCondition selects the first element satisfying a predicate.
	KindCondition
)

// Selector identifies an element of a Ring without naming it directly.
//
// A Ring understands focused, index and condition selections natively.
// External-id selections are deliberately inert at this level: the Ring
// stores arbitrary element types and cannot know what an external handle
// means, so its operations treat KindExternalID as matching nothing.
// Collections that do know the handle semantics translate the selector
// with Resolve before passing it down.
type Selector[T any] struct {
	kind  Kind
	index int
	id    uint64
	cond  func(T) bool
}

// Focused selects the currently focused element.
func Focused[T any]() Selector[T] {
	return Selector[T]{kind: KindFocused}
}

// Index selects the element at position i.
func Index[T any](i int) Selector[T] {
	return Selector[T]{kind: KindIndex, index: i}
}

// ExternalID selects by an opaque external handle such as an X window id.
func ExternalID[T any](id uint64) Selector[T] {
	return Selector[T]{kind: KindExternalID, id: id}
}

// Condition selects the first element, scanning from position zero, for
// which cond returns true. The predicate must be free of side effects; it
// is called at most once per element per operation.
func Condition[T any](cond func(T) bool) Selector[T] {
	return Selector[T]{kind: KindCondition, cond: cond}
}

// Kind reports the selector variant.
func (s Selector[T]) Kind() Kind {
	return s.kind
}

// Index returns the position payload of an index selector.
func (s Selector[T]) Index() (int, bool) {
	if s.kind != KindIndex {
		return 0, false
	}
	return s.index, true
}

// ID returns the handle payload of an external-id selector.
func (s Selector[T]) ID() (uint64, bool) {
	if s.kind != KindExternalID {
		return 0, false
	}
	return s.id, true
}

// Resolve converts an external-id selector into a condition selector,
// using fn to build the predicate for the carried handle. Selectors of any
// other kind are returned unchanged. This is the hook that lets a wrapper
// give external handles meaning while the Ring itself stays ignorant of
// identifier semantics.
func (s Selector[T]) Resolve(fn func(id uint64) func(T) bool) Selector[T] {
	if s.kind != KindExternalID {
		return s
	}
	return Condition[T](fn(s.id))
}
