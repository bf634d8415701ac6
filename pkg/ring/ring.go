// Package ring provides an ordered collection with a focused element.
//
// A Ring tracks both the order of its elements and which one currently has
// focus, and can permute the two independently: Rotate moves the elements
// under a fixed focus position, CycleFocus moves the focus over fixed
// elements, and DragFocused moves the focused element itself with the
// focus following it.
//
// Operations follow a soft-failure convention: queries on an empty ring or
// with a selector that matches nothing return the zero value and false,
// and mutations become no-ops. Only At and Insert panic, on out-of-range
// positions, matching slice indexing.
//
// A Ring is not safe for concurrent use. Callers that share one across
// goroutines must provide their own synchronization.
package ring

// Ring is an ordered collection of elements with one focused position.
// Construct with New; the zero value is an empty usable ring.
type Ring[T any] struct {
	elements []T
	focused  int
}

// New creates a Ring holding the given elements, focused on the first.
func New[T any](elements ...T) *Ring[T] {
	return &Ring[T]{elements: append([]T(nil), elements...)}
}

// Len returns the number of elements.
func (r *Ring[T]) Len() int {
	return len(r.elements)
}

// WouldWrap reports whether moving the focus one step in dir would wrap
// around the end of the ring. An empty ring never wraps.
func (r *Ring[T]) WouldWrap(dir Direction) bool {
	if len(r.elements) == 0 {
		return false
	}
	wrapBack := r.focused == 0 && dir == Backward
	wrapForward := r.focused == len(r.elements)-1 && dir == Forward
	return wrapBack || wrapForward
}

// FocusedIndex returns the current focus position.
func (r *Ring[T]) FocusedIndex() int {
	return r.focused
}

// Focused returns the focused element.
func (r *Ring[T]) Focused() (T, bool) {
	if r.focused >= len(r.elements) {
		var zero T
		return zero, false
	}
	return r.elements[r.focused], true
}

// FocusedPtr returns a pointer to the focused element for in-place
// mutation, or nil if the ring is empty. The pointer is only valid until
// the next structural change to the ring.
func (r *Ring[T]) FocusedPtr() *T {
	if r.focused >= len(r.elements) {
		return nil
	}
	return &r.elements[r.focused]
}

// Rotate permutes the elements one step while the focus position stays
// put, so the focused element changes but its slot does not. Forward moves
// every element one position toward the back with the last element coming
// around to the front; Backward is the inverse.
func (r *Ring[T]) Rotate(dir Direction) {
	n := len(r.elements)
	if n == 0 {
		return
	}
	switch dir {
	case Forward:
		last := r.elements[n-1]
		copy(r.elements[1:], r.elements[:n-1])
		r.elements[0] = last
	case Backward:
		first := r.elements[0]
		copy(r.elements, r.elements[1:])
		r.elements[n-1] = first
	}
}

// nextIndex returns the focus position one step in dir with wraparound.
// The ring must not be empty.
func (r *Ring[T]) nextIndex(dir Direction) int {
	max := len(r.elements) - 1
	if dir == Forward {
		if r.focused == max {
			return 0
		}
		return r.focused + 1
	}
	if r.focused == 0 {
		return max
	}
	return r.focused - 1
}

// CycleFocus moves the focus one step in dir, wrapping at either end, and
// returns the newly focused element. Element order is unchanged.
func (r *Ring[T]) CycleFocus(dir Direction) (T, bool) {
	if len(r.elements) == 0 {
		var zero T
		return zero, false
	}
	r.focused = r.nextIndex(dir)
	return r.elements[r.focused], true
}

// DragFocused moves the focused element one step in dir with the focus
// staying on it. Interior moves swap the element with its neighbor;
// crossing either end rotates the whole ring instead, so the relative
// order of the other elements is preserved. Returns the dragged element.
func (r *Ring[T]) DragFocused(dir Direction) (T, bool) {
	if len(r.elements) == 0 {
		var zero T
		return zero, false
	}
	next := r.nextIndex(dir)
	switch {
	case r.focused == 0 && dir == Backward:
		r.Rotate(dir)
	case next == 0 && dir == Forward:
		r.Rotate(dir)
	default:
		r.elements[r.focused], r.elements[next] = r.elements[next], r.elements[r.focused]
	}
	return r.CycleFocus(dir)
}

// Insert places element at index; index may equal Len to append. The
// focus position is not adjusted, so inserting at or before it changes
// which element has focus. Panics if index is out of range.
func (r *Ring[T]) Insert(index int, element T) {
	if index < 0 || index > len(r.elements) {
		panic("ring: Insert index out of range")
	}
	var zero T
	r.elements = append(r.elements, zero)
	copy(r.elements[index+1:], r.elements[index:])
	r.elements[index] = element
}

// At returns the element at position index. Panics if index is out of
// range; use Element with an index selector for checked access.
func (r *Ring[T]) At(index int) T {
	return r.elements[index]
}

// Elements returns a copy of the elements in ring order.
func (r *Ring[T]) Elements() []T {
	out := make([]T, len(r.elements))
	copy(out, r.elements)
	return out
}

// indexBy returns the position of the first element satisfying cond.
func (r *Ring[T]) indexBy(cond func(T) bool) (int, bool) {
	for i, e := range r.elements {
		if cond(e) {
			return i, true
		}
	}
	return -1, false
}

// Element returns the element matched by s. External-id selectors match
// nothing at this level; see Selector.Resolve.
func (r *Ring[T]) Element(s Selector[T]) (T, bool) {
	var zero T
	switch s.kind {
	case KindFocused:
		return r.Focused()
	case KindIndex:
		if s.index < 0 || s.index >= len(r.elements) {
			return zero, false
		}
		return r.elements[s.index], true
	case KindCondition:
		if i, ok := r.indexBy(s.cond); ok {
			return r.elements[i], true
		}
	}
	return zero, false
}

// ElementPtr is Element with mutable access. It returns nil when nothing
// matches; the pointer is only valid until the next structural change.
func (r *Ring[T]) ElementPtr(s Selector[T]) *T {
	switch s.kind {
	case KindFocused:
		return r.FocusedPtr()
	case KindIndex:
		if s.index < 0 || s.index >= len(r.elements) {
			return nil
		}
		return &r.elements[s.index]
	case KindCondition:
		if i, ok := r.indexBy(s.cond); ok {
			return &r.elements[i]
		}
	}
	return nil
}

// Focus moves the focus to the element matched by s and returns it. When
// nothing matches, including an out-of-range index, the focus stays where
// it was.
func (r *Ring[T]) Focus(s Selector[T]) (T, bool) {
	var zero T
	switch s.kind {
	case KindFocused:
		return r.Focused()
	case KindIndex:
		if s.index < 0 || s.index >= len(r.elements) {
			return zero, false
		}
		r.focused = s.index
		return r.elements[r.focused], true
	case KindCondition:
		if i, ok := r.indexBy(s.cond); ok {
			r.focused = i
			return r.elements[i], true
		}
	}
	return zero, false
}

// Remove deletes the element matched by s and returns it. The focus
// position is not compensated for removals before it; it is only clamped
// back inside the ring when the removal leaves it past the end.
func (r *Ring[T]) Remove(s Selector[T]) (T, bool) {
	var zero T
	index := -1
	switch s.kind {
	case KindFocused:
		if len(r.elements) == 0 {
			return zero, false
		}
		index = r.focused
	case KindIndex:
		if s.index < 0 || s.index >= len(r.elements) {
			return zero, false
		}
		index = s.index
	case KindCondition:
		i, ok := r.indexBy(s.cond)
		if !ok {
			return zero, false
		}
		index = i
	default:
		return zero, false
	}

	removed := r.elements[index]
	r.elements = append(r.elements[:index], r.elements[index+1:]...)
	r.clampFocus()
	return removed, true
}

// clampFocus pulls the focus back inside the ring after a removal.
func (r *Ring[T]) clampFocus() {
	if r.focused > 0 && r.focused >= len(r.elements) {
		r.focused = len(r.elements) - 1
	}
}
