// Package reorder implements the array-move law behind drag-and-drop
// reordering of fields and options. Drag adapters translate pointer events
// into ids; the functions here never see indices that predate the event.
package reorder

// Move returns a new slice in which the element at from has been removed and
// reinserted at to. Every other element keeps its relative order. Indices out
// of range yield an unchanged copy.
func Move[T any](list []T, from, to int) []T {
	out := make([]T, len(list))
	copy(out, list)
	if from < 0 || from >= len(list) || to < 0 || to >= len(list) || from == to {
		return out
	}

	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out
}

// MoveByID moves the element identified by activeID into the slot currently
// held by overID. Ids are resolved against list at call time; unknown ids
// yield an unchanged copy.
func MoveByID[T any](list []T, idOf func(T) string, activeID, overID string) []T {
	from := IndexOf(list, idOf, activeID)
	to := IndexOf(list, idOf, overID)
	if from < 0 || to < 0 {
		return Move(list, 0, 0)
	}
	return Move(list, from, to)
}

// IndexOf returns the index of the element whose id is id, or -1.
func IndexOf[T any](list []T, idOf func(T) string, id string) int {
	if id == "" {
		return -1
	}
	for i, item := range list {
		if idOf(item) == id {
			return i
		}
	}
	return -1
}
