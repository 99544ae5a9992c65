// Copyright 2023 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package vector

import "iter"

// Cursor is a position within a Vector, in the
// half-open range [Begin, End). A cursor is invalidated
// by any operation that reallocates or shifts v.
type Cursor[T any] struct {
	v   *Vector[T]
	pos Index
}

// Begin returns a cursor at the first element.
func (v *Vector[T]) Begin() Cursor[T] {
	return Cursor[T]{v: v}
}

// End returns a cursor one past the last element.
func (v *Vector[T]) End() Cursor[T] {
	return Cursor[T]{v: v, pos: Index(v.n)}
}

// Next returns the cursor one position after c.
func (c Cursor[T]) Next() Cursor[T] {
	c.pos++
	return c
}

// Prev returns the cursor one position before c.
// Prev of Begin is not Valid.
func (c Cursor[T]) Prev() Cursor[T] {
	c.pos--
	return c
}

// Index returns the position of c.
func (c Cursor[T]) Index() Index { return c.pos }

// Valid returns whether c refers to a live element.
func (c Cursor[T]) Valid() bool {
	return c.v != nil && uint64(c.pos) < uint64(c.v.n)
}

// Value returns the element at c.
// c must be Valid.
func (c Cursor[T]) Value() T { return c.v.At(c.pos) }

// Ref returns a pointer to the element at c.
// c must be Valid.
func (c Cursor[T]) Ref() *T { return c.v.Ref(c.pos) }

// Equal returns whether c and o are the same
// position in the same vector.
func (c Cursor[T]) Equal(o Cursor[T]) bool {
	return c.v == o.v && c.pos == o.pos
}

// All yields the index and value of every element
// in index order.
func (v *Vector[T]) All() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(Index(i), v.buf[i]) {
				return
			}
		}
	}
}

// Values yields every element in index order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// Backward yields every element from the last to the first.
func (v *Vector[T]) Backward() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		for i := v.n - 1; i >= 0; i-- {
			if !yield(Index(i), v.buf[i]) {
				return
			}
		}
	}
}

// Slice returns the live elements of v. The result
// aliases the storage of v; appending to it never
// writes into v.
func (v *Vector[T]) Slice() []T {
	return v.buf[:v.n:v.n]
}
