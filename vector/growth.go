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

import (
	"fmt"

	"github.com/SnellerInc/mvector/internal/memops"
	"github.com/SnellerInc/mvector/ints"
)

// build returns a new block of c slots whose first
// len(src) slots are copies of src. On failure every
// element already copied is destroyed and the block is
// freed, so the caller observes no effect.
func (v *Vector[T]) build(c int, src []T) ([]T, error) {
	if c == 0 {
		return nil, nil
	}
	buf, err := v.allocate(c)
	if err != nil {
		return nil, err
	}
	for i := range src {
		if err := v.copyElem(&buf[i], &src[i]); err != nil {
			memops.Destroy(buf[:i], v.cfg.Destroy)
			memops.ZeroMemory(buf[i : i+1])
			v.allocator().Free(buf)
			return nil, fmt.Errorf("vector: copying element %d: %w", i, err)
		}
	}
	return buf, nil
}

// retire tears down the first n elements of buf and
// frees it. When owned is false the elements have been
// moved elsewhere and are only cleared.
func (v *Vector[T]) retire(buf []T, n int, owned bool) {
	if owned {
		memops.Destroy(buf[:n], v.cfg.Destroy)
	} else {
		memops.ZeroMemory(buf[:n])
	}
	if buf != nil {
		v.allocator().Free(buf)
	}
}

// relocate moves the live elements into a new block
// of exactly c slots. c must be at least v.n.
func (v *Vector[T]) relocate(c int) error {
	buf, err := v.build(c, v.buf[:v.n])
	if err != nil {
		return err
	}
	// with a Copy hook the old elements are distinct
	// copies and need their own teardown
	v.retire(v.buf, v.n, v.cfg.Copy != nil)
	v.buf = buf
	return nil
}

// grow applies the growth policy: the first block
// holds firstCapacity elements, and every later
// block doubles the capacity.
func (v *Vector[T]) grow() error {
	c, ok := ints.Grow(len(v.buf), firstCapacity)
	if !ok {
		return fmt.Errorf("vector: cannot grow past capacity %d: %w", len(v.buf), ErrAllocation)
	}
	return v.relocate(c)
}

// Reserve grows the storage of v to exactly c slots.
// If c does not exceed the current capacity, Reserve
// reports the fact through Config.Logf and leaves v
// unchanged. If the allocation or an element copy
// fails, v is left exactly as it was and the error
// is returned.
func (v *Vector[T]) Reserve(c Index) error {
	if uint64(c) <= uint64(len(v.buf)) {
		v.logf("vector: reserve %d <= capacity %d: size not changed", c, len(v.buf))
		return nil
	}
	n, ok := c.toInt()
	if !ok {
		return capacityError(c)
	}
	return v.relocate(n)
}

// Resize grows v to hold n elements, filling the new
// positions with the zero value of T. Resize never
// shrinks: if n does not exceed the current capacity
// it is a no-op reported through Config.Logf, even
// when n is smaller than Len.
func (v *Vector[T]) Resize(n Index) error {
	if uint64(n) <= uint64(len(v.buf)) {
		v.logf("vector: resize %d <= capacity %d: size not changed", n, len(v.buf))
		return nil
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	memops.ZeroMemory(v.buf[v.n:])
	v.n = len(v.buf)
	return nil
}

// ShrinkToFit reduces the capacity of v to Len.
// An empty vector releases its storage entirely.
func (v *Vector[T]) ShrinkToFit() error {
	if v.n == len(v.buf) {
		return nil
	}
	if v.n == 0 {
		v.retire(v.buf, 0, true)
		v.buf = nil
		return nil
	}
	return v.relocate(v.n)
}
