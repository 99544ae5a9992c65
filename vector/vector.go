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

// Package vector implements a growable contiguous array
// with explicit control over capacity and element lifetime.
//
// A Vector owns exactly one block of storage. The block
// is sized to the vector's capacity; the first Len() slots
// hold live elements and the remaining slots hold the
// zero value of the element type.
//
// Growth is transactional: the replacement block is built
// completely before the old one is released, so a failed
// allocation or element copy leaves the vector unchanged.
//
// Pointers returned by Ref/GetRef, cursors and the slice
// returned by Slice are invalidated by any operation that
// reallocates or shifts the storage. A Vector is not safe
// for concurrent use.
package vector

import (
	"github.com/SnellerInc/mvector/internal/memops"
)

// firstCapacity is the capacity of the first block
// allocated for a vector that has none.
const firstCapacity = 8

// Index is a position within a Vector.
type Index uint

func (i Index) toInt() (int, bool) {
	if uint64(i) > uint64(maxInt) {
		return 0, false
	}
	return int(i), true
}

const maxInt = int(^uint(0) >> 1)

// Config holds the element lifecycle hooks and the
// allocator used by a Vector. The zero Config is valid.
//
// Copy and Destroy should be configured together:
// without a Copy hook, copies are plain assignments and
// share whatever the element refers to, so a Destroy hook
// would run once per copy of the same resource.
type Config[T any] struct {
	// Allocator, if non-nil, supplies storage blocks.
	// The default is GoAllocator[T]{}.
	Allocator Allocator[T]
	// Copy, if non-nil, constructs *dst as a copy of *src.
	// It is used whenever an element enters the vector
	// and whenever elements are migrated to a new block.
	// An error aborts the operation, which is rolled back.
	Copy func(dst, src *T) error
	// Destroy, if non-nil, ends the lifetime of an element
	// held by the vector. The slot is zeroed afterwards
	// regardless of whether Destroy is set.
	Destroy func(x *T)
	// Logf, if non-nil, receives diagnostics about
	// requests that did not change the vector.
	Logf func(f string, args ...interface{})
}

// Vector is a growable contiguous array of T.
// The zero value is an empty vector with default Config.
type Vector[T any] struct {
	buf []T // len(buf) is the capacity
	n   int
	cfg Config[T]
}

// New returns an empty vector with capacity zero.
// A nil cfg selects the defaults.
func New[T any](cfg *Config[T]) *Vector[T] {
	v := &Vector[T]{}
	if cfg != nil {
		v.cfg = *cfg
	}
	return v
}

// WithCapacity returns an empty vector with
// storage allocated for exactly n elements.
func WithCapacity[T any](n Index, cfg *Config[T]) (*Vector[T], error) {
	v := New(cfg)
	if n == 0 {
		return v, nil
	}
	c, ok := n.toInt()
	if !ok {
		return nil, capacityError(n)
	}
	buf, err := v.allocate(c)
	if err != nil {
		return nil, err
	}
	v.buf = buf
	return v, nil
}

// CopyOf returns an independent copy of src with the
// same length, capacity, contents and Config.
// A nil src yields an empty vector.
func CopyOf[T any](src *Vector[T]) (*Vector[T], error) {
	if src == nil {
		return New[T](nil), nil
	}
	v := &Vector[T]{cfg: src.cfg}
	buf, err := v.build(len(src.buf), src.buf[:src.n])
	if err != nil {
		return nil, err
	}
	v.buf = buf
	v.n = src.n
	return v, nil
}

// Clone is equivalent to CopyOf(v).
func (v *Vector[T]) Clone() (*Vector[T], error) {
	return CopyOf(v)
}

// Len returns the number of elements in v.
func (v *Vector[T]) Len() int { return v.n }

// Cap returns the number of elements v can hold
// without reallocating.
func (v *Vector[T]) Cap() int { return len(v.buf) }

// Empty returns whether v holds no elements.
func (v *Vector[T]) Empty() bool { return v.n == 0 }

// Release ends the lifetime of every element in v
// and frees its storage. Afterwards v is empty
// with capacity zero and may be reused.
func (v *Vector[T]) Release() {
	v.retire(v.buf, v.n, true)
	v.buf = nil
	v.n = 0
}

func (v *Vector[T]) logf(f string, args ...interface{}) {
	if v.cfg.Logf != nil {
		v.cfg.Logf(f, args...)
	}
}

func (v *Vector[T]) allocator() Allocator[T] {
	if v.cfg.Allocator != nil {
		return v.cfg.Allocator
	}
	return GoAllocator[T]{}
}

// copyElem constructs *dst from *src.
func (v *Vector[T]) copyElem(dst, src *T) error {
	if v.cfg.Copy == nil {
		*dst = *src
		return nil
	}
	return v.cfg.Copy(dst, src)
}

// discard drops an element that was copied in
// but never became part of the vector.
func (v *Vector[T]) discard(x *T) {
	if v.cfg.Copy != nil {
		memops.DestroyOne(x, v.cfg.Destroy)
		return
	}
	var zero T
	*x = zero
}
