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
	"runtime"
	"unsafe"

	"github.com/SnellerInc/mvector/internal/memops"
)

// Allocator supplies storage blocks to a Vector.
//
// Alloc returns a block of exactly n zeroed slots or
// an error; the error should match ErrAllocation.
// Free is called once for every block that the vector
// stops using, after all of its elements have been
// destroyed.
type Allocator[T any] interface {
	Alloc(n int) ([]T, error)
	Free(buf []T)
}

// GoAllocator allocates blocks from the Go heap.
//
// The runtime treats exhausting memory as fatal, so
// Limit is the only way to make large requests fail
// gracefully. Requests that cannot be represented
// in the address space always fail.
type GoAllocator[T any] struct {
	// Limit, if positive, is the largest block
	// (in elements) that Alloc will hand out.
	Limit int
}

// maxAlloc is the largest block size in bytes
// that we attempt to allocate.
const maxAlloc = uintptr(1) << (31 + 17*(^uint(0)>>63))

func (a GoAllocator[T]) Alloc(n int) (buf []T, err error) {
	if n < 0 {
		return nil, fmt.Errorf("vector: negative block size %d: %w", n, ErrAllocation)
	}
	if a.Limit > 0 && n > a.Limit {
		return nil, fmt.Errorf("vector: block of %d exceeds limit %d: %w", n, a.Limit, ErrAllocation)
	}
	var zero T
	if size := unsafe.Sizeof(zero); size > 0 && uintptr(n) > maxAlloc/size {
		return nil, fmt.Errorf("vector: block of %d elements of %d bytes is too large: %w", n, size, ErrAllocation)
	}
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			buf, err = nil, fmt.Errorf("vector: allocating %d elements: %s: %w", n, re, ErrAllocation)
		}
	}()
	return make([]T, n), nil
}

// Free zeroes buf so that nothing it referenced
// is kept alive through a stray reference.
func (a GoAllocator[T]) Free(buf []T) {
	memops.ZeroMemory(buf)
}

// allocate obtains a block of exactly c slots.
func (v *Vector[T]) allocate(c int) ([]T, error) {
	a := v.allocator()
	buf, err := a.Alloc(c)
	if err != nil {
		return nil, err
	}
	if len(buf) != c {
		if buf != nil {
			a.Free(buf)
		}
		return nil, fmt.Errorf("vector: allocator returned %d slots, want %d: %w", len(buf), c, ErrAllocation)
	}
	return buf, nil
}
