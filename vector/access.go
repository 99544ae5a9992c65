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
)

// At returns the element at index i without checking
// i against Len. Callers must ensure i < Len.
func (v *Vector[T]) At(i Index) T {
	return v.buf[i]
}

// Ref returns a pointer to the element at index i
// without checking i against Len.
func (v *Vector[T]) Ref(i Index) *T {
	return &v.buf[i]
}

func (v *Vector[T]) check(op string, i Index) error {
	if uint64(i) >= uint64(v.n) {
		return &RangeError{Op: op, Index: i, Len: v.n}
	}
	return nil
}

// Get returns the element at index i, or an error
// matching ErrOutOfRange if i >= Len.
func (v *Vector[T]) Get(i Index) (T, error) {
	if err := v.check("Get", i); err != nil {
		var zero T
		return zero, err
	}
	return v.buf[i], nil
}

// GetRef is like Get but returns a pointer
// to the element.
func (v *Vector[T]) GetRef(i Index) (*T, error) {
	if err := v.check("GetRef", i); err != nil {
		return nil, err
	}
	return &v.buf[i], nil
}

// Set replaces the element at index i with a copy of x.
// The replaced element is destroyed.
func (v *Vector[T]) Set(i Index, x T) error {
	if err := v.check("Set", i); err != nil {
		return err
	}
	var tmp T
	if err := v.copyElem(&tmp, &x); err != nil {
		return fmt.Errorf("vector.Set: copying element: %w", err)
	}
	memops.DestroyOne(&v.buf[i], v.cfg.Destroy)
	v.buf[i] = tmp
	return nil
}

// Front returns the first element.
func (v *Vector[T]) Front() (T, error) {
	if v.n == 0 {
		var zero T
		return zero, &RangeError{Op: "Front", Index: 0, Len: 0}
	}
	return v.buf[0], nil
}

// Back returns the last element.
func (v *Vector[T]) Back() (T, error) {
	if v.n == 0 {
		var zero T
		return zero, &RangeError{Op: "Back", Index: 0, Len: 0}
	}
	return v.buf[v.n-1], nil
}
