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

// PushBack appends a copy of x to v, growing the
// storage if v is full. On error v is unchanged.
func (v *Vector[T]) PushBack(x T) error {
	return v.insert("PushBack", v.n, &x)
}

// Insert inserts a copy of x before the element at pos,
// shifting the elements from pos onwards up by one.
// pos == Len appends. A pos beyond Len yields an error
// matching ErrOutOfRange. On error v is unchanged.
func (v *Vector[T]) Insert(x T, pos Index) error {
	if uint64(pos) > uint64(v.n) {
		return &RangeError{Op: "Insert", Index: pos, Len: v.n}
	}
	return v.insert("Insert", int(pos), &x)
}

func (v *Vector[T]) insert(op string, pos int, x *T) error {
	var tmp T
	if err := v.copyElem(&tmp, x); err != nil {
		return fmt.Errorf("vector.%s: copying element: %w", op, err)
	}
	if v.n == len(v.buf) {
		if err := v.grow(); err != nil {
			v.discard(&tmp)
			return err
		}
	}
	copy(v.buf[pos+1:v.n+1], v.buf[pos:v.n])
	v.buf[pos] = tmp
	v.n++
	return nil
}

// PopBack destroys the last element of v.
// It returns false if v was already empty.
func (v *Vector[T]) PopBack() bool {
	if v.n == 0 {
		return false
	}
	v.n--
	memops.DestroyOne(&v.buf[v.n], v.cfg.Destroy)
	return true
}

// Erase destroys the element at pos and shifts the
// following elements down by one. A pos not below Len
// yields an error matching ErrOutOfRange.
func (v *Vector[T]) Erase(pos Index) error {
	if err := v.check("Erase", pos); err != nil {
		return err
	}
	i := int(pos)
	memops.DestroyOne(&v.buf[i], v.cfg.Destroy)
	copy(v.buf[i:v.n-1], v.buf[i+1:v.n])
	v.n--
	memops.ZeroMemory(v.buf[v.n : v.n+1])
	return nil
}

// Clear destroys every element of v.
// The capacity is unchanged.
func (v *Vector[T]) Clear() {
	memops.Destroy(v.buf[:v.n], v.cfg.Destroy)
	v.n = 0
}

// Assign replaces the contents of v with copies of the
// elements of src; the capacity of v becomes that of src.
// The copies are made before the old contents are
// destroyed, so on error v is unchanged. v keeps its
// own Config.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if src == v {
		return nil
	}
	if src == nil {
		v.Release()
		return nil
	}
	buf, err := v.build(len(src.buf), src.buf[:src.n])
	if err != nil {
		return err
	}
	v.retire(v.buf, v.n, true)
	v.buf = buf
	v.n = src.n
	return nil
}
