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

import "golang.org/x/exp/slices"

// Equal returns whether a and b hold the same
// elements in the same order. Capacity is ignored.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// IndexOf returns the index of the first element
// equal to x.
func IndexOf[T comparable](v *Vector[T], x T) (Index, bool) {
	i := slices.Index(v.Slice(), x)
	if i < 0 {
		return 0, false
	}
	return Index(i), true
}

// IndexFunc returns the index of the first element
// satisfying f.
func IndexFunc[T any](v *Vector[T], f func(T) bool) (Index, bool) {
	i := slices.IndexFunc(v.Slice(), f)
	if i < 0 {
		return 0, false
	}
	return Index(i), true
}

// Contains returns whether some element of v equals x.
func Contains[T comparable](v *Vector[T], x T) bool {
	return slices.Contains(v.Slice(), x)
}
