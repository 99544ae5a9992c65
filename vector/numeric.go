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

import "golang.org/x/exp/constraints"

// Number is the set of element types Sum accepts.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns the sum of the elements of v.
func Sum[T Number](v *Vector[T]) T {
	var s T
	for _, x := range v.Slice() {
		s += x
	}
	return s
}

// MinMax returns the smallest and largest elements
// of v. ok is false when v is empty.
func MinMax[T constraints.Ordered](v *Vector[T]) (lo, hi T, ok bool) {
	s := v.Slice()
	if len(s) == 0 {
		return lo, hi, false
	}
	lo, hi = s[0], s[0]
	for _, x := range s[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi, true
}
