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
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by errors returned
	// for an index outside the live elements.
	ErrOutOfRange = errors.New("index out of range")
	// ErrAllocation is matched by errors returned
	// when storage could not be obtained.
	ErrAllocation = errors.New("allocation failed")
)

// RangeError describes an invalid index
// passed to a checked operation.
type RangeError struct {
	Op    string
	Index Index
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("vector.%s: index %d out of range with length %d", e.Op, e.Index, e.Len)
}

// Is makes a *RangeError match ErrOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

func capacityError(n Index) error {
	return fmt.Errorf("vector: capacity %d overflows int: %w", n, ErrAllocation)
}
