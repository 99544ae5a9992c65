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

package ints

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	testcases := []struct {
		x, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 0, 0},
	}
	for i := range testcases {
		tc := &testcases[i]
		if got := Clamp(tc.x, tc.lo, tc.hi); got != tc.want {
			t.Fatalf("Clamp(%d, %d, %d) = %d, want %d", tc.x, tc.lo, tc.hi, got, tc.want)
		}
	}
	if Min(uint8(3), 7) != 3 || Max(uint8(3), 7) != 7 {
		t.Fatal("Min/Max mismatch")
	}
}

func TestGrow(t *testing.T) {
	testcases := []struct {
		c, first, want int
		ok             bool
	}{
		{0, 8, 8, true},
		{1, 8, 2, true},
		{5, 8, 10, true},
		{8, 8, 16, true},
		{math.MaxInt/2 + 1, 8, math.MaxInt/2 + 1, false},
	}
	for i := range testcases {
		tc := &testcases[i]
		got, ok := Grow(tc.c, tc.first)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("Grow(%d, %d) = (%d, %v), want (%d, %v)", tc.c, tc.first, got, ok, tc.want, tc.ok)
		}
	}
	if got, ok := Grow(uint8(200), 8); ok {
		t.Fatalf("Grow(uint8(200)) = %d, expected overflow", got)
	}
}
