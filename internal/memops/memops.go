// Copyright (C) 2023 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package memops implements memory block manipulation primitives
// for element ranges owned by containers.
package memops

// ZeroMemory fills buf with the zero value of T so that
// the garbage collector no longer sees anything it referenced.
func ZeroMemory[T any](buf []T) {
	clear(buf)
}

// Destroy ends the lifetime of every element in buf:
// fn (if non-nil) is invoked on each element in index order,
// and then the element is overwritten with the zero value.
func Destroy[T any](buf []T, fn func(*T)) {
	if fn != nil {
		for i := range buf {
			fn(&buf[i])
		}
	}
	clear(buf)
}

// DestroyOne is Destroy for a single element.
func DestroyOne[T any](p *T, fn func(*T)) {
	if fn != nil {
		fn(p)
	}
	var zero T
	*p = zero
}
