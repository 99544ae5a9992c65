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
	"io"
)

// AppendTo appends the text form of v to dst: each
// element formatted with %v and followed by a space.
func (v *Vector[T]) AppendTo(dst []byte) []byte {
	for i := 0; i < v.n; i++ {
		dst = fmt.Appendf(dst, "%v ", v.buf[i])
	}
	return dst
}

func (v *Vector[T]) String() string {
	return string(v.AppendTo(nil))
}

// WriteTo implements io.WriterTo.
func (v *Vector[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(v.AppendTo(nil))
	return int64(n), err
}
