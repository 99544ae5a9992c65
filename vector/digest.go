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

import "github.com/dchest/siphash"

// Digest returns the SipHash-2-4 of the text form of v
// (see AppendTo) under the key (k0, k1). Vectors whose
// elements render identically have equal digests.
func Digest[T any](v *Vector[T], k0, k1 uint64) uint64 {
	return siphash.Hash(k0, k1, v.AppendTo(nil))
}
