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

package memops

import (
	"testing"
)

func BenchmarkZeroMemoryReference(b *testing.B) {
	buf := make([]uint64, 1024*1024)

	for n := 0; n < b.N; n++ {
		ZeroMemoryReference(buf)
	}
}

func BenchmarkZeroMemory(b *testing.B) {
	buf := make([]uint64, 1024*1024)

	for n := 0; n < b.N; n++ {
		ZeroMemory(buf)
	}
}

func ZeroMemoryReference(buf []uint64) {
	for i := range buf {
		buf[i] = 0
	}
}

func TestZeroMemory(t *testing.T) {
	{
		buf := []int32{1, 2, 3}
		ZeroMemory(buf)
		for i := range buf {
			if buf[i] != 0 {
				t.Fatalf("buf[%d] = %d", i, buf[i])
			}
		}
	}

	{
		s := "x"
		buf := []*string{&s, &s}
		ZeroMemory(buf)
		if buf[0] != nil || buf[1] != nil {
			t.Fatal("pointers not cleared")
		}
	}
}

func TestDestroy(t *testing.T) {
	buf := []string{"a", "b", "c"}
	var seen []string
	Destroy(buf[1:], func(p *string) {
		seen = append(seen, *p)
	})
	if len(seen) != 2 || seen[0] != "b" || seen[1] != "c" {
		t.Fatalf("destroy order: %v", seen)
	}
	if buf[0] != "a" || buf[1] != "" || buf[2] != "" {
		t.Fatalf("unexpected contents after Destroy: %q", buf)
	}

	Destroy(buf, nil)
	if buf[0] != "" {
		t.Fatalf("nil fn should still zero: %q", buf)
	}

	x := 7
	calls := 0
	DestroyOne(&x, func(p *int) {
		calls++
		if *p != 7 {
			t.Fatalf("destroy saw %d", *p)
		}
	})
	if calls != 1 || x != 0 {
		t.Fatalf("DestroyOne: calls=%d x=%d", calls, x)
	}
}
