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

// Command mvector exercises a vector of strings:
// it pushes two elements, erases the last one and
// inserts another at the end, printing the vector
// after each step.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/SnellerInc/mvector/ints"
	"github.com/SnellerInc/mvector/vector"
)

var (
	dashcap    int
	dashv      bool
	dashdigest bool
)

func init() {
	flag.IntVar(&dashcap, "cap", 5, "initial capacity (clamped to [0, 1<<20])")
	flag.BoolVar(&dashv, "v", false, "log vector diagnostics")
	flag.BoolVar(&dashdigest, "digest", false, "print the digest of the final vector")
}

func exitf(f string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, f, args...)
	os.Exit(1)
}

// digest keys; the digest only needs to be
// stable between runs, not secret
const (
	k0 = 0x736f6d6570736575
	k1 = 0x646f72616e646f6d
)

// maxCapacity bounds the -cap flag
const maxCapacity = 1 << 20

func run(w io.Writer, capacity int, digest bool, logf func(string, ...interface{})) error {
	capacity = ints.Clamp(capacity, 0, maxCapacity)
	v, err := vector.WithCapacity(vector.Index(capacity), &vector.Config[string]{Logf: logf})
	if err != nil {
		return err
	}
	defer v.Release()

	show := func() error {
		_, err := fmt.Fprintln(w, v)
		return err
	}
	for _, s := range []string{"b", "d"} {
		if err := v.PushBack(s); err != nil {
			return err
		}
	}
	if err := show(); err != nil {
		return err
	}
	if err := v.Erase(v.End().Prev().Index()); err != nil {
		return err
	}
	if err := show(); err != nil {
		return err
	}
	if err := v.Insert("c", v.End().Index()); err != nil {
		return err
	}
	if err := show(); err != nil {
		return err
	}
	// a request below the current capacity is
	// only reported, never an error
	if err := v.Reserve(vector.Index(v.Len())); err != nil {
		return err
	}
	if digest {
		_, err := fmt.Fprintf(w, "digest %016x\n", vector.Digest(v, k0, k1))
		return err
	}
	return nil
}

func main() {
	flag.Parse()
	var logf func(string, ...interface{})
	if dashv {
		logf = log.Printf
	}
	o := bufio.NewWriter(os.Stdout)
	if err := run(o, dashcap, dashdigest, logf); err != nil {
		exitf("mvector: %s\n", err)
	}
	if err := o.Flush(); err != nil {
		exitf("%s\n", err)
	}
}
