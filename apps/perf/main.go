//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Command perf measures SHA-256 hashing throughput over a range of
// message sizes and renders the results as a table.

package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/markkurossi/sha256"
	"github.com/markkurossi/tabulate"
)

func main() {
	minSize := flag.Int("min", 64, "minimum message size in bytes")
	maxSize := flag.Int("max", 16*1024*1024, "maximum message size in bytes")
	minTime := flag.Duration("t", 250*time.Millisecond,
		"minimum measurement time per size")
	seed := flag.Int64("seed", 42, "message generator seed")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to `file`")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("perf: ")

	if len(*cpuprofile) > 0 {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}
	if *minSize < 1 || *maxSize < *minSize {
		log.Fatalf("invalid size range %d...%d", *minSize, *maxSize)
	}

	rng := rand.New(rand.NewSource(*seed))
	data := make([]byte, *maxSize)
	rng.Read(data)

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Size").SetAlign(tabulate.MR)
	tab.Header("Iters").SetAlign(tabulate.MR)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("Throughput").SetAlign(tabulate.MR)

	for size := *minSize; size <= *maxSize; size *= 2 {
		iters, elapsed := measure(data[:size], *minTime)

		rate := float64(iters) * float64(size) / elapsed.Seconds()

		row := tab.Row()
		row.Column(sha256.FileSize(size).String())
		row.Column(strconv.Itoa(iters))
		row.Column(elapsed.Round(time.Millisecond).String())
		row.Column(sha256.FileSize(rate).String() + "/s")
	}

	tab.Print(os.Stdout)
}

// measure hashes msg repeatedly until at least minTime has elapsed
// and returns the iteration count and the elapsed time.
func measure(msg []byte, minTime time.Duration) (int, time.Duration) {
	var iters int

	start := time.Now()
	for time.Since(start) < minTime {
		sha256.Sum(msg)
		iters++
	}

	return iters, time.Since(start)
}
