//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Command sha256sum computes and checks SHA-256 digests with the
// from-scratch implementation. Output follows the coreutils format:
// digest, two spaces, file name.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/markkurossi/sha256"
)

func main() {
	check := flag.Bool("check", false, "read digest lists from the arguments and verify them")
	timing := flag.Bool("time", false, "print a timing report for each input")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("sha256sum: ")

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}

	if *check {
		var failed int
		for _, arg := range args {
			n, err := checkList(arg)
			if err != nil {
				log.Fatal(err)
			}
			failed += n
		}
		if failed > 0 {
			log.Printf("WARNING: %d computed checksum(s) did NOT match",
				failed)
			os.Exit(1)
		}
		return
	}

	for _, arg := range args {
		data, err := readInput(arg)
		if err != nil {
			log.Fatal(err)
		}
		if *timing {
			t := sha256.NewTiming()
			digest := sha256.TimedSum(data, t)
			fmt.Printf("%s  %s\n", digest, arg)
			t.Print(os.Stdout, sha256.FileSize(len(data)))
		} else {
			fmt.Printf("%s  %s\n", sha256.SumHex(data), arg)
		}
	}
}

// readInput reads the whole input: the named file, or the standard
// input for "-".
func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

// checkList verifies the digest list in the named file and returns
// the number of mismatched files. Each list line is a digest and a
// file name, separated by whitespace.
func checkList(name string) (int, error) {
	data, err := readInput(name)
	if err != nil {
		return 0, err
	}

	var failed int

	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return 0, fmt.Errorf("%s: malformed digest line: %q", name, line)
		}
		expected, file := strings.ToLower(fields[0]), fields[1]

		content, err := readInput(file)
		if err != nil {
			return 0, err
		}
		if sha256.SumHex(content) == expected {
			fmt.Printf("%s: OK\n", file)
		} else {
			fmt.Printf("%s: FAILED\n", file)
			failed++
		}
	}

	return failed, scanner.Err()
}
