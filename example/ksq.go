// ksq.go -- Build a staged membership set and query it
//
// (c) Sudhi Herle 2018
//
// License GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

// ksq.go is an example of using keyset: it reads keys (one per line)
// from one or more text files, builds the filter+store pipeline sized
// for the population, then looks up the keys named on the command
// line (or every line of stdin) and prints a per-key verdict followed
// by the pipeline counters, including the number of Bloom false
// positives the store caught.

package main

import (
	"bufio"
	"crypto"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/opencoff/go-keyset"

	flag "github.com/opencoff/pflag"
)

func main() {
	var fpRate float64
	var hasher string
	var quiet bool

	usage := fmt.Sprintf(
		`%s - build a membership set from text files and query it

Usage: %s [options] INPUT [INPUT ...] -- [QUERY ...]

Each INPUT is a text file with one key per line ('#' starts a
comment). Every QUERY after '--' is looked up; with no QUERY, keys
are read from STDIN one per line.

Options:
`, os.Args[0], os.Args[0])

	flag.Float64VarP(&fpRate, "false-positives", "p", 0.01, "Size the filter for false-positive rate `P`")
	flag.StringVarP(&hasher, "hash", "H", "murmur3", "Use hash `ALGO`: murmur3, siphash, fasthash, xxhash, md5, sha1, sha256")
	flag.BoolVarP(&quiet, "quiet", "q", false, "Only print the final counters")
	flag.Usage = func() {
		fmt.Printf("%s", usage)
		flag.PrintDefaults()
	}

	flag.Parse()
	args := flag.Args()

	if len(args) < 1 {
		die("No input file!\nUsage: %s [options] INPUT [INPUT ...] -- [QUERY ...]", os.Args[0])
	}

	var inputs, queries []string
	inputs = args
	if n := flag.CommandLine.ArgsLenAtDash(); n >= 0 {
		inputs = args[:n]
		queries = args[n:]
	}
	if len(inputs) == 0 {
		die("No input file before '--'")
	}

	keys, err := readKeys(inputs)
	if err != nil {
		die("%s", err)
	}
	if len(keys) == 0 {
		die("No keys in input")
	}

	h, err := pickHasher(hasher)
	if err != nil {
		die("%s", err)
	}

	m := keyset.FilterBits(uint64(len(keys)), fpRate)
	filt, err := keyset.NewFilter(m, h)
	if err != nil {
		die("can't build filter: %s", err)
	}

	st, err := keyset.NewKeyStore(len(keys))
	if err != nil {
		die("can't build store: %s", err)
	}

	pipe, err := keyset.NewPipeline(filt, st, 0)
	if err != nil {
		die("can't build pipeline: %s", err)
	}

	start := time.Now()
	for _, k := range keys {
		pipe.Add(keyset.NewKeyString(k))
	}
	pipe.Freeze()

	fmt.Printf("%d keys, %d filter bits (%.2f%% full), built in %s\n",
		len(keys), filt.Size(), 100.0*filt.FillRatio(), time.Since(start))

	if len(queries) > 0 {
		for _, q := range queries {
			query(pipe, q, quiet)
		}
	} else {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			q := strings.TrimSpace(sc.Text())
			if len(q) == 0 {
				continue
			}
			query(pipe, q, quiet)
		}
		if err := sc.Err(); err != nil {
			die("can't read STDIN: %s", err)
		}
	}

	s := pipe.Stats()
	fmt.Printf("%d lookups: %d hits (%d cached), %d filter rejects, %d false positives\n",
		s.Lookups, s.Hits, s.CacheHits, s.FilterRejects, s.FalsePositive)
}

func query(pipe *keyset.Pipeline, q string, quiet bool) {
	ok := pipe.Lookup(keyset.NewKeyString(q))
	if quiet {
		return
	}
	if ok {
		fmt.Printf("%s: present\n", q)
	} else {
		fmt.Printf("%s: absent\n", q)
	}
}

func pickHasher(name string) (keyset.Hasher, error) {
	switch strings.ToLower(name) {
	case "murmur3":
		return keyset.Murmur3{}, nil
	case "siphash":
		return keyset.SipHasher{}, nil
	case "fasthash":
		return keyset.FastHasher{}, nil
	case "xxhash":
		return keyset.XXHasher{}, nil
	case "md5":
		return keyset.NewDigestHasher(crypto.MD5)
	case "sha1":
		return keyset.NewDigestHasher(crypto.SHA1)
	case "sha256":
		return keyset.NewDigestHasher(crypto.SHA256)
	}
	return nil, fmt.Errorf("unknown hash '%s' (allowed: murmur3, siphash, fasthash, xxhash, md5, sha1, sha256)", name)
}

func readKeys(files []string) ([]string, error) {
	var keys []string

	for _, fn := range files {
		fd, err := os.Open(fn)
		if err != nil {
			return nil, err
		}

		sc := bufio.NewScanner(fd)
		for sc.Scan() {
			s := strings.TrimSpace(sc.Text())
			if len(s) == 0 || s[0] == '#' {
				continue
			}
			keys = append(keys, s)
		}
		if err := sc.Err(); err != nil {
			fd.Close()
			return nil, fmt.Errorf("%s: %w", fn, err)
		}
		fd.Close()
	}
	return keys, nil
}

func die(f string, v ...interface{}) {
	warn(f, v...)
	os.Exit(1)
}

func warn(f string, v ...interface{}) {
	z := fmt.Sprintf("%s: %s", os.Args[0], f)
	s := fmt.Sprintf(z, v...)
	if n := len(s); s[n-1] != '\n' {
		s += "\n"
	}

	os.Stderr.WriteString(s)
	os.Stderr.Sync()
}
