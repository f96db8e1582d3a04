// Copyright © 2025 PrimeChecker Authors.
//
// This file is part of PrimeChecker. The full copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Command primecheck classifies integers as prime, probably prime or
// composite, and can search for primes.
//
//	primecheck 561 7919 0x1fffffffffffffff
//	primecheck -rounds 64 -seed 42 -json 618970019642690137449562111
//	primecheck -next 90
//	primecheck -generate 256
//
// The exit status carries the overall verdict: 0 when every input is prime
// or probably prime, 1 when any is composite, 2 on error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ipfs/go-log"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	big "github.com/JamesDevlin5/PrimeChecker/common/int"
	"github.com/JamesDevlin5/PrimeChecker/primality"
	"github.com/JamesDevlin5/PrimeChecker/primegen"
)

const (
	exitPrime     = 0
	exitComposite = 1
	exitError     = 2
)

var (
	flagRounds   = flag.Int("rounds", primality.DefaultRounds, "witness rounds beyond the deterministic range")
	flagLimit    = flag.Uint64("limit", primality.DefaultTrialDivisionLimit, "trial division scan limit")
	flagSeed     = flag.Uint64("seed", 0, "fix the witness seed for reproducible runs")
	flagConfig   = flag.String("config", "", "YAML file with rounds, limit and seed settings")
	flagJSON     = flag.Bool("json", false, "emit one JSON verdict per line")
	flagQuiet    = flag.Bool("quiet", false, "no verdict output; the exit status carries the result")
	flagParallel = flag.Int("parallel", 0, "worker count for multiple inputs (0 = one per CPU)")
	flagGenerate = flag.Int("generate", 0, "generate a random prime of the given bit length and exit")
	flagNext     = flag.Bool("next", false, "print the smallest prime greater than each input")
	flagTimeout  = flag.Duration("timeout", 5*time.Minute, "bound for -generate searches")
	flagVerbose  = flag.Bool("v", false, "debug logging")
)

// fileConfig mirrors the engine knobs for -config files. Pointer fields
// distinguish absent keys from zero values.
type fileConfig struct {
	Rounds *int    `yaml:"rounds"`
	Limit  *uint64 `yaml:"limit"`
	Seed   *uint64 `yaml:"seed"`
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: primecheck [flags] N [N ...]\n")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	if *flagVerbose {
		if err := log.SetLogLevel("primecheck", "debug"); err != nil {
			fmt.Fprintln(os.Stderr, "primecheck:", err)
		}
	}

	cfg, err := buildConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "primecheck:", err)
		return exitError
	}

	if *flagGenerate > 0 {
		return generate(*flagGenerate)
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		return exitError
	}

	ns := make([]*big.Nat, len(args))
	for i, arg := range args {
		n, err := big.ParseNat(arg, 0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "primecheck: %v\n", err)
			return exitError
		}
		ns[i] = n
	}

	if *flagNext {
		return nextPrimes(ns)
	}
	return classify(ns, cfg)
}

// buildConfig merges defaults, the -config file and explicit flags, the
// latter winning.
func buildConfig() (*primality.Config, error) {
	rounds, limit := *flagRounds, *flagLimit
	var seed *uint64

	if *flagConfig != "" {
		raw, err := os.ReadFile(*flagConfig)
		if err != nil {
			return nil, err
		}
		var fc fileConfig
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", *flagConfig)
		}
		if fc.Rounds != nil {
			rounds = *fc.Rounds
		}
		if fc.Limit != nil {
			limit = *fc.Limit
		}
		if fc.Seed != nil {
			seed = fc.Seed
		}
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["rounds"] {
		rounds = *flagRounds
	}
	if set["limit"] {
		limit = *flagLimit
	}
	if set["seed"] {
		s := *flagSeed
		seed = &s
	}

	if seed != nil {
		return primality.NewConfig(limit, rounds, *seed)
	}
	return primality.NewConfig(limit, rounds)
}

func classify(ns []*big.Nat, cfg *primality.Config) int {
	started := time.Now()
	verdicts, err := primality.TestAll(context.Background(), ns, cfg, *flagParallel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "primecheck: %v\n", err)
		return exitError
	}

	status := exitPrime
	for _, v := range verdicts {
		if !v.IsPrime() {
			status = exitComposite
			break
		}
	}

	switch {
	case *flagQuiet:
	case *flagJSON:
		enc := json.NewEncoder(os.Stdout)
		for _, v := range verdicts {
			if err := enc.Encode(v); err != nil {
				fmt.Fprintf(os.Stderr, "primecheck: %v\n", err)
				return exitError
			}
		}
	case len(ns) == 1:
		printOne(ns[0], verdicts[0])
	default:
		printTable(ns, verdicts, time.Since(started))
	}
	return status
}

func printOne(n *big.Nat, v primality.Verdict) {
	switch {
	case v.Classification() == primality.Composite && v.Witness() != nil:
		fmt.Printf("%s is divisible by %s\n", n, v.Witness())
	case v.Classification() == primality.Composite:
		fmt.Printf("%s is composite\n", n)
	case v.Classification() == primality.Prime:
		fmt.Printf("%s is prime\n", n)
	default:
		fmt.Printf("%s appears to be prime! (%d rounds, error bound %.3g)\n", n, v.Rounds(), v.FalsePositiveBound())
	}
}

func printTable(ns []*big.Nat, verdicts []primality.Verdict, took time.Duration) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Input", "Verdict", "Algorithm", "Rounds", "Witness"})
	composites := 0
	for i, v := range verdicts {
		witness := ""
		if w := v.Witness(); w != nil {
			witness = w.String()
		}
		if !v.IsPrime() {
			composites++
		}
		table.Append([]string{
			abbreviate(ns[i]),
			v.Classification().String(),
			v.Algorithm(),
			strconv.Itoa(v.Rounds()),
			witness,
		})
	}
	table.Render()

	p := message.NewPrinter(language.English)
	p.Printf("%d inputs, %d composite, %d prime or probably prime, in %v\n",
		len(verdicts), composites, len(verdicts)-composites, took.Round(time.Millisecond))
}

// abbreviate keeps table rows readable when inputs run to thousands of digits.
func abbreviate(n *big.Nat) string {
	s := n.String()
	if len(s) <= 24 {
		return s
	}
	p := message.NewPrinter(language.English)
	return p.Sprintf("%s...%s (%d digits)", s[:8], s[len(s)-8:], len(s))
}

func generate(bits int) int {
	ctx, cancel := context.WithTimeout(context.Background(), *flagTimeout)
	defer cancel()

	started := time.Now()
	var (
		p   *big.Nat
		err error
	)
	if *flagParallel > 0 {
		p, err = primegen.RandomPrime(ctx, bits, *flagParallel)
	} else {
		p, err = primegen.RandomPrime(ctx, bits)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "primecheck: %v\n", err)
		return exitError
	}
	if *flagQuiet {
		fmt.Println(p)
		return exitPrime
	}
	pr := message.NewPrinter(language.English)
	pr.Printf("generated a %d-bit prime in %v:\n", bits, time.Since(started).Round(time.Millisecond))
	fmt.Println(p)
	return exitPrime
}

func nextPrimes(ns []*big.Nat) int {
	for _, n := range ns {
		p, err := primegen.NextPrime(n)
		if err != nil {
			fmt.Fprintf(os.Stderr, "primecheck: %v\n", err)
			return exitError
		}
		fmt.Println(p)
	}
	return exitPrime
}
