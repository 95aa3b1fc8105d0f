//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package compare cross-checks the bit-oriented SHA-1 engine against
// crypto/sha1. Each trial hashes a pseudorandom message that is fed
// to the engine in pseudorandom chunks whose boundaries fall at
// arbitrary bit offsets.
package compare

import (
	"context"
	stdsha1 "crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/markkurossi/tabulate"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/chacha20"
	"golang.org/x/sync/errgroup"

	"github.com/markkurossi/sha1bits/bitvec"
	"github.com/markkurossi/sha1bits/env"
	"github.com/markkurossi/sha1bits/sha1"
)

// DefaultMaxChunk is the default upper bound of the chunk size in
// bits.
const DefaultMaxChunk = 3 * sha1.BlockSize * 8

// ErrInvalidConfig is returned for invalid comparison parameters.
var ErrInvalidConfig = errors.New("invalid comparison configuration")

// Config configures a comparison run.
type Config struct {
	// Trials is the number of messages to hash.
	Trials int
	// MaxBytes is the maximum message length in bytes.
	MaxBytes int
	// MaxChunk is the maximum chunk length in bits. Zero selects
	// DefaultMaxChunk.
	MaxChunk int
	// Seed selects the pseudorandom messages. An empty seed is read
	// from the environment's entropy source.
	Seed []byte
	// Workers is the number of concurrent trials. Zero uses one
	// worker per CPU.
	Workers int
}

// Mismatch describes a trial where the digests differ.
type Mismatch struct {
	Trial  int
	Bytes  int
	Chunks int
	Got    sha1.Digest
	Want   sha1.Digest
}

// Report holds the results of a comparison run.
type Report struct {
	Trials     int
	Bytes      uint64
	Chunks     uint64
	Seed       []byte
	Mismatches []Mismatch
	Timing     *Timing
}

// OK tests if all trials produced matching digests.
func (r *Report) OK() bool {
	return len(r.Mismatches) == 0
}

type trialResult struct {
	bytes  int
	chunks int
	got    sha1.Digest
	want   sha1.Digest
	engine time.Duration
	ref    time.Duration
}

// Run runs the comparison trials.
func Run(ctx context.Context, config *env.Config, cfg Config) (
	*Report, error) {

	if cfg.Trials <= 0 || cfg.MaxBytes < 0 || cfg.MaxChunk < 0 ||
		cfg.Workers < 0 {
		return nil, fmt.Errorf("%w: trials=%d, max-bytes=%d, max-chunk=%d",
			ErrInvalidConfig, cfg.Trials, cfg.MaxBytes, cfg.MaxChunk)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := config.GetLogger()
	timing := NewTiming()

	seed := cfg.Seed
	if len(seed) == 0 {
		seed = make([]byte, chacha20.KeySize)
		_, err := io.ReadFull(config.GetRandom(), seed)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed: %w", err)
		}
	}
	if cfg.MaxChunk == 0 {
		cfg.MaxChunk = DefaultMaxChunk
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.Trials {
		workers = cfg.Trials
	}
	logger.WithFields(log.Fields{
		"seed":    hex.EncodeToString(seed),
		"trials":  cfg.Trials,
		"workers": workers,
	}).Debug("starting comparison")

	timing.Sample("Setup", nil)

	report := &Report{
		Trials: cfg.Trials,
		Seed:   seed,
		Timing: timing,
	}
	var m sync.Mutex
	var engine, ref time.Duration

	trials := make(chan int)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(trials)
		for i := 0; i < cfg.Trials; i++ {
			select {
			case trials <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for trial := range trials {
				if err := ctx.Err(); err != nil {
					return err
				}
				r := runTrial(seed, trial, cfg)

				m.Lock()
				report.Bytes += uint64(r.bytes)
				report.Chunks += uint64(r.chunks)
				engine += r.engine
				ref += r.ref
				if r.got != r.want {
					report.Mismatches = append(report.Mismatches, Mismatch{
						Trial:  trial,
						Bytes:  r.bytes,
						Chunks: r.chunks,
						Got:    r.got,
						Want:   r.want,
					})
					logger.WithFields(log.Fields{
						"trial":  trial,
						"bytes":  r.bytes,
						"chunks": r.chunks,
					}).Warnf("digest mismatch: %v != %v", r.got, r.want)
				}
				m.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(report.Mismatches, func(i, j int) bool {
		return report.Mismatches[i].Trial < report.Mismatches[j].Trial
	})

	sample := timing.Sample("Trials", []string{
		FileSize(report.Bytes).String(),
	})
	sample.AbsSubSample("Engine", engine)
	sample.AbsSubSample("crypto/sha1", ref)

	logger.WithField("mismatches", len(report.Mismatches)).
		Debug("comparison done")

	return report, nil
}

func runTrial(seed []byte, trial int, cfg Config) trialResult {
	prg := NewPRG(seed, uint64(trial))

	msg := make([]byte, prg.Intn(cfg.MaxBytes+1))
	prg.Read(msg)
	v := bitvec.FromBytes(msg)

	var result trialResult
	result.bytes = len(msg)

	start := time.Now()
	h := sha1.New()
	for ofs := 0; ofs < v.Len(); result.chunks++ {
		size := prg.Intn(cfg.MaxChunk + 1)
		if ofs+size > v.Len() {
			size = v.Len() - ofs
		}
		h.Add(v.Slice(ofs, ofs+size))
		ofs += size
	}
	result.got = h.Finalize()
	result.engine = time.Since(start)

	start = time.Now()
	sum := stdsha1.Sum(msg)
	result.ref = time.Since(start)

	want, err := sha1.DigestFromBytes(sum[:])
	if err != nil {
		panic(err)
	}
	result.want = want

	return result
}

// Print prints the report to out.
func (r *Report) Print(out io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Item").SetAlign(tabulate.ML)
	tab.Header("Value").SetAlign(tabulate.ML)

	row := tab.Row()
	row.Column("Trials")
	row.Column(fmt.Sprintf("%d", r.Trials))

	row = tab.Row()
	row.Column("Chunks")
	row.Column(fmt.Sprintf("%d", r.Chunks))

	row = tab.Row()
	row.Column("Seed")
	row.Column(hex.EncodeToString(r.Seed))

	row = tab.Row()
	row.Column("Mismatches").SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d", len(r.Mismatches))).
		SetFormat(tabulate.FmtBold)

	tab.Print(out)

	if len(r.Mismatches) > 0 {
		tab = tabulate.New(tabulate.UnicodeLight)
		tab.Header("Trial").SetAlign(tabulate.MR)
		tab.Header("Bytes").SetAlign(tabulate.MR)
		tab.Header("Chunks").SetAlign(tabulate.MR)
		tab.Header("Engine").SetAlign(tabulate.ML)
		tab.Header("crypto/sha1").SetAlign(tabulate.ML)

		for _, mm := range r.Mismatches {
			row := tab.Row()
			row.Column(fmt.Sprintf("%d", mm.Trial))
			row.Column(fmt.Sprintf("%d", mm.Bytes))
			row.Column(fmt.Sprintf("%d", mm.Chunks))
			row.Column(mm.Got.Hex())
			row.Column(mm.Want.Hex())
		}
		tab.Print(out)
	}

	if r.Timing != nil {
		r.Timing.Print(out, r.Bytes)
	}
}
