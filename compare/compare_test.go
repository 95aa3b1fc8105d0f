//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package compare

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markkurossi/sha1bits/env"
)

func testConfig(t *testing.T) *env.Config {
	logger, err := env.NewLogger(io.Discard, "debug")
	require.NoError(t, err)
	return &env.Config{
		Logger: logger,
	}
}

func TestRun(t *testing.T) {
	report, err := Run(context.Background(), testConfig(t), Config{
		Trials:   64,
		MaxBytes: 300,
		MaxChunk: 700,
		Seed:     []byte("compare"),
		Workers:  4,
	})
	require.NoError(t, err)

	assert.True(t, report.OK())
	assert.Equal(t, 64, report.Trials)
	assert.NotZero(t, report.Bytes)
	assert.NotZero(t, report.Chunks)
	assert.Equal(t, []byte("compare"), report.Seed)

	var out bytes.Buffer
	report.Print(&out)
	assert.Contains(t, out.String(), "Mismatches")
	assert.Contains(t, out.String(), "crypto/sha1")
}

func TestRunDeterministic(t *testing.T) {
	cfg := Config{
		Trials:   16,
		MaxBytes: 200,
		Seed:     []byte{1, 2, 3},
	}
	r1, err := Run(context.Background(), testConfig(t), cfg)
	require.NoError(t, err)

	cfg.Workers = 1
	r2, err := Run(context.Background(), testConfig(t), cfg)
	require.NoError(t, err)

	assert.Equal(t, r1.Bytes, r2.Bytes)
	assert.Equal(t, r1.Chunks, r2.Chunks)
}

func TestRunRandomSeed(t *testing.T) {
	config := testConfig(t)
	config.Rand = bytes.NewReader(bytes.Repeat([]byte{0x42}, 32))

	report, err := Run(context.Background(), config, Config{
		Trials:   2,
		MaxBytes: 0,
	})
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, bytes.Repeat([]byte{0x42}, 32), report.Seed)
	assert.Zero(t, report.Bytes)

	config.Rand = strings.NewReader("short")
	_, err = Run(context.Background(), config, Config{Trials: 1})
	assert.Error(t, err)
}

func TestRunInvalidConfig(t *testing.T) {
	for _, cfg := range []Config{
		{},
		{Trials: -1},
		{Trials: 1, MaxBytes: -1},
		{Trials: 1, MaxChunk: -1},
		{Trials: 1, Workers: -1},
	} {
		_, err := Run(context.Background(), testConfig(t), cfg)
		assert.True(t, errors.Is(err, ErrInvalidConfig), "%+v", cfg)
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, testConfig(t), Config{
		Trials: 10,
		Seed:   []byte{1},
	})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestPRG(t *testing.T) {
	a := NewPRG([]byte("seed"), 1)
	b := NewPRG([]byte("seed"), 1)
	c := NewPRG([]byte("seed"), 2)

	var ba, bb, bc [64]byte
	a.Read(ba[:])
	b.Read(bb[:])
	c.Read(bc[:])
	assert.Equal(t, ba, bb)
	assert.NotEqual(t, ba, bc)

	for i := 0; i < 1000; i++ {
		n := a.Intn(7)
		assert.True(t, n >= 0 && n < 7)
	}
	assert.Panics(t, func() { a.Intn(0) })
	assert.Panics(t, func() { NewPRG(nil, 0) })
}

func TestTiming(t *testing.T) {
	timing := NewTiming()
	assert.Zero(t, timing.Total())

	sample := timing.Sample("Hash", []string{"1kB"})
	sample.AbsSubSample("Engine", time.Millisecond)
	sample.SubSample("Tail", time.Now())

	var out bytes.Buffer
	timing.Print(&out, 1500)
	assert.Contains(t, out.String(), "Hash")
	assert.Contains(t, out.String(), "Engine")
	assert.Contains(t, out.String(), "Total")
}

func TestFileSize(t *testing.T) {
	assert.Equal(t, "999B", FileSize(999).String())
	assert.Equal(t, "1kB", FileSize(1500).String())
	assert.Equal(t, "2MB", FileSize(2500000).String())
	assert.Equal(t, "3GB", FileSize(3000000001).String())
}
