//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const abcDigest = "a9993e364706816aba3e25717850c26c9cd0d89d"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOutput(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestBits(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{
			[]string{"bits", "0110_0001", "0110_0010", "01100011"},
			abcDigest,
		},
		{
			[]string{"bits", "011", "00001011000100110", "0011"},
			abcDigest,
		},
		{
			[]string{"bits", "--text", "sha"},
			"d8f4590320e1343a915b6394170650a8f35d6926",
		},
		{
			[]string{"bits", "--text", "--chunk", "3", "S", "ha"},
			"ba79baeb9f10896a46ae74715271b7f586e74640",
		},
		{
			[]string{"bits"},
			"da39a3ee5e6b4b0d3255bfef95601890afd80709",
		},
	}
	for _, test := range tests {
		out, err := run(t, test.args...)
		require.NoError(t, err, "%v", test.args)
		assert.Equal(t, test.want+"\n", out, "%v", test.args)
	}

	_, err := run(t, "bits", "012")
	assert.Error(t, err)
	_, err = run(t, "bits", "--chunk", "-1", "0")
	assert.Error(t, err)
}

func TestSum(t *testing.T) {
	dir := t.TempDir()
	abc := filepath.Join(dir, "abc")
	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(abc, []byte("abc"), 0644))
	require.NoError(t, os.WriteFile(empty, nil, 0644))

	out, err := run(t, "sum", abc, empty)
	require.NoError(t, err)
	assert.Equal(t,
		abcDigest+"  "+abc+"\n"+
			"da39a3ee5e6b4b0d3255bfef95601890afd80709  "+empty+"\n",
		out)

	_, err = run(t, "sum", filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestSumReader(t *testing.T) {
	msg := bytes.Repeat([]byte("abc"), 50000)
	d1, err := sumReader(bytes.NewReader(msg))
	require.NoError(t, err)

	digest, _, err := hashArgs([]string{string(msg)}, bitsOptions{text: true})
	require.NoError(t, err)
	assert.Equal(t, digest, d1)
}

func TestCompare(t *testing.T) {
	out, err := run(t, "compare", "--trials", "8", "--max-bytes", "200",
		"--seed", "0102", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Mismatches")

	_, err = run(t, "compare", "--seed", "zz")
	assert.Error(t, err)
	_, err = run(t, "compare", "--trials", "0")
	assert.Error(t, err)
}

func TestParams(t *testing.T) {
	out, err := run(t, "params")
	require.NoError(t, err)
	assert.Contains(t, out, "2⁶⁴-1 bits")
	assert.Contains(t, out, "0x67452301")
}

func TestLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "params")
	assert.Error(t, err)
}
