//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package env

import (
	"bytes"
	"crypto/rand"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	var config Config
	assert.Equal(t, rand.Reader, config.GetRandom())
	assert.NotNil(t, config.GetLogger())
	assert.Equal(t, log.InfoLevel, config.GetLogger().Level)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "debug")
	require.NoError(t, err)

	config := &Config{
		Rand:   bytes.NewReader(nil),
		Logger: logger,
	}
	assert.True(t, logger == config.GetLogger())
	assert.NotEqual(t, rand.Reader, config.GetRandom())

	config.GetLogger().Debugf("trial %d", 1)
	assert.Contains(t, buf.String(), "trial 1")

	_, err = NewLogger(&buf, "loud")
	assert.Error(t, err)
}
