// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	cfg, err := Init("testdata/rps.toml")
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Title)
	assert.Equal(t, "debug", cfg.Log.Loglevel)
	assert.Equal(t, "", cfg.Log.LogFile)
	assert.Equal(t, "rpstest", cfg.Store.Name)
	assert.Equal(t, "memdb", cfg.Store.Driver)
	assert.Equal(t, "datadir/rps", cfg.Store.DbPath)
	assert.Equal(t, int64(1000000), cfg.Rps.StakeAmount)
	assert.Equal(t, "keccak256", cfg.Rps.HashType)
	assert.Equal(t, "rps", cfg.Rps.ExecName)
	assert.Equal(t, int32(20), cfg.Rps.DefaultCount)
	assert.Equal(t, int32(100), cfg.Rps.MaxCount)
	assert.False(t, cfg.Metrics.EnableMetrics)
	assert.Equal(t, "log", cfg.Metrics.DataEmitMode)
	assert.Equal(t, int64(60), cfg.Metrics.Duration)
}

func TestInitNotExist(t *testing.T) {
	_, err := Init("testdata/nosuch.toml")
	assert.Error(t, err)
}

func TestDefaultCfg(t *testing.T) {
	cfg := DefaultCfg()
	assert.Equal(t, "local", cfg.Title)
	assert.Equal(t, "logs/rps.log", cfg.Log.LogFile)
	assert.Equal(t, "leveldb", cfg.Store.Driver)
	assert.Equal(t, int32(16), cfg.Store.DbCache)
	assert.Equal(t, int64(10000), cfg.Rps.StakeAmount)
	assert.Equal(t, "sha256", cfg.Rps.HashType)
	assert.Equal(t, "log", cfg.Metrics.DataEmitMode)
}

func TestInitBadToml(t *testing.T) {
	_, err := initString("[rps\nstakeAmount=")
	assert.Error(t, err)
}
