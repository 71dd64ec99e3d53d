// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	log15 "github.com/inconshreveable/log15"
	"github.com/mathograham/RockPaperScissorsGame/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, log15.LvlDebug, getLevel("debug"))
	assert.Equal(t, log15.LvlInfo, getLevel("info"))
	assert.Equal(t, log15.LvlError, getLevel("nosuchlevel"))
	assert.Equal(t, log15.LvlError, getLevel(""))
}

func TestSetFileLog(t *testing.T) {
	defer Reset()
	Reset()
	file := filepath.Join(t.TempDir(), "rps.log")
	cfg := &types.Log{Loglevel: "info", LogFile: file, CallerFile: true}
	SetFileLog(cfg)
	assert.Equal(t, "eror", cfg.LogConsoleLevel)

	rlog := New("module", "log.test")
	rlog.Info("round resolved", "winner", "alice")
	rlog.Debug("filtered out")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.Contains(content, "round resolved"))
	assert.True(t, strings.Contains(content, "module=log.test"))
	assert.False(t, strings.Contains(content, "filtered out"))
}

func TestSetFileLogAgain(t *testing.T) {
	defer Reset()
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")
	SetFileLog(&types.Log{Loglevel: "info", LogFile: first})
	rlog := New("module", "log.test")
	rlog.Info("to first")

	SetFileLog(&types.Log{Loglevel: "debug", LogFile: second})
	rlog.Debug("to second")

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "to first"))
	assert.False(t, strings.Contains(string(data), "to second"))
	data, err = os.ReadFile(second)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "to second"))
}
