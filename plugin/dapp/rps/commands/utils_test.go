// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"testing"

	"github.com/mathograham/RockPaperScissorsGame/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoins(t *testing.T) {
	cases := map[string]int64{
		"1":          1e8,
		"0.0001":     10000,
		"12.5":       125e7,
		"0.00000001": 1,
	}
	for s, want := range cases {
		got, err := ParseCoins(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
	for _, s := range []string{"", "abc", "0", "-1", "0.000000001", "1000000000"} {
		_, err := ParseCoins(s)
		assert.Equal(t, types.ErrAmount, err, s)
	}
}

func TestFormatCoins(t *testing.T) {
	assert.Equal(t, "0.0001", FormatCoins(10000))
	assert.Equal(t, "1", FormatCoins(1e8))
	assert.Equal(t, "0", FormatCoins(0))
	assert.Equal(t, "12.5", FormatCoins(125e7))
}
