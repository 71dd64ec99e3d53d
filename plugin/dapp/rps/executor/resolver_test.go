// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	rt "github.com/mathograham/RockPaperScissorsGame/plugin/dapp/rps/types"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		move1, move2 rt.Move
		want         rt.Outcome
	}{
		{rt.Rock, rt.Rock, rt.Draw},
		{rt.Rock, rt.Paper, rt.Player2Wins},
		{rt.Rock, rt.Scissors, rt.Player1Wins},
		{rt.Paper, rt.Rock, rt.Player1Wins},
		{rt.Paper, rt.Paper, rt.Draw},
		{rt.Paper, rt.Scissors, rt.Player2Wins},
		{rt.Scissors, rt.Rock, rt.Player2Wins},
		{rt.Scissors, rt.Paper, rt.Player1Wins},
		{rt.Scissors, rt.Scissors, rt.Draw},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Resolve(c.move1, c.move2), "%s vs %s", c.move1, c.move2)
	}
}

func TestResolveSymmetric(t *testing.T) {
	flip := map[rt.Outcome]rt.Outcome{
		rt.Draw:        rt.Draw,
		rt.Player1Wins: rt.Player2Wins,
		rt.Player2Wins: rt.Player1Wins,
	}
	for _, m1 := range rt.Moves {
		for _, m2 := range rt.Moves {
			assert.Equal(t, flip[Resolve(m1, m2)], Resolve(m2, m1))
		}
	}
}

func TestResolveInvalid(t *testing.T) {
	assert.Equal(t, rt.OutcomeNone, Resolve(rt.None, rt.Rock))
	assert.Equal(t, rt.OutcomeNone, Resolve(rt.Rock, rt.Move(4)))
}
