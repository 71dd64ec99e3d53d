// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"
	"testing"

	pkgerr "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	cases := map[string]Move{
		"rock": Rock, "R": Rock, "1": Rock,
		"Paper": Paper, "p": Paper, "2": Paper,
		"scissors": Scissors, " scissor ": Scissors, "3": Scissors,
	}
	for s, want := range cases {
		m, err := ParseMove(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, m, s)
		assert.True(t, m.Valid())
	}
	_, err := ParseMove("lizard")
	assert.Equal(t, ErrInvalidMove, err)
	assert.False(t, None.Valid())
	assert.False(t, Move(4).Valid())
	assert.Equal(t, "scissors", Scissors.String())
	assert.Equal(t, "none", Move(9).String())
}

func TestSessionState(t *testing.T) {
	var s *Session
	assert.Equal(t, Empty, s.State())

	s = &Session{}
	assert.True(t, s.IsEmpty())
	s.Player1 = "alice"
	s.Player1Commitment = []byte{1, 2, 3}
	assert.Equal(t, Player1Committed, s.State())
	s.Player2 = "bob"
	s.Player2Choice = Paper
	assert.Equal(t, BothCommitted, s.State())

	c := s.Clone()
	c.Player1Commitment[0] = 9
	assert.Equal(t, byte(1), s.Player1Commitment[0])

	s.Reset()
	assert.Equal(t, Session{}, *s)
	assert.Equal(t, "empty", s.State().String())
}

func TestErrCode(t *testing.T) {
	assert.Equal(t, CodeOK, ErrCode(nil))
	assert.Equal(t, CodeWrongStake, ErrCode(ErrWrongStake))
	assert.Equal(t, CodeInvalidReveal, ErrCode(pkgerr.Wrap(ErrInvalidReveal, "reveal")))
	assert.Equal(t, CodeUnknown, ErrCode(errors.New("other")))

	//错误码互不相同
	seen := make(map[int32]error)
	for err, code := range errCodes {
		_, dup := seen[code]
		assert.False(t, dup, err.Error())
		seen[code] = err
	}
	assert.Equal(t, "Place required bet amount", ErrWrongStake.Error())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "player1", Player1Wins.String())
	assert.Equal(t, "player2", Player2Wins.String())
	assert.Equal(t, "draw", Draw.String())
	assert.Equal(t, "none", OutcomeNone.String())
}
