// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"bytes"
	"testing"

	"github.com/mathograham/RockPaperScissorsGame/common"
	rt "github.com/mathograham/RockPaperScissorsGame/plugin/dapp/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitVerify(t *testing.T) {
	for _, hashType := range []string{rt.HashSha256, rt.HashKeccak256} {
		for _, move := range rt.Moves {
			secret := NewSecret()
			require.Len(t, secret, rt.SecretLen)
			commitment, err := NewCommitment(move, secret, hashType)
			require.NoError(t, err)
			size, err := HashSize(hashType)
			require.NoError(t, err)
			require.Len(t, commitment, size)

			got, err := Verify(hashType, commitment, secret)
			require.NoError(t, err)
			assert.Equal(t, move, got, hashType)

			//secret 不对
			wrong := append([]byte(nil), secret...)
			wrong[0] ^= 0x01
			_, err = Verify(hashType, commitment, wrong)
			assert.Equal(t, rt.ErrInvalidReveal, err)
		}
	}
}

func TestCommitConstruction(t *testing.T) {
	secret := bytes.Repeat([]byte{0x92}, rt.MinSecretLen)
	commitment, err := NewCommitment(rt.Paper, secret, rt.HashSha256)
	require.NoError(t, err)
	assert.Equal(t, common.Sha256(append(append([]byte(nil), secret...), byte(rt.Paper))), commitment)

	commitment2, err := NewCommitment(rt.Paper, secret, rt.HashKeccak256)
	require.NoError(t, err)
	assert.NotEqual(t, commitment, commitment2)
	//不同算法的承诺互相不能验证
	_, err = Verify(rt.HashKeccak256, commitment, secret)
	assert.Equal(t, rt.ErrInvalidReveal, err)
}

func TestNewCommitmentErrors(t *testing.T) {
	_, err := NewCommitment(rt.Rock, make([]byte, rt.MinSecretLen-1), rt.HashSha256)
	assert.Equal(t, rt.ErrSecretTooShort, err)
	_, err = NewCommitment(rt.None, NewSecret(), rt.HashSha256)
	assert.Equal(t, rt.ErrInvalidMove, err)
	_, err = NewCommitment(rt.Rock, NewSecret(), "md5")
	assert.Equal(t, rt.ErrUnknownHashType, err)
	_, err = Verify("md5", nil, nil)
	assert.Equal(t, rt.ErrUnknownHashType, err)
	_, err = HashSize("md5")
	assert.Equal(t, rt.ErrUnknownHashType, err)

	//默认使用 sha256
	size, err := HashSize("")
	require.NoError(t, err)
	assert.Equal(t, 32, size)
}

func TestVerifyGarbage(t *testing.T) {
	_, err := Verify(rt.HashSha256, []byte{0x90}, []byte{0x92})
	assert.Equal(t, rt.ErrInvalidReveal, err)
	_, err = Verify(rt.HashSha256, nil, nil)
	assert.Equal(t, rt.ErrInvalidReveal, err)
}
