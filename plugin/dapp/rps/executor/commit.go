// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"crypto/subtle"

	"github.com/mathograham/RockPaperScissorsGame/common"
	rt "github.com/mathograham/RockPaperScissorsGame/plugin/dapp/rps/types"
)

type hashFunc func([]byte) []byte

var hashers = map[string]hashFunc{
	rt.HashSha256:    common.Sha256,
	rt.HashKeccak256: common.ShaKeccak256,
}

func getHasher(hashType string) (hashFunc, error) {
	if hashType == "" {
		hashType = rt.HashSha256
	}
	h, ok := hashers[hashType]
	if !ok {
		return nil, rt.ErrUnknownHashType
	}
	return h, nil
}

//HashSize 承诺的长度
func HashSize(hashType string) (int, error) {
	if _, err := getHasher(hashType); err != nil {
		return 0, err
	}
	//两种算法都是 32 字节
	return 32, nil
}

func commit(h hashFunc, move rt.Move, secret []byte) []byte {
	buf := make([]byte, 0, len(secret)+1)
	buf = append(buf, secret...)
	buf = append(buf, byte(move))
	return h(buf)
}

//NewSecret 生成随机的 secret
func NewSecret() []byte {
	return common.CRandBytes(rt.SecretLen)
}

//NewCommitment 计算 hash(secret + 出拳), 给发起者在本地使用
func NewCommitment(move rt.Move, secret []byte, hashType string) ([]byte, error) {
	if !move.Valid() {
		return nil, rt.ErrInvalidMove
	}
	if len(secret) < rt.MinSecretLen {
		return nil, rt.ErrSecretTooShort
	}
	h, err := getHasher(hashType)
	if err != nil {
		return nil, err
	}
	return commit(h, move, secret), nil
}

//Verify 用 secret 依次尝试三种出拳，找到和 commitment 一致的那一个
func Verify(hashType string, commitment, secret []byte) (rt.Move, error) {
	h, err := getHasher(hashType)
	if err != nil {
		return rt.None, err
	}
	found := rt.None
	for _, m := range rt.Moves {
		if subtle.ConstantTimeCompare(commit(h, m, secret), commitment) == 1 {
			found = m
		}
	}
	if found == rt.None {
		return rt.None, rt.ErrInvalidReveal
	}
	return found, nil
}
