// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"

	pkgerr "github.com/pkg/errors"
)

// 所有错误都不会修改游戏状态
var (
	ErrWrongStake        = errors.New("Place required bet amount")
	ErrGameInProgress    = errors.New("Game started, try joinGame")
	ErrGameLocked        = errors.New("Game locked, try startGame")
	ErrUnauthorized      = errors.New("player1 only")
	ErrAwaitingOpponent  = errors.New("Waiting for player2 to join")
	ErrInvalidReveal     = errors.New("secret does not match the commitment")
	ErrInvalidMove       = errors.New("move must be rock, paper or scissors")
	ErrInvalidCommitment = errors.New("commitment length does not match the hash type")
	ErrSecretTooShort    = errors.New("secret is too short")
	ErrUnknownHashType   = errors.New("unknown hash type")
	ErrStakeMismatch     = errors.New("stored game uses a different stake")
	ErrHashTypeMismatch  = errors.New("stored game uses a different hash type")
)

// 错误码, 对外接口使用
const (
	CodeOK int32 = iota
	CodeWrongStake
	CodeGameInProgress
	CodeGameLocked
	CodeUnauthorized
	CodeAwaitingOpponent
	CodeInvalidReveal
	CodeInvalidMove
	CodeInvalidCommitment
	CodeSecretTooShort
	CodeUnknownHashType
	CodeStakeMismatch
	CodeHashTypeMismatch
	CodeUnknown = int32(99)
)

var errCodes = map[error]int32{
	ErrWrongStake:        CodeWrongStake,
	ErrGameInProgress:    CodeGameInProgress,
	ErrGameLocked:        CodeGameLocked,
	ErrUnauthorized:      CodeUnauthorized,
	ErrAwaitingOpponent:  CodeAwaitingOpponent,
	ErrInvalidReveal:     CodeInvalidReveal,
	ErrInvalidMove:       CodeInvalidMove,
	ErrInvalidCommitment: CodeInvalidCommitment,
	ErrSecretTooShort:    CodeSecretTooShort,
	ErrUnknownHashType:   CodeUnknownHashType,
	ErrStakeMismatch:     CodeStakeMismatch,
	ErrHashTypeMismatch:  CodeHashTypeMismatch,
}

//ErrCode 返回错误对应的错误码, 被 pkg/errors 包装过的错误按原始错误计算
func ErrCode(err error) int32 {
	if err == nil {
		return CodeOK
	}
	if code, ok := errCodes[pkgerr.Cause(err)]; ok {
		return code
	}
	return CodeUnknown
}
