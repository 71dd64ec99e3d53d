// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// coin conversation
const (
	Coin            int64 = 1e8
	MaxCoin         int64 = 1e17
	TokenPrecision  int64 = 1e8
	MaxTokenBalance int64 = 900 * 1e8 * TokenPrecision //900亿
	CoinSymbol            = "bty"
)

// 执行结果
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

// 系统日志类型，合约自定义的日志类型从 100 开始
const (
	TyLogReserved        = 0
	TyLogErr             = 1
	TyLogFee             = 2
	TyLogTransfer        = 3
	TyLogGenesis         = 4
	TyLogDeposit         = 5
	TyLogGenesisTransfer = 6
	TyLogExecTransfer    = 7
	TyLogExecWithdraw    = 8
	TyLogExecDeposit     = 9
	TyLogExecFrozen      = 10
	TyLogExecActive      = 11
)

// list 方向
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)
