// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

const (
	//RpsX 执行器名
	RpsX = "rps"
)

// log ty, 合约自定义的日志从 1000 开始
const (
	TyLogRpsStart  = 1001
	TyLogRpsJoin   = 1002
	TyLogRpsReveal = 1003
)

// 承诺使用的哈希算法
const (
	HashSha256    = "sha256"
	HashKeccak256 = "keccak256"
)

const (
	//MinSecretLen secret 的最小长度
	MinSecretLen = 16
	//SecretLen NewSecret 生成的 secret 长度
	SecretLen = 32

	DefaultCount = int32(20)  //默认一次取多少条记录
	MaxCount     = int32(100) //最多取100条
)
