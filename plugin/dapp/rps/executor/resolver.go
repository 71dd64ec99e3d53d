// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	rt "github.com/mathograham/RockPaperScissorsGame/plugin/dapp/rps/types"
)

//Resolve 判定胜负
//出拳按 石头(1) -> 布(2) -> 剪刀(3) 循环，每一个克制它前面的那一个
//非法的出拳返回 OutcomeNone, 调用前应该已经校验过
func Resolve(move1, move2 rt.Move) rt.Outcome {
	if !move1.Valid() || !move2.Valid() {
		return rt.OutcomeNone
	}
	switch (int32(move1) - int32(move2) + 3) % 3 {
	case 0:
		return rt.Draw
	case 1:
		return rt.Player1Wins
	default:
		return rt.Player2Wins
	}
}
