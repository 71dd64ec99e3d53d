// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/mathograham/RockPaperScissorsGame/types"
	"github.com/shopspring/decimal"
)

var coin = decimal.New(types.Coin, 0)

//ParseCoins 把以 coin 为单位的金额转换成最小单位, 精度不能超过 1e-8
func ParseCoins(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, types.ErrAmount
	}
	d = d.Mul(coin)
	if !d.Equal(d.Truncate(0)) {
		return 0, types.ErrAmount
	}
	if !d.IsPositive() || d.GreaterThanOrEqual(decimal.New(types.MaxCoin, 0)) {
		return 0, types.ErrAmount
	}
	return d.IntPart(), nil
}

//FormatCoins 最小单位转换成 coin
func FormatCoins(amount int64) string {
	return decimal.New(amount, -8).String()
}
