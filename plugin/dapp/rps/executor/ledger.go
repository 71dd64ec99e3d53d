// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/mathograham/RockPaperScissorsGame/account"
	"github.com/mathograham/RockPaperScissorsGame/types"
	"github.com/pkg/errors"
)

//Ledger 托管赌注的账本
type Ledger interface {
	//Escrow 从 from 扣除 amount 并由合约托管
	Escrow(from string, amount int64) (*types.Receipt, error)
	//Payout 把托管中属于 from 的 amount 付给 to, from 和 to 可以相同
	Payout(from, to string, amount int64) (*types.Receipt, error)
	//Balance 合约托管的总金额
	Balance() int64
}

//accountLedger 资金转入合约地址后冻结在玩家的执行器账户中
type accountLedger struct {
	coins    *account.DB
	execaddr string
}

func newAccountLedger(coins *account.DB, execaddr string) *accountLedger {
	return &accountLedger{coins: coins, execaddr: execaddr}
}

func (l *accountLedger) Escrow(from string, amount int64) (*types.Receipt, error) {
	receipt, err := l.coins.TransferToExec(from, l.execaddr, amount)
	if err != nil {
		return nil, errors.Wrapf(err, "transfer to exec %s", from)
	}
	receipt2, err := l.coins.ExecFrozen(from, l.execaddr, amount)
	if err != nil {
		return nil, errors.Wrapf(err, "frozen %s", from)
	}
	return types.MergeReceipt(receipt, receipt2), nil
}

func (l *accountLedger) Payout(from, to string, amount int64) (*types.Receipt, error) {
	var receipt *types.Receipt
	var err error
	if from == to {
		receipt, err = l.coins.ExecActive(from, l.execaddr, amount)
	} else {
		receipt, err = l.coins.ExecTransferFrozen(from, to, l.execaddr, amount)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "release %s to %s", from, to)
	}
	receipt2, err := l.coins.TransferWithdraw(to, l.execaddr, amount)
	if err != nil {
		return nil, errors.Wrapf(err, "withdraw %s", to)
	}
	return types.MergeReceipt(receipt, receipt2), nil
}

func (l *accountLedger) Balance() int64 {
	return l.coins.LoadAccount(l.execaddr).GetBalance()
}
