// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"testing"

	"github.com/mathograham/RockPaperScissorsGame/common/address"
	"github.com/mathograham/RockPaperScissorsGame/common/db"
	"github.com/mathograham/RockPaperScissorsGame/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addr1 = address.PubKeyToAddress([]byte("addr1")).String()
	addr2 = address.PubKeyToAddress([]byte("addr2")).String()
	addr3 = address.PubKeyToAddress([]byte("addr3")).String()
	addr4 = address.PubKeyToAddress([]byte("addr4")).String()
)

func GenerAccDb() (*DB, *DB) {
	//构造账户数据库
	accCoin := NewCoinsAccount()
	stroedb, _ := db.NewGoMemDB("gomemdb", "test", 128)
	accCoin.SetDB(stroedb)

	accToken := newAccountDB(symbolPrefix("token", "test"))
	stroedb2, _ := db.NewGoMemDB("gomemdb", "test", 128)
	accToken.SetDB(stroedb2)

	return accCoin, accToken
}

func (acc *DB) GenerAccData() {
	// 加入账户
	account := &types.Account{
		Balance: 1000 * 1e8,
		Addr:    addr1,
	}
	acc.SaveAccount(account)

	account.Balance = 900 * 1e8
	account.Addr = addr2
	acc.SaveAccount(account)

	account.Balance = 800 * 1e8
	account.Addr = addr3
	acc.SaveAccount(account)

	account.Balance = 700 * 1e8
	account.Addr = addr4
	acc.SaveAccount(account)
}

func TestAccountKey(t *testing.T) {
	accCoin := NewCoinsAccount()
	assert.Equal(t, "mavl-coins-bty-"+addr1, string(accCoin.AccountKey(addr1)))
	execaddr := address.ExecAddress("rps")
	assert.Equal(t, "mavl-coins-bty-exec-"+execaddr+":"+addr1, string(accCoin.execAccountKey(addr1, execaddr)))
}

func TestCheckTransfer(t *testing.T) {
	accCoin, tokenCoin := GenerAccDb()
	accCoin.GenerAccData()
	tokenCoin.GenerAccData()

	err := accCoin.CheckTransfer(addr1, addr2, 10*1e8)
	require.NoError(t, err)

	err = tokenCoin.CheckTransfer(addr3, addr4, 10*1e8)
	require.NoError(t, err)

	err = accCoin.CheckTransfer(addr1, addr2, 2000*1e8)
	require.Equal(t, types.ErrNoBalance, err)
	err = accCoin.CheckTransfer(addr1, addr2, 0)
	require.Equal(t, types.ErrAmount, err)
}

func TestTransfer(t *testing.T) {
	accCoin, tokenCoin := GenerAccDb()
	accCoin.GenerAccData()
	tokenCoin.GenerAccData()

	receipt, err := accCoin.Transfer(addr1, addr2, 10*1e8)
	require.NoError(t, err)
	t.Logf("Coin from addr balance [%d] to addr balance [%d]",
		accCoin.LoadAccount(addr1).Balance,
		accCoin.LoadAccount(addr2).Balance)
	require.Equal(t, int64(1000*1e8-10*1e8), accCoin.LoadAccount(addr1).Balance)
	require.Equal(t, int64(900*1e8+10*1e8), accCoin.LoadAccount(addr2).Balance)
	require.Equal(t, int32(types.ExecOk), receipt.Ty)
	require.Len(t, receipt.KV, 2)
	require.Len(t, receipt.Logs, 2)

	var r types.ReceiptAccountTransfer
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &r))
	assert.Equal(t, int64(1000*1e8), r.Prev.Balance)
	assert.Equal(t, int64(990*1e8), r.Current.Balance)

	_, err = tokenCoin.Transfer(addr3, addr4, 10*1e8)
	require.NoError(t, err)
	require.Equal(t, int64(800*1e8-10*1e8), tokenCoin.LoadAccount(addr3).Balance)
	require.Equal(t, int64(700*1e8+10*1e8), tokenCoin.LoadAccount(addr4).Balance)

	_, err = accCoin.Transfer(addr1, addr1, 10*1e8)
	require.Equal(t, types.ErrSendSameToRecv, err)
	_, err = accCoin.Transfer(addr4, addr1, 701*1e8)
	require.Equal(t, types.ErrNoBalance, err)
}

func logTypes(receipt *types.Receipt) (tys []int32) {
	for _, l := range receipt.Logs {
		tys = append(tys, l.Ty)
	}
	return tys
}

func TestExecDepositWithdrawLogs(t *testing.T) {
	accCoin, _ := GenerAccDb()
	accCoin.GenerAccData()
	execaddr := address.ExecAddress("rps")

	receipt, err := accCoin.TransferToExec(addr1, execaddr, 10*1e8)
	require.NoError(t, err)
	assert.Equal(t, []int32{types.TyLogTransfer, types.TyLogTransfer, types.TyLogExecDeposit}, logTypes(receipt))
	var r types.ReceiptExecAccountTransfer
	require.NoError(t, types.Decode(receipt.Logs[2].Log, &r))
	assert.Equal(t, execaddr, r.ExecAddr)
	assert.Equal(t, int64(0), r.Prev.Balance)
	assert.Equal(t, int64(10*1e8), r.Current.Balance)

	receipt, err = accCoin.TransferWithdraw(addr1, execaddr, 4*1e8)
	require.NoError(t, err)
	assert.Equal(t, []int32{types.TyLogExecWithdraw, types.TyLogTransfer, types.TyLogTransfer}, logTypes(receipt))
	assert.Equal(t, int64(6*1e8), accCoin.LoadExecAccount(addr1, execaddr).Balance)
	assert.Equal(t, int64(6*1e8), accCoin.LoadAccount(execaddr).Balance)

	_, err = accCoin.TransferToExec(execaddr, execaddr, 1)
	assert.Equal(t, types.ErrSendSameToRecv, err)
}

func TestExecFrozenAndTransfer(t *testing.T) {
	accCoin, _ := GenerAccDb()
	accCoin.GenerAccData()
	execaddr := address.ExecAddress("rps")

	_, err := accCoin.TransferToExec(addr1, execaddr, 10*1e8)
	require.NoError(t, err)
	_, err = accCoin.TransferToExec(addr2, execaddr, 10*1e8)
	require.NoError(t, err)
	require.Equal(t, int64(20*1e8), accCoin.LoadAccount(execaddr).Balance)
	require.Equal(t, int64(10*1e8), accCoin.LoadExecAccount(addr1, execaddr).Balance)

	_, err = accCoin.ExecFrozen(addr1, execaddr, 10*1e8)
	require.NoError(t, err)
	_, err = accCoin.ExecFrozen(addr2, execaddr, 10*1e8)
	require.NoError(t, err)
	_, err = accCoin.ExecFrozen(addr2, execaddr, 1)
	require.Equal(t, types.ErrNoBalance, err)
	acc1 := accCoin.LoadExecAccount(addr1, execaddr)
	assert.Equal(t, int64(0), acc1.Balance)
	assert.Equal(t, int64(10*1e8), acc1.Frozen)

	//addr1 赢走 addr2 冻结的资金
	_, err = accCoin.ExecTransferFrozen(addr2, addr1, execaddr, 10*1e8)
	require.NoError(t, err)
	_, err = accCoin.ExecActive(addr1, execaddr, 10*1e8)
	require.NoError(t, err)
	acc1 = accCoin.LoadExecAccount(addr1, execaddr)
	assert.Equal(t, int64(20*1e8), acc1.Balance)
	assert.Equal(t, int64(0), acc1.Frozen)
	assert.Equal(t, int64(0), accCoin.LoadExecAccount(addr2, execaddr).Frozen)

	_, err = accCoin.TransferWithdraw(addr1, execaddr, 20*1e8)
	require.NoError(t, err)
	assert.Equal(t, int64(0), accCoin.LoadAccount(execaddr).Balance)
	assert.Equal(t, int64(1010*1e8), accCoin.LoadAccount(addr1).Balance)
	assert.Equal(t, int64(890*1e8), accCoin.LoadAccount(addr2).Balance)

	_, err = accCoin.TransferWithdraw(addr1, execaddr, 1)
	require.Equal(t, types.ErrNoBalance, err)
	_, err = accCoin.ExecActive(addr1, execaddr, 1)
	require.Equal(t, types.ErrNoBalance, err)
	_, err = accCoin.ExecTransferFrozen(addr1, addr1, execaddr, 1)
	require.Equal(t, types.ErrSendSameToRecv, err)
}

func TestGenesisInit(t *testing.T) {
	accCoin, _ := GenerAccDb()
	accCoin.GenerAccData()
	receipt, err := accCoin.GenesisInit(addr1, 100*1e8)
	require.NoError(t, err)
	require.Equal(t, int32(types.TyLogGenesisTransfer), receipt.Logs[0].Ty)
	require.Equal(t, int64(1100*1e8), accCoin.LoadAccount(addr1).Balance)

	_, err = accCoin.GenesisInit(addr1, 0)
	require.Equal(t, types.ErrAmount, err)
}

func TestSafeAdd(t *testing.T) {
	v, err := safeAdd(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)
	_, err = safeAdd(types.MaxTokenBalance, 1)
	assert.Equal(t, types.ErrAmount, err)
}
