// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 实现了基础结构体、接口、常量等的定义
package types

import (
	"encoding/json"
)

// Account 账户
type Account struct {
	Currency int32  `json:"currency,omitempty"`
	Balance  int64  `json:"balance"`
	Frozen   int64  `json:"frozen,omitempty"`
	Addr     string `json:"addr"`
}

// GetBalance 获取余额
func (m *Account) GetBalance() int64 {
	if m != nil {
		return m.Balance
	}
	return 0
}

// GetFrozen 获取冻结金额
func (m *Account) GetFrozen() int64 {
	if m != nil {
		return m.Frozen
	}
	return 0
}

// GetAddr 获取地址
func (m *Account) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

// KeyValue 状态数据库中的一条记录，Value 为 nil 表示删除
type KeyValue struct {
	Key   []byte `json:"key"`
	Value []byte `json:"value"`
}

// GetKey 获取key
func (m *KeyValue) GetKey() []byte {
	if m != nil {
		return m.Key
	}
	return nil
}

// GetValue 获取value
func (m *KeyValue) GetValue() []byte {
	if m != nil {
		return m.Value
	}
	return nil
}

// ReceiptLog 收据日志
type ReceiptLog struct {
	Ty  int32  `json:"ty"`
	Log []byte `json:"log"`
}

// Receipt 执行收据，包含状态变更和日志
type Receipt struct {
	Ty   int32         `json:"ty"`
	KV   []*KeyValue   `json:"kv"`
	Logs []*ReceiptLog `json:"logs"`
}

// GetTy 获取执行结果
func (m *Receipt) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

// GetKV 获取状态变更
func (m *Receipt) GetKV() []*KeyValue {
	if m != nil {
		return m.KV
	}
	return nil
}

// GetLogs 获取日志
func (m *Receipt) GetLogs() []*ReceiptLog {
	if m != nil {
		return m.Logs
	}
	return nil
}

// ReceiptAccountTransfer 账户余额变更前后的记录
type ReceiptAccountTransfer struct {
	Prev    *Account `json:"prev"`
	Current *Account `json:"current"`
}

// ReceiptExecAccountTransfer 执行器账户余额变更前后的记录
type ReceiptExecAccountTransfer struct {
	ExecAddr string   `json:"execAddr"`
	Prev     *Account `json:"prev"`
	Current  *Account `json:"current"`
}

// Encode 序列化
func Encode(data interface{}) []byte {
	b, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

// Decode 反序列化
func Decode(data []byte, msg interface{}) error {
	if err := json.Unmarshal(data, msg); err != nil {
		return ErrDecode
	}
	return nil
}

// CheckAmount  检测转账金额
func CheckAmount(amount int64) bool {
	if amount <= 0 || amount >= MaxCoin {
		return false
	}
	return true
}

// MergeReceipt 合并两个收据，nil 的一方直接忽略
func MergeReceipt(receipt1, receipt2 *Receipt) *Receipt {
	if receipt2 == nil {
		return receipt1
	}
	if receipt1 == nil {
		return receipt2
	}
	receipt1.Logs = append(receipt1.Logs, receipt2.Logs...)
	receipt1.KV = append(receipt1.KV, receipt2.KV...)
	return receipt1
}
