// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"errors"
	"sort"
)

//ErrNotInTx 不在事务中
var ErrNotInTx = errors.New("ErrNotInTx")

//TxDB 在后端数据库之上加一层事务缓存
//事务中的 set 只写入 txcache, Commit 时通过一个 batch 落盘, Rollback 时丢弃
//不在事务中时直接读写后端数据库
type TxDB struct {
	db      DB
	txcache map[string][]byte
	keys    []string
	intx    bool
}

//NewTxDB 创建一个新的TxDB
func NewTxDB(db DB) *TxDB {
	return &TxDB{db: db}
}

func (t *TxDB) resetTx() {
	t.intx = false
	t.txcache = nil
	t.keys = nil
}

//Begin 开始一个事务
func (t *TxDB) Begin() {
	t.intx = true
	t.keys = nil
	t.txcache = make(map[string][]byte)
}

//InTx 是否在事务中
func (t *TxDB) InTx() bool {
	return t.intx
}

//Commit 提交一个事务
func (t *TxDB) Commit() error {
	if !t.intx {
		return ErrNotInTx
	}
	batch := t.db.NewBatch(true)
	for _, k := range t.GetSetKeys() {
		v := t.txcache[k]
		if v == nil {
			batch.Delete([]byte(k))
		} else {
			batch.Set([]byte(k), v)
		}
	}
	err := batch.Write()
	if err != nil {
		return err
	}
	t.resetTx()
	return nil
}

//Rollback 回滚修改
func (t *TxDB) Rollback() {
	t.resetTx()
}

//Get 获取key, 事务中优先读取未提交的修改
func (t *TxDB) Get(key []byte) ([]byte, error) {
	if t.intx {
		if value, ok := t.txcache[string(key)]; ok {
			if value == nil {
				return nil, ErrNotFoundInDb
			}
			return cloneByte(value), nil
		}
	}
	return t.db.Get(key)
}

//Set 设置key, value 为 nil 表示删除
func (t *TxDB) Set(key []byte, value []byte) error {
	if !t.intx {
		return t.db.Set(key, value)
	}
	skey := string(key)
	if _, ok := t.txcache[skey]; !ok {
		t.keys = append(t.keys, skey)
	}
	t.txcache[skey] = cloneByte(value)
	return nil
}

//GetSetKeys 当前事务中修改过的key, 已排序
func (t *TxDB) GetSetKeys() (keys []string) {
	keys = append(keys, t.keys...)
	sort.Strings(keys)
	return keys
}

//List 从已提交的数据中查询列表
func (t *TxDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	values := NewListHelper(t.db).List(prefix, key, count, direction)
	if values == nil {
		return nil, ErrNotFoundInDb
	}
	return values, nil
}

//DB 后端数据库
func (t *TxDB) DB() DB {
	return t.db
}
