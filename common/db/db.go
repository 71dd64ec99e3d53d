// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db 存储后端的接口和实现
package db

import (
	"bytes"
	"errors"
	"fmt"
)

//ErrNotFoundInDb 数据库中没有找到
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

//KV 读写接口，value 为 nil 表示删除
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) (err error)
}

//IteratorDB 迭代器
type IteratorDB interface {
	Iterator(start []byte, end []byte, reserver bool) Iterator
}

//DB 数据库
type DB interface {
	KV
	IteratorDB
	Delete([]byte) error
	NewBatch(sync bool) Batch
	Close()
}

//Batch 批量写
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

//Iterator 迭代器，end 为 nil 时按 start 前缀迭代，否则迭代 [start, end)
type Iterator interface {
	Rewind() bool
	Next() bool
	Valid() bool
	Seek(key []byte) bool
	Key() []byte
	Value() []byte
	ValueCopy() []byte
	Error() error
	Close()
}

type itBase struct {
	start   []byte
	end     []byte
	reverse bool
}

func (it *itBase) checkKey(key []byte) bool {
	if it.end == nil {
		return bytes.HasPrefix(key, it.start)
	}
	return bytes.Compare(key, it.start) >= 0 && bytes.Compare(key, it.end) < 0
}

//upper 迭代范围的上界（不包含）, nil 表示无上界
func (it *itBase) upper() []byte {
	if it.end != nil {
		return it.end
	}
	return prefixLimit(it.start)
}

func prefixLimit(prefix []byte) []byte {
	var limit []byte
	for i := len(prefix) - 1; i >= 0; i-- {
		c := prefix[i]
		if c < 0xff {
			limit = make([]byte, i+1)
			copy(limit, prefix)
			limit[i] = c + 1
			break
		}
	}
	return limit
}

func cloneByte(v []byte) []byte {
	if v == nil {
		return nil
	}
	value := make([]byte, len(v))
	copy(value, v)
	return value
}

//const
const (
	LevelDBBackendStr    = "leveldb" // legacy, defaults to goleveldb.
	GoLevelDBBackendStr  = "goleveldb"
	MemDBBackendStr      = "memdb"
	GoBadgerDBBackendStr = "gobadgerdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

//NewDB new
func NewDB(name string, backend string, dir string, cache int32) (DB, error) {
	dbCreator, ok := backends[backend]
	if !ok {
		return nil, fmt.Errorf("unknown db backend %s", backend)
	}
	db, err := dbCreator(name, dir, int(cache))
	if err != nil {
		return nil, fmt.Errorf("initializing %s db: %v", backend, err)
	}
	return db, nil
}
