// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTxDB(t *testing.T) (*TxDB, DB) {
	mdb, err := NewGoMemDB("txdb", "", 0)
	require.NoError(t, err)
	return NewTxDB(mdb), mdb
}

func TestTxDBCommit(t *testing.T) {
	tx, mdb := newTestTxDB(t)
	require.NoError(t, tx.Set([]byte("a"), []byte("1")))
	require.NoError(t, tx.Set([]byte("c"), []byte("3")))

	tx.Begin()
	assert.True(t, tx.InTx())
	require.NoError(t, tx.Set([]byte("b"), []byte("2")))
	require.NoError(t, tx.Set([]byte("a"), nil))
	require.NoError(t, tx.Set([]byte("b"), []byte("22")))

	//事务中读到未提交的数据
	v, err := tx.Get([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, "22", string(v))
	_, err = tx.Get([]byte("a"))
	assert.Equal(t, ErrNotFoundInDb, err)
	v, err = tx.Get([]byte("c"))
	require.NoError(t, err)
	assert.Equal(t, "3", string(v))

	//后端还没有变化
	_, err = mdb.Get([]byte("b"))
	assert.Equal(t, ErrNotFoundInDb, err)
	assert.Equal(t, []string{"a", "b"}, tx.GetSetKeys())

	require.NoError(t, tx.Commit())
	assert.False(t, tx.InTx())
	v, err = mdb.Get([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, "22", string(v))
	_, err = mdb.Get([]byte("a"))
	assert.Equal(t, ErrNotFoundInDb, err)
}

func TestTxDBRollback(t *testing.T) {
	tx, mdb := newTestTxDB(t)
	require.NoError(t, tx.Set([]byte("a"), []byte("1")))

	tx.Begin()
	require.NoError(t, tx.Set([]byte("a"), []byte("2")))
	require.NoError(t, tx.Set([]byte("b"), []byte("2")))
	tx.Rollback()

	v, err := tx.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, "1", string(v))
	_, err = mdb.Get([]byte("b"))
	assert.Equal(t, ErrNotFoundInDb, err)
	assert.Equal(t, ErrNotInTx, tx.Commit())
}

func TestTxDBList(t *testing.T) {
	tx, _ := newTestTxDB(t)
	_, err := tx.List([]byte("r:"), nil, 10, ListASC)
	assert.Equal(t, ErrNotFoundInDb, err)

	tx.Begin()
	require.NoError(t, tx.Set([]byte("r:1"), []byte("1")))
	require.NoError(t, tx.Set([]byte("r:2"), []byte("2")))
	//未提交的数据不参与 list
	_, err = tx.List([]byte("r:"), nil, 10, ListASC)
	assert.Equal(t, ErrNotFoundInDb, err)
	require.NoError(t, tx.Commit())

	values, err := tx.List([]byte("r:"), nil, 10, ListDESC)
	require.NoError(t, err)
	assert.Equal(t, bs("2", "1"), values)
}
