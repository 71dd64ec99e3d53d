// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubkeyToAddress(t *testing.T) {
	addr := PubKeyToAddress([]byte("player one"))
	t.Log(addr)
	require.NoError(t, CheckAddress(addr.String()))

	a, err := NewAddrFromString(addr.String())
	require.NoError(t, err)
	assert.Equal(t, addr.Hash160, a.Hash160)
	assert.Equal(t, addr.String(), a.String())
}

func TestCheckAddress(t *testing.T) {
	good := PubKeyToAddress([]byte("player two")).String()
	require.NoError(t, CheckAddress(good))

	assert.Equal(t, ErrDecodeBase58, CheckAddress(""))
	assert.Equal(t, ErrDecodeBase58, CheckAddress("0OIl"))
	assert.Error(t, CheckAddress(good[:len(good)-1]))

	//篡改一个字节
	dec, err := NewAddrFromString(good)
	require.NoError(t, err)
	dec.Hash160[0] ^= 0xff
	dec.Enc58str = ""
	bad := dec.String()
	assert.Equal(t, ErrCheckSum, CheckAddress(bad))
	//第二次走缓存
	assert.Equal(t, ErrCheckSum, CheckAddress(bad))
}

func TestExecAddress(t *testing.T) {
	addr := ExecAddress("rps")
	require.NoError(t, CheckAddress(addr))
	assert.Equal(t, GetExecAddress("rps").String(), addr)
	assert.Equal(t, addr, ExecAddress("rps"))
	assert.NotEqual(t, addr, ExecAddress("coins"))
}

func BenchmarkExecAddress(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ExecAddress("rps")
	}
}
