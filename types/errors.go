// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

// 基础错误，各个模块共用
var (
	ErrNotFound         = errors.New("ErrNotFound")
	ErrInvalidParam     = errors.New("ErrInvalidParam")
	ErrAmount           = errors.New("ErrAmount")
	ErrNoBalance        = errors.New("ErrNoBalance")
	ErrSendSameToRecv   = errors.New("ErrSendSameToRecv")
	ErrInvalidAddress   = errors.New("ErrInvalidAddress")
	ErrExecNameNotAllow = errors.New("ErrExecNameNotAllow")
	ErrDecode           = errors.New("ErrDecode")
)
