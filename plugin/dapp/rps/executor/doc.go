// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package executor 石头，剪刀，布

玩法：

1. 生成 secret(至少 16 字节)，承诺 commitment = hash(secret + 出拳)
2. 发起： commitment，锁定赌注 (start)
3. 参与： 直接给出出拳，锁定同样的赌注 (join)
4. 开奖： 发起者公开 secret，合约根据承诺推导出发起者的出拳并结算 (reveal)
   赢家拿走 2 * 赌注，平局各自取回赌注，结算后清空本局，可以开始下一局

status: Empty 0 -> Player1Committed 1 -> BothCommitted 2 -> Empty 0

一个执行器实例只管理一局游戏，所有操作串行执行
每个操作的资金变动和状态变动在同一个事务中提交，失败时全部回滚

对外查询接口
1. 当前这一局的状态 (Session)
2. 已经结束的对局，全部或者按照地址分页查询 (ListRounds)
3. 统计数据，全部或者按照地址 (QueryStats)
*/
package executor
