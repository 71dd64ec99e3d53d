// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"strings"
)

//Move 出拳
type Move int32

// 出拳的取值, 0 表示还没有出拳
const (
	None     Move = 0
	Rock     Move = 1
	Paper    Move = 2
	Scissors Move = 3
)

//Moves 所有合法的出拳
var Moves = []Move{Rock, Paper, Scissors}

//Valid 是否为合法的出拳
func (m Move) Valid() bool {
	return m == Rock || m == Paper || m == Scissors
}

func (m Move) String() string {
	switch m {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	}
	return "none"
}

//ParseMove 解析出拳, 支持名字或者数字
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rock", "r", "1":
		return Rock, nil
	case "paper", "p", "2":
		return Paper, nil
	case "scissors", "scissor", "s", "3":
		return Scissors, nil
	}
	return None, ErrInvalidMove
}

//Outcome 一局的结果
type Outcome int32

// 游戏结果
const (
	OutcomeNone Outcome = 0
	Player1Wins Outcome = 1
	Player2Wins Outcome = 2
	Draw        Outcome = 3
)

func (o Outcome) String() string {
	switch o {
	case Player1Wins:
		return "player1"
	case Player2Wins:
		return "player2"
	case Draw:
		return "draw"
	}
	return "none"
}

//GameState 游戏所处的阶段
type GameState int32

// Empty -> Player1Committed -> BothCommitted -> Empty
const (
	Empty            GameState = 0
	Player1Committed GameState = 1
	BothCommitted    GameState = 2
)

func (s GameState) String() string {
	switch s {
	case Player1Committed:
		return "player1Committed"
	case BothCommitted:
		return "bothCommitted"
	}
	return "empty"
}

//Session 当前这一局的数据
type Session struct {
	Player1               string `json:"player1"`
	Player2               string `json:"player2"`
	Player1Commitment     []byte `json:"player1Commitment,omitempty"`
	Player1RevealedSecret []byte `json:"player1RevealedSecret,omitempty"`
	Player1Choice         Move   `json:"player1Choice"`
	Player2Choice         Move   `json:"player2Choice"`
}

//State 根据已经记录的数据推导阶段
func (s *Session) State() GameState {
	if s == nil || s.Player1 == "" {
		return Empty
	}
	if s.Player2 == "" {
		return Player1Committed
	}
	return BothCommitted
}

//IsEmpty 没有进行中的游戏
func (s *Session) IsEmpty() bool {
	return s.State() == Empty
}

//Reset 清空所有字段
func (s *Session) Reset() {
	*s = Session{}
}

//Clone 深拷贝
func (s *Session) Clone() *Session {
	if s == nil {
		return &Session{}
	}
	c := *s
	c.Player1Commitment = cloneBytes(s.Player1Commitment)
	c.Player1RevealedSecret = cloneBytes(s.Player1RevealedSecret)
	return &c
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

//GameConfig 持久化的游戏配置
type GameConfig struct {
	Stake    int64  `json:"stake"`
	HashType string `json:"hashType"`
}

//RoundRecord 已经结束的一局
type RoundRecord struct {
	RoundID       string  `json:"roundId"`
	Index         int64   `json:"index"`
	Stake         int64   `json:"stake"`
	Player1       string  `json:"player1"`
	Player2       string  `json:"player2"`
	Player1Choice Move    `json:"player1Choice"`
	Player2Choice Move    `json:"player2Choice"`
	Secret        []byte  `json:"secret"`
	Outcome       Outcome `json:"outcome"`
	Winner        string  `json:"winner,omitempty"`
	Time          int64   `json:"time"`
}

//ReceiptRps 游戏日志
type ReceiptRps struct {
	Addr      string       `json:"addr"`
	PrevState GameState    `json:"prevState"`
	State     GameState    `json:"state"`
	Player1   string       `json:"player1"`
	Player2   string       `json:"player2"`
	Stake     int64        `json:"stake"`
	Round     *RoundRecord `json:"round,omitempty"`
}

//Stats 统计数据
type Stats struct {
	Rounds      int64 `json:"rounds"`
	Wins        int64 `json:"wins"`
	Losses      int64 `json:"losses"`
	Draws       int64 `json:"draws"`
	Player1Wins int64 `json:"player1Wins"`
	Player2Wins int64 `json:"player2Wins"`
}

//ReqRoundList 分页查询
type ReqRoundList struct {
	Addr      string `json:"addr"`
	Index     int64  `json:"index"`
	Count     int32  `json:"count"`
	Direction int32  `json:"direction"`
}

//ReplyRoundList 查询结果
type ReplyRoundList struct {
	Rounds []*RoundRecord `json:"rounds"`
}
