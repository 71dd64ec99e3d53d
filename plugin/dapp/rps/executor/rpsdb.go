// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

//database opeartion for executor rps
import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/mathograham/RockPaperScissorsGame/common/address"
	dbm "github.com/mathograham/RockPaperScissorsGame/common/db"
	rt "github.com/mathograham/RockPaperScissorsGame/plugin/dapp/rps/types"
	"github.com/mathograham/RockPaperScissorsGame/types"
	"github.com/pkg/errors"
)

/*
  状态数据(mavl- 前缀), 和资金在同一个事务中修改:
     当前对局:   mavl-rps-session
     游戏配置:   mavl-rps-config
     对局序号:   mavl-rps-seq
     统计:       mavl-rps-count, mavl-rps-count:addr

  索引数据(LODB- 前缀), 只在结算时写入:
     所有对局:   LODB-rps-round:index
     地址索引:   LODB-rps-addr:addr:index
     value = RoundRecord, index=fmt.Sprintf("%018d", seq)
*/

func (g *Game) stateKey(name string) []byte {
	return []byte(fmt.Sprintf("mavl-%s-%s", g.execName, name))
}

func (g *Game) sessionKey() []byte {
	return g.stateKey("session")
}

func (g *Game) configKey() []byte {
	return g.stateKey("config")
}

func (g *Game) seqKey() []byte {
	return g.stateKey("seq")
}

func (g *Game) countKey(addr string) []byte {
	if addr == "" {
		return g.stateKey("count")
	}
	return g.stateKey("count:" + addr)
}

func (g *Game) roundPrefix(addr string) []byte {
	if addr == "" {
		return []byte(fmt.Sprintf("LODB-%s-round:", g.execName))
	}
	return []byte(fmt.Sprintf("LODB-%s-addr:%s:", g.execName, addr))
}

func (g *Game) roundKey(addr string, index int64) []byte {
	return append(g.roundPrefix(addr), []byte(fmt.Sprintf("%018d", index))...)
}

func (g *Game) loadSession() (*rt.Session, error) {
	value, err := g.db.Get(g.sessionKey())
	if err == dbm.ErrNotFoundInDb {
		return &rt.Session{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load session")
	}
	var s rt.Session
	if err = types.Decode(value, &s); err != nil {
		return nil, errors.Wrap(err, "decode session")
	}
	return &s, nil
}

//saveSession 空的对局直接删除
func (g *Game) saveSession(s *rt.Session) ([]*types.KeyValue, error) {
	kv := &types.KeyValue{Key: g.sessionKey()}
	if !s.IsEmpty() {
		kv.Value = types.Encode(s)
	}
	if err := g.db.Set(kv.Key, kv.Value); err != nil {
		return nil, err
	}
	return []*types.KeyValue{kv}, nil
}

func (g *Game) loadConfig() (*rt.GameConfig, error) {
	value, err := g.db.Get(g.configKey())
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	var cfg rt.GameConfig
	if err = types.Decode(value, &cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	return &cfg, nil
}

func (g *Game) saveConfig(cfg *rt.GameConfig) error {
	return g.db.Set(g.configKey(), types.Encode(cfg))
}

func (g *Game) receiptLog(ty int32, addr string, prev rt.GameState, s *rt.Session, round *rt.RoundRecord) *types.ReceiptLog {
	r := &rt.ReceiptRps{
		Addr:      addr,
		PrevState: prev,
		State:     s.State(),
		Player1:   s.Player1,
		Player2:   s.Player2,
		Stake:     g.stake,
		Round:     round,
	}
	if round != nil {
		r.Player1 = round.Player1
		r.Player2 = round.Player2
	}
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(r)}
}

func (g *Game) nextSeq() (int64, *types.KeyValue, error) {
	var seq int64
	value, err := g.db.Get(g.seqKey())
	if err == nil {
		seq, err = strconv.ParseInt(string(value), 10, 64)
		if err != nil {
			return 0, nil, errors.Wrap(err, "decode seq")
		}
	} else if err != dbm.ErrNotFoundInDb {
		return 0, nil, err
	}
	seq++
	kv := &types.KeyValue{Key: g.seqKey(), Value: []byte(strconv.FormatInt(seq, 10))}
	return seq, kv, g.db.Set(kv.Key, kv.Value)
}

//recordRound 写入对局记录、索引和统计
func (g *Game) recordRound(s *rt.Session, outcome rt.Outcome) (*rt.RoundRecord, []*types.KeyValue, error) {
	seq, seqkv, err := g.nextSeq()
	if err != nil {
		return nil, nil, err
	}
	round := &rt.RoundRecord{
		RoundID:       uuid.New().String(),
		Index:         seq,
		Stake:         g.stake,
		Player1:       s.Player1,
		Player2:       s.Player2,
		Player1Choice: s.Player1Choice,
		Player2Choice: s.Player2Choice,
		Secret:        s.Player1RevealedSecret,
		Outcome:       outcome,
		Time:          g.now(),
	}
	switch outcome {
	case rt.Player1Wins:
		round.Winner = s.Player1
	case rt.Player2Wins:
		round.Winner = s.Player2
	}
	value := types.Encode(round)
	kvs := []*types.KeyValue{
		seqkv,
		{Key: g.roundKey("", seq), Value: value},
		{Key: g.roundKey(s.Player1, seq), Value: value},
	}
	if s.Player2 != s.Player1 {
		kvs = append(kvs, &types.KeyValue{Key: g.roundKey(s.Player2, seq), Value: value})
	}
	for _, kv := range kvs[1:] {
		if err = g.db.Set(kv.Key, kv.Value); err != nil {
			return nil, nil, err
		}
	}
	countkv, err := g.updateCount(round)
	if err != nil {
		return nil, nil, err
	}
	return round, append(kvs, countkv...), nil
}

func (g *Game) loadStats(addr string) (*rt.Stats, error) {
	value, err := g.db.Get(g.countKey(addr))
	if err == dbm.ErrNotFoundInDb {
		return &rt.Stats{}, nil
	}
	if err != nil {
		return nil, err
	}
	var stats rt.Stats
	if err = types.Decode(value, &stats); err != nil {
		return nil, errors.Wrap(err, "decode stats")
	}
	return &stats, nil
}

func (g *Game) saveStats(addr string, stats *rt.Stats) (*types.KeyValue, error) {
	kv := &types.KeyValue{Key: g.countKey(addr), Value: types.Encode(stats)}
	return kv, g.db.Set(kv.Key, kv.Value)
}

func (g *Game) updateCount(round *rt.RoundRecord) (kvset []*types.KeyValue, err error) {
	update := func(addr string, fn func(*rt.Stats)) error {
		stats, err := g.loadStats(addr)
		if err != nil {
			return err
		}
		stats.Rounds++
		fn(stats)
		kv, err := g.saveStats(addr, stats)
		if err != nil {
			return err
		}
		kvset = append(kvset, kv)
		return nil
	}
	err = update("", func(stats *rt.Stats) {
		switch round.Outcome {
		case rt.Player1Wins:
			stats.Player1Wins++
		case rt.Player2Wins:
			stats.Player2Wins++
		case rt.Draw:
			stats.Draws++
		}
	})
	if err != nil {
		return nil, err
	}
	players := []string{round.Player1}
	if round.Player2 != round.Player1 {
		players = append(players, round.Player2)
	}
	for i, addr := range players {
		player1 := i == 0
		err = update(addr, func(stats *rt.Stats) {
			switch {
			case round.Outcome == rt.Draw:
				stats.Draws++
			case round.Winner == addr:
				stats.Wins++
				if player1 {
					stats.Player1Wins++
				} else {
					stats.Player2Wins++
				}
			default:
				stats.Losses++
			}
		})
		if err != nil {
			return nil, err
		}
	}
	return kvset, nil
}

//ListRounds 分页查询已经结束的对局, addr 为空时查询全部
//index 为 0 时从头(ASC)或者尾(DESC)开始, 否则从 index 之后开始
func (g *Game) ListRounds(req *rt.ReqRoundList) (*rt.ReplyRoundList, error) {
	if req == nil {
		return nil, types.ErrInvalidParam
	}
	addr, index, count, direction := req.Addr, req.Index, req.Count, req.Direction
	if addr != "" {
		if err := address.CheckAddress(addr); err != nil {
			return nil, types.ErrInvalidAddress
		}
	}
	if direction != types.ListDESC && direction != types.ListASC {
		return nil, types.ErrInvalidParam
	}
	if index < 0 {
		return nil, types.ErrInvalidParam
	}
	if count <= 0 {
		count = g.defaultCount
	}
	if count > g.maxCount {
		count = g.maxCount
	}
	var key []byte
	if index > 0 {
		key = g.roundKey(addr, index)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	reply := &rt.ReplyRoundList{}
	values, err := g.db.List(g.roundPrefix(addr), key, count, direction)
	if err == dbm.ErrNotFoundInDb {
		return reply, nil
	}
	if err != nil {
		return nil, err
	}
	for _, value := range values {
		var round rt.RoundRecord
		if err = types.Decode(value, &round); err != nil {
			return nil, errors.Wrap(err, "decode round")
		}
		reply.Rounds = append(reply.Rounds, &round)
	}
	return reply, nil
}

//QueryRound 根据序号查询对局
func (g *Game) QueryRound(index int64) (*rt.RoundRecord, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	value, err := g.db.Get(g.roundKey("", index))
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var round rt.RoundRecord
	if err = types.Decode(value, &round); err != nil {
		return nil, errors.Wrap(err, "decode round")
	}
	return &round, nil
}

//QueryStats 查询统计, addr 为空时返回全部对局的统计
func (g *Game) QueryStats(addr string) (*rt.Stats, error) {
	if addr != "" {
		if err := address.CheckAddress(addr); err != nil {
			return nil, types.ErrInvalidAddress
		}
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loadStats(addr)
}
