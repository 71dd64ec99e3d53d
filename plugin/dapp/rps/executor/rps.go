// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"strings"
	"sync"
	"time"

	log "github.com/inconshreveable/log15"
	"github.com/mathograham/RockPaperScissorsGame/account"
	"github.com/mathograham/RockPaperScissorsGame/common/address"
	dbm "github.com/mathograham/RockPaperScissorsGame/common/db"
	rt "github.com/mathograham/RockPaperScissorsGame/plugin/dapp/rps/types"
	"github.com/mathograham/RockPaperScissorsGame/types"
	"github.com/pkg/errors"
	metrics "github.com/rcrowley/go-metrics"
)

var rlog = log.New("module", "execs.rps")

//Game 一个猜拳游戏的实例
type Game struct {
	mu           sync.Mutex
	stake        int64
	hashType     string
	execName     string
	execaddr     string
	db           *dbm.TxDB
	coins        *account.DB
	ledger       Ledger
	session      *rt.Session
	now          func() int64
	registry     metrics.Registry
	metrics      *gameMetrics
	defaultCount int32
	maxCount     int32
}

//Option 创建游戏时的可选参数
type Option func(*Game)

//WithHashType 承诺使用的哈希算法
func WithHashType(hashType string) Option {
	return func(g *Game) {
		g.hashType = hashType
	}
}

//WithExecName 托管账户对应的执行器名
func WithExecName(name string) Option {
	return func(g *Game) {
		g.execName = name
	}
}

//WithMetrics 使用指定的 metrics registry
func WithMetrics(r metrics.Registry) Option {
	return func(g *Game) {
		g.registry = r
	}
}

//WithClock 对局记录使用的时间
func WithClock(now func() int64) Option {
	return func(g *Game) {
		g.now = now
	}
}

//WithListCount 分页查询的默认条数和最大条数
func WithListCount(defaultCount, maxCount int32) Option {
	return func(g *Game) {
		if defaultCount > 0 {
			g.defaultCount = defaultCount
		}
		if maxCount > 0 {
			g.maxCount = maxCount
		}
	}
}

//NewGame 创建游戏, 如果 store 中已经有未结束的对局则继续这一局
func NewGame(stake int64, store dbm.DB, opts ...Option) (*Game, error) {
	if !types.CheckAmount(stake) {
		return nil, types.ErrAmount
	}
	g := &Game{
		stake:        stake,
		hashType:     rt.HashSha256,
		execName:     rt.RpsX,
		now:          func() int64 { return time.Now().Unix() },
		defaultCount: rt.DefaultCount,
		maxCount:     rt.MaxCount,
	}
	for _, opt := range opts {
		opt(g)
	}
	if _, err := getHasher(g.hashType); err != nil {
		return nil, err
	}
	if g.execName == "" || len(g.execName) > address.MaxExecNameLength || strings.ContainsRune(g.execName, '-') {
		return nil, types.ErrExecNameNotAllow
	}
	if g.registry == nil {
		g.registry = metrics.DefaultRegistry
	}
	g.metrics = newGameMetrics(g.registry)
	g.execaddr = address.ExecAddress(g.execName)
	g.db = dbm.NewTxDB(store)
	g.coins = account.NewCoinsAccount()
	g.coins.SetDB(g.db)
	g.ledger = newAccountLedger(g.coins, g.execaddr)

	session, err := g.loadSession()
	if err != nil {
		return nil, err
	}
	cfg, err := g.loadConfig()
	if err != nil && err != types.ErrNotFound {
		return nil, err
	}
	if cfg != nil && !session.IsEmpty() {
		if cfg.Stake != stake {
			rlog.Error("NewGame", "stored stake", cfg.Stake, "stake", stake)
			return nil, rt.ErrStakeMismatch
		}
		if cfg.HashType != g.hashType {
			rlog.Error("NewGame", "stored hashType", cfg.HashType, "hashType", g.hashType)
			return nil, rt.ErrHashTypeMismatch
		}
	}
	if cfg == nil || cfg.Stake != stake || cfg.HashType != g.hashType {
		err = g.saveConfig(&rt.GameConfig{Stake: stake, HashType: g.hashType})
		if err != nil {
			return nil, err
		}
	}
	g.session = session
	rlog.Debug("NewGame", "stake", stake, "hashType", g.hashType, "execaddr", g.execaddr, "state", session.State())
	return g, nil
}

//execTx 在一个事务中修改会话的拷贝, 成功提交后才替换内存中的会话
func (g *Game) execTx(fn func(s *rt.Session) (*types.Receipt, error)) (*types.Receipt, error) {
	next := g.session.Clone()
	g.db.Begin()
	receipt, err := fn(next)
	if err == nil {
		var kv []*types.KeyValue
		kv, err = g.saveSession(next)
		if err == nil {
			receipt = types.MergeReceipt(receipt, &types.Receipt{Ty: types.ExecOk, KV: kv})
		}
	}
	if err != nil {
		g.db.Rollback()
		return nil, err
	}
	if err = g.db.Commit(); err != nil {
		g.db.Rollback()
		return nil, errors.Wrap(err, "commit")
	}
	g.session = next
	return receipt, nil
}

//checkPlayer 合约地址本身不能参与游戏和充值
func (g *Game) checkPlayer(addr string) error {
	if addr == g.execaddr {
		return types.ErrInvalidAddress
	}
	if err := address.CheckAddress(addr); err != nil {
		return types.ErrInvalidAddress
	}
	return nil
}

func (g *Game) reject(action string, caller string, err error) error {
	g.metrics.rejected.Inc(1)
	rlog.Debug(action+" rejected", "caller", caller, "err", err)
	return err
}

//Start 发起者提交承诺并锁定赌注
func (g *Game) Start(commitment []byte, value int64, caller string) (*types.Receipt, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if value != g.stake {
		return nil, g.reject("Start", caller, rt.ErrWrongStake)
	}
	if !g.session.IsEmpty() {
		return nil, g.reject("Start", caller, rt.ErrGameInProgress)
	}
	if err := g.checkPlayer(caller); err != nil {
		return nil, g.reject("Start", caller, err)
	}
	size, _ := HashSize(g.hashType)
	if len(commitment) != size {
		return nil, g.reject("Start", caller, rt.ErrInvalidCommitment)
	}
	receipt, err := g.execTx(func(s *rt.Session) (*types.Receipt, error) {
		r, err := g.ledger.Escrow(caller, g.stake)
		if err != nil {
			return nil, errors.Wrap(err, "escrow player1 stake")
		}
		prev := s.State()
		s.Player1 = caller
		s.Player1Commitment = append([]byte(nil), commitment...)
		r.Logs = append(r.Logs, g.receiptLog(rt.TyLogRpsStart, caller, prev, s, nil))
		return r, nil
	})
	if err != nil {
		return nil, g.reject("Start", caller, err)
	}
	g.metrics.started.Inc(1)
	rlog.Info("Start", "player1", caller, "stake", g.stake)
	return receipt, nil
}

//Join 参与者直接给出出拳并锁定赌注
func (g *Game) Join(choice rt.Move, value int64, caller string) (*types.Receipt, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if value != g.stake {
		return nil, g.reject("Join", caller, rt.ErrWrongStake)
	}
	if g.session.State() != rt.Player1Committed {
		return nil, g.reject("Join", caller, rt.ErrGameLocked)
	}
	if err := g.checkPlayer(caller); err != nil {
		return nil, g.reject("Join", caller, err)
	}
	if !choice.Valid() {
		return nil, g.reject("Join", caller, rt.ErrInvalidMove)
	}
	receipt, err := g.execTx(func(s *rt.Session) (*types.Receipt, error) {
		r, err := g.ledger.Escrow(caller, g.stake)
		if err != nil {
			return nil, errors.Wrap(err, "escrow player2 stake")
		}
		prev := s.State()
		s.Player2 = caller
		s.Player2Choice = choice
		r.Logs = append(r.Logs, g.receiptLog(rt.TyLogRpsJoin, caller, prev, s, nil))
		return r, nil
	})
	if err != nil {
		return nil, g.reject("Join", caller, err)
	}
	g.metrics.joined.Inc(1)
	rlog.Info("Join", "player2", caller, "choice", choice)
	return receipt, nil
}

//Reveal 发起者公开 secret, 结算后清空本局
func (g *Game) Reveal(secret []byte, caller string) (rt.Outcome, *types.Receipt, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	start := time.Now()

	if g.session.Player1 == "" || caller != g.session.Player1 {
		return rt.OutcomeNone, nil, g.reject("Reveal", caller, rt.ErrUnauthorized)
	}
	if g.session.Player2 == "" {
		return rt.OutcomeNone, nil, g.reject("Reveal", caller, rt.ErrAwaitingOpponent)
	}
	choice1, err := Verify(g.hashType, g.session.Player1Commitment, secret)
	if err != nil {
		return rt.OutcomeNone, nil, g.reject("Reveal", caller, err)
	}
	outcome := Resolve(choice1, g.session.Player2Choice)
	receipt, err := g.execTx(func(s *rt.Session) (*types.Receipt, error) {
		s.Player1RevealedSecret = append([]byte(nil), secret...)
		s.Player1Choice = choice1
		r, err := g.payout(s, outcome)
		if err != nil {
			return nil, err
		}
		round, kv, err := g.recordRound(s, outcome)
		if err != nil {
			return nil, err
		}
		r.KV = append(r.KV, kv...)
		prev := s.State()
		s.Reset()
		r.Logs = append(r.Logs, g.receiptLog(rt.TyLogRpsReveal, caller, prev, s, round))
		return r, nil
	})
	if err != nil {
		return rt.OutcomeNone, nil, g.reject("Reveal", caller, err)
	}
	g.metrics.resolved.Inc(1)
	g.metrics.paid.Mark(2 * g.stake)
	if outcome == rt.Draw {
		g.metrics.draws.Inc(1)
	}
	g.metrics.reveal.UpdateSince(start)
	rlog.Info("Reveal", "player1", caller, "outcome", outcome)
	return outcome, receipt, nil
}

//payout 赢家拿走 2 * 赌注, 平局各自取回
func (g *Game) payout(s *rt.Session, outcome rt.Outcome) (*types.Receipt, error) {
	type pay struct{ from, to string }
	var pays []pay
	switch outcome {
	case rt.Player1Wins:
		pays = []pay{{s.Player2, s.Player1}, {s.Player1, s.Player1}}
	case rt.Player2Wins:
		pays = []pay{{s.Player1, s.Player2}, {s.Player2, s.Player2}}
	case rt.Draw:
		pays = []pay{{s.Player1, s.Player1}, {s.Player2, s.Player2}}
	default:
		return nil, rt.ErrInvalidMove
	}
	var receipt *types.Receipt
	for _, p := range pays {
		r, err := g.ledger.Payout(p.from, p.to, g.stake)
		if err != nil {
			return nil, errors.Wrap(err, "payout")
		}
		receipt = types.MergeReceipt(receipt, r)
	}
	return receipt, nil
}

//Deposit 本地水龙头, 给地址增加余额
func (g *Game) Deposit(addr string, amount int64) (*types.Receipt, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.checkPlayer(addr); err != nil {
		return nil, err
	}
	g.db.Begin()
	receipt, err := g.coins.GenesisInit(addr, amount)
	if err != nil {
		g.db.Rollback()
		return nil, err
	}
	if err = g.db.Commit(); err != nil {
		g.db.Rollback()
		return nil, err
	}
	return receipt, nil
}

//Balance 地址的余额
func (g *Game) Balance(addr string) *types.Account {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.coins.LoadAccount(addr)
}

//StakeAmount 每局的赌注
func (g *Game) StakeAmount() int64 {
	return g.stake
}

//HashType 承诺的哈希算法
func (g *Game) HashType() string {
	return g.hashType
}

//ExecAddress 托管赌注的合约地址
func (g *Game) ExecAddress() string {
	return g.execaddr
}

//Player1 发起者
func (g *Game) Player1() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.Player1
}

//Player2 参与者
func (g *Game) Player2() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.Player2
}

//Player1Commitment 发起者的承诺
func (g *Game) Player1Commitment() []byte {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]byte(nil), g.session.Player1Commitment...)
}

//Player1Secret 发起者公开的 secret
func (g *Game) Player1Secret() []byte {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]byte(nil), g.session.Player1RevealedSecret...)
}

//Player1Choice 发起者的出拳, 公开前为 None
func (g *Game) Player1Choice() rt.Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.Player1Choice
}

//Player2Choice 参与者的出拳
func (g *Game) Player2Choice() rt.Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.Player2Choice
}

//State 当前阶段
func (g *Game) State() rt.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.State()
}

//Session 当前对局的拷贝
func (g *Game) Session() *rt.Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.Clone()
}

//HeldBalance 合约托管的金额
func (g *Game) HeldBalance() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ledger.Balance()
}
