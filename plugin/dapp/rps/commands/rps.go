// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/mathograham/RockPaperScissorsGame/common"
	"github.com/mathograham/RockPaperScissorsGame/plugin/dapp/rps/executor"
	rt "github.com/mathograham/RockPaperScissorsGame/plugin/dapp/rps/types"
	"github.com/mathograham/RockPaperScissorsGame/types"
	"github.com/spf13/cobra"
)

//Env 命令使用的游戏实例, Close 在命令结束时调用
type Env struct {
	Game  *executor.Game
	Close func()
}

//EnvLoader 根据命令行参数打开游戏
type EnvLoader func(cmd *cobra.Command) (*Env, error)

//RpsCmd 猜拳游戏的命令
func RpsCmd(load EnvLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rps",
		Short: "rock paper scissors game management",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		RpsCommitCmd(load),
		RpsStartCmd(load),
		RpsJoinCmd(load),
		RpsRevealCmd(load),
		RpsSessionCmd(load),
		RpsRoundsCmd(load),
		RpsRoundCmd(load),
		RpsStatsCmd(load),
		RpsFaucetCmd(load),
		RpsBalanceCmd(load),
	)

	return cmd
}

//run 打开游戏执行 fn, 把结果按 json 格式输出, 出错时返回错误让进程以非 0 退出
func run(load EnvLoader, fn func(cmd *cobra.Command, g *executor.Game) (interface{}, error)) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if err != nil {
				cmd.SilenceUsage = true
				cmd.SilenceErrors = true
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
		}()
		env, err := load(cmd)
		if err != nil {
			return err
		}
		if env.Close != nil {
			defer env.Close()
		}
		result, err := fn(cmd, env.Game)
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(result, "", "    ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
}

//SessionResult 当前对局
type SessionResult struct {
	State             string `json:"state"`
	Stake             string `json:"stake"`
	Held              string `json:"held"`
	ExecAddr          string `json:"execAddr"`
	Player1           string `json:"player1,omitempty"`
	Player2           string `json:"player2,omitempty"`
	Player1Commitment string `json:"player1Commitment,omitempty"`
	Player2Choice     string `json:"player2Choice,omitempty"`
}

func sessionResult(g *executor.Game) *SessionResult {
	s := g.Session()
	r := &SessionResult{
		State:    s.State().String(),
		Stake:    FormatCoins(g.StakeAmount()),
		Held:     FormatCoins(g.HeldBalance()),
		ExecAddr: g.ExecAddress(),
		Player1:  s.Player1,
		Player2:  s.Player2,
	}
	if len(s.Player1Commitment) > 0 {
		r.Player1Commitment = common.ToHex(s.Player1Commitment)
	}
	if s.Player2Choice.Valid() {
		r.Player2Choice = s.Player2Choice.String()
	}
	return r
}

//RoundResult 一局的结果
type RoundResult struct {
	Index         int64  `json:"index"`
	RoundID       string `json:"roundId"`
	Stake         string `json:"stake"`
	Player1       string `json:"player1"`
	Player2       string `json:"player2"`
	Player1Choice string `json:"player1Choice"`
	Player2Choice string `json:"player2Choice"`
	Secret        string `json:"secret"`
	Outcome       string `json:"outcome"`
	Winner        string `json:"winner,omitempty"`
	Time          int64  `json:"time"`
}

func roundResult(r *rt.RoundRecord) *RoundResult {
	return &RoundResult{
		Index:         r.Index,
		RoundID:       r.RoundID,
		Stake:         FormatCoins(r.Stake),
		Player1:       r.Player1,
		Player2:       r.Player2,
		Player1Choice: r.Player1Choice.String(),
		Player2Choice: r.Player2Choice.String(),
		Secret:        common.ToHex(r.Secret),
		Outcome:       r.Outcome.String(),
		Winner:        r.Winner,
		Time:          r.Time,
	}
}

//CommitResult 本地生成的承诺, secret 需要自己保存到 reveal
type CommitResult struct {
	Move       string `json:"move"`
	HashType   string `json:"hashType"`
	Secret     string `json:"secret"`
	Commitment string `json:"commitment"`
}

//RpsCommitCmd 生成 secret 和承诺
func RpsCommitCmd(load EnvLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Generate secret and commitment for a move",
		RunE:  run(load, rpsCommit),
	}
	addRpsCommitFlags(cmd)
	return cmd
}

func addRpsCommitFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("move", "m", "", "move: rock, paper or scissors")
	cmd.MarkFlagRequired("move")

	cmd.Flags().StringP("secret", "s", "", "secret in hex, random if empty")
}

func rpsCommit(cmd *cobra.Command, g *executor.Game) (interface{}, error) {
	moveStr, _ := cmd.Flags().GetString("move")
	secretHex, _ := cmd.Flags().GetString("secret")

	move, err := rt.ParseMove(moveStr)
	if err != nil {
		return nil, err
	}
	var secret []byte
	if secretHex == "" {
		secret = executor.NewSecret()
	} else if secret, err = common.FromHex(secretHex); err != nil {
		return nil, err
	}
	commitment, err := executor.NewCommitment(move, secret, g.HashType())
	if err != nil {
		return nil, err
	}
	return &CommitResult{
		Move:       move.String(),
		HashType:   g.HashType(),
		Secret:     common.ToHex(secret),
		Commitment: common.ToHex(commitment),
	}, nil
}

//RpsStartCmd 发起一局
func RpsStartCmd(load EnvLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new round with a commitment",
		RunE:  run(load, rpsStart),
	}
	addRpsStartFlags(cmd)
	return cmd
}

func addRpsStartFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("addr", "f", "", "player1 address")
	cmd.MarkFlagRequired("addr")

	cmd.Flags().StringP("commitment", "c", "", "commitment in hex")
	cmd.MarkFlagRequired("commitment")

	cmd.Flags().StringP("amount", "a", "", "stake in coins")
	cmd.MarkFlagRequired("amount")
}

func rpsStart(cmd *cobra.Command, g *executor.Game) (interface{}, error) {
	addr, _ := cmd.Flags().GetString("addr")
	commitmentHex, _ := cmd.Flags().GetString("commitment")
	amountStr, _ := cmd.Flags().GetString("amount")

	commitment, err := common.FromHex(commitmentHex)
	if err != nil {
		return nil, err
	}
	amount, err := ParseCoins(amountStr)
	if err != nil {
		return nil, err
	}
	if _, err = g.Start(commitment, amount, addr); err != nil {
		return nil, err
	}
	return sessionResult(g), nil
}

//RpsJoinCmd 加入一局
func RpsJoinCmd(load EnvLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join the started round with a move",
		RunE:  run(load, rpsJoin),
	}
	addRpsJoinFlags(cmd)
	return cmd
}

func addRpsJoinFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("addr", "f", "", "player2 address")
	cmd.MarkFlagRequired("addr")

	cmd.Flags().StringP("move", "m", "", "move: rock, paper or scissors")
	cmd.MarkFlagRequired("move")

	cmd.Flags().StringP("amount", "a", "", "stake in coins")
	cmd.MarkFlagRequired("amount")
}

func rpsJoin(cmd *cobra.Command, g *executor.Game) (interface{}, error) {
	addr, _ := cmd.Flags().GetString("addr")
	moveStr, _ := cmd.Flags().GetString("move")
	amountStr, _ := cmd.Flags().GetString("amount")

	move, err := rt.ParseMove(moveStr)
	if err != nil {
		return nil, err
	}
	amount, err := ParseCoins(amountStr)
	if err != nil {
		return nil, err
	}
	if _, err = g.Join(move, amount, addr); err != nil {
		return nil, err
	}
	return sessionResult(g), nil
}

//RpsRevealCmd 公开 secret 并结算
func RpsRevealCmd(load EnvLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Reveal player1 secret and settle the round",
		RunE:  run(load, rpsReveal),
	}
	addRpsRevealFlags(cmd)
	return cmd
}

func addRpsRevealFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("addr", "f", "", "player1 address")
	cmd.MarkFlagRequired("addr")

	cmd.Flags().StringP("secret", "s", "", "secret in hex")
	cmd.MarkFlagRequired("secret")
}

func rpsReveal(cmd *cobra.Command, g *executor.Game) (interface{}, error) {
	addr, _ := cmd.Flags().GetString("addr")
	secretHex, _ := cmd.Flags().GetString("secret")

	secret, err := common.FromHex(secretHex)
	if err != nil {
		return nil, err
	}
	_, receipt, err := g.Reveal(secret, addr)
	if err != nil {
		return nil, err
	}
	for _, l := range receipt.Logs {
		if l.Ty != rt.TyLogRpsReveal {
			continue
		}
		var r rt.ReceiptRps
		if err = types.Decode(l.Log, &r); err != nil {
			return nil, err
		}
		if r.Round != nil {
			return roundResult(r.Round), nil
		}
	}
	return nil, types.ErrNotFound
}

//RpsSessionCmd 查看当前对局
func RpsSessionCmd(load EnvLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Show the current round",
		RunE: run(load, func(cmd *cobra.Command, g *executor.Game) (interface{}, error) {
			return sessionResult(g), nil
		}),
	}
}

//RpsRoundsCmd 分页查询已经结束的对局
func RpsRoundsCmd(load EnvLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rounds",
		Short: "List settled rounds",
		RunE:  run(load, rpsRounds),
	}
	addRpsRoundsFlags(cmd)
	return cmd
}

func addRpsRoundsFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("addr", "f", "", "player address, all rounds if empty")
	cmd.Flags().Int64P("index", "i", 0, "start after this round index")
	cmd.Flags().Int32P("count", "c", 0, "max rounds to list")
	cmd.Flags().Int32P("direction", "d", types.ListDESC, "0: desc, 1: asc")
}

func rpsRounds(cmd *cobra.Command, g *executor.Game) (interface{}, error) {
	addr, _ := cmd.Flags().GetString("addr")
	index, _ := cmd.Flags().GetInt64("index")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")

	req := &rt.ReqRoundList{
		Addr:      addr,
		Index:     index,
		Count:     count,
		Direction: direction,
	}
	reply, err := g.ListRounds(req)
	if err != nil {
		return nil, err
	}
	rounds := make([]*RoundResult, 0, len(reply.Rounds))
	for _, r := range reply.Rounds {
		rounds = append(rounds, roundResult(r))
	}
	return rounds, nil
}

//RpsRoundCmd 查询一局
func RpsRoundCmd(load EnvLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round",
		Short: "Show a settled round by index",
		RunE:  run(load, rpsRound),
	}
	cmd.Flags().Int64P("index", "i", 0, "round index")
	cmd.MarkFlagRequired("index")
	return cmd
}

func rpsRound(cmd *cobra.Command, g *executor.Game) (interface{}, error) {
	index, _ := cmd.Flags().GetInt64("index")
	round, err := g.QueryRound(index)
	if err != nil {
		return nil, err
	}
	return roundResult(round), nil
}

//RpsStatsCmd 查询统计
func RpsStatsCmd(load EnvLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show round statistics",
		RunE: run(load, func(cmd *cobra.Command, g *executor.Game) (interface{}, error) {
			addr, _ := cmd.Flags().GetString("addr")
			return g.QueryStats(addr)
		}),
	}
	cmd.Flags().StringP("addr", "f", "", "player address, all rounds if empty")
	return cmd
}

//AccountResult 账户余额
type AccountResult struct {
	Addr    string `json:"addr"`
	Balance string `json:"balance"`
	Frozen  string `json:"frozen"`
}

//RpsFaucetCmd 本地水龙头
func RpsFaucetCmd(load EnvLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "faucet",
		Short: "Mint coins to an address for local play",
		RunE:  run(load, rpsFaucet),
	}
	cmd.Flags().StringP("addr", "f", "", "address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("amount", "a", "", "amount in coins")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func rpsFaucet(cmd *cobra.Command, g *executor.Game) (interface{}, error) {
	addr, _ := cmd.Flags().GetString("addr")
	amountStr, _ := cmd.Flags().GetString("amount")
	amount, err := ParseCoins(amountStr)
	if err != nil {
		return nil, err
	}
	if _, err = g.Deposit(addr, amount); err != nil {
		return nil, err
	}
	return accountResult(g, addr), nil
}

//RpsBalanceCmd 查询余额
func RpsBalanceCmd(load EnvLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the balance of an address",
		RunE: run(load, func(cmd *cobra.Command, g *executor.Game) (interface{}, error) {
			addr, _ := cmd.Flags().GetString("addr")
			return accountResult(g, addr), nil
		}),
	}
	cmd.Flags().StringP("addr", "f", "", "address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func accountResult(g *executor.Game, addr string) *AccountResult {
	acc := g.Balance(addr)
	return &AccountResult{
		Addr:    addr,
		Balance: FormatCoins(acc.GetBalance()),
		Frozen:  FormatCoins(acc.GetFrozen()),
	}
}
