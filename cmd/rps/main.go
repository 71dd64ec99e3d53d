// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// rps 本地猜拳游戏命令行
package main

import (
	"os"

	"github.com/mathograham/RockPaperScissorsGame/common/config"
	dbm "github.com/mathograham/RockPaperScissorsGame/common/db"
	"github.com/mathograham/RockPaperScissorsGame/common/log"
	"github.com/mathograham/RockPaperScissorsGame/metrics"
	"github.com/mathograham/RockPaperScissorsGame/plugin/dapp/rps/commands"
	"github.com/mathograham/RockPaperScissorsGame/plugin/dapp/rps/executor"
	"github.com/mathograham/RockPaperScissorsGame/types"
	go_metrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rps",
	Short: "rock paper scissors game tools",
}

func init() {
	rootCmd.PersistentFlags().String("conf", "", "config file, default config if empty")

	game := commands.RpsCmd(loadEnv)
	rootCmd.AddCommand(game.Commands()...)
}

func loadConfig(cmd *cobra.Command) (*types.Config, error) {
	path, _ := cmd.Flags().GetString("conf")
	if path == "" {
		return config.DefaultCfg(), nil
	}
	return config.Init(path)
}

func loadEnv(cmd *cobra.Command) (*commands.Env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log.SetFileLog(cfg.Log)

	store, err := dbm.NewDB(cfg.Store.Name, cfg.Store.Driver, cfg.Store.DbPath, cfg.Store.DbCache)
	if err != nil {
		return nil, err
	}
	game, err := executor.NewGame(cfg.Rps.StakeAmount, store,
		executor.WithHashType(cfg.Rps.HashType),
		executor.WithExecName(cfg.Rps.ExecName),
		executor.WithListCount(cfg.Rps.DefaultCount, cfg.Rps.MaxCount),
		executor.WithMetrics(go_metrics.DefaultRegistry),
	)
	if err != nil {
		store.Close()
		return nil, err
	}
	stop := metrics.StartMetrics(cfg.Metrics, go_metrics.DefaultRegistry)
	return &commands.Env{
		Game: game,
		Close: func() {
			stop()
			store.Close()
		},
	}, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
