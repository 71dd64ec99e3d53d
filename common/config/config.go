// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config 读取 toml 配置文件
package config

import (
	tml "github.com/BurntSushi/toml"
	"github.com/mathograham/RockPaperScissorsGame/types"
)

//Init 从文件读取配置
func Init(path string) (*types.Config, error) {
	var cfg types.Config
	if _, err := tml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	fillDefault(&cfg)
	return &cfg, nil
}

func initString(s string) (*types.Config, error) {
	var cfg types.Config
	if _, err := tml.Decode(s, &cfg); err != nil {
		return nil, err
	}
	fillDefault(&cfg)
	return &cfg, nil
}

//DefaultCfg 默认配置
func DefaultCfg() *types.Config {
	cfg, err := initString(types.GetDefaultCfgstring())
	if err != nil {
		panic(err)
	}
	return cfg
}

func fillDefault(cfg *types.Config) {
	if cfg.Log == nil {
		cfg.Log = &types.Log{}
	}
	if cfg.Store == nil {
		cfg.Store = &types.Store{}
	}
	if cfg.Store.Name == "" {
		cfg.Store.Name = "rps"
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "leveldb"
	}
	if cfg.Store.DbPath == "" {
		cfg.Store.DbPath = "datadir/rps"
	}
	if cfg.Rps == nil {
		cfg.Rps = &types.RpsConfig{}
	}
	if cfg.Rps.HashType == "" {
		cfg.Rps.HashType = "sha256"
	}
	if cfg.Rps.ExecName == "" {
		cfg.Rps.ExecName = "rps"
	}
	if cfg.Rps.DefaultCount <= 0 {
		cfg.Rps.DefaultCount = 20
	}
	if cfg.Rps.MaxCount <= 0 {
		cfg.Rps.MaxCount = 100
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &types.Metrics{}
	}
	if cfg.Metrics.DataEmitMode == "" {
		cfg.Metrics.DataEmitMode = "log"
	}
	if cfg.Metrics.Duration <= 0 {
		cfg.Metrics.Duration = 60
	}
}
