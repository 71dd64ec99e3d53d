// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// Config 配置文件的根结构
type Config struct {
	Title   string     `toml:"title"`
	Log     *Log       `toml:"log"`
	Store   *Store     `toml:"store"`
	Rps     *RpsConfig `toml:"rps"`
	Metrics *Metrics   `toml:"metrics"`
}

// Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `toml:"logFile"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `toml:"maxFileSize"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `toml:"maxBackups"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `toml:"maxAge"`
	// 日志文件名是否使用本地时间（否则使用UTC时间）
	LocalTime bool `toml:"localTime"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `toml:"compress"`
	// 是否打印调用源文件和行号
	CallerFile bool `toml:"callerFile"`
	// 是否打印调用方法
	CallerFunction bool `toml:"callerFunction"`
}

// Store 数据库配置
type Store struct {
	Name    string `toml:"name"`
	Driver  string `toml:"driver"`
	DbPath  string `toml:"dbPath"`
	DbCache int32  `toml:"dbCache"`
}

// RpsConfig 猜拳合约配置
type RpsConfig struct {
	// 每局押注金额（单位为 1e-8 coin）
	StakeAmount int64 `toml:"stakeAmount"`
	// 承诺的哈希算法 sha256/keccak256
	HashType string `toml:"hashType"`
	// 托管账户对应的执行器名
	ExecName     string `toml:"execName"`
	DefaultCount int32  `toml:"defaultCount"`
	MaxCount     int32  `toml:"maxCount"`
}

// Metrics metrics 配置
type Metrics struct {
	EnableMetrics bool `toml:"enableMetrics"`
	// 目前只支持 log
	DataEmitMode string `toml:"dataEmitMode"`
	// 输出间隔（单位：秒）
	Duration int64 `toml:"duration"`
}
