// Package config はrustiの設定を読み込む。
// 優先順位(高い順):
// 1. 環境変数 (RUSTI_PROMPT, RUSTI_COMPILER, RUSTI_LIB_PATHS, RUSTI_JIT)
// 2. ~/.config/rusti/config.yaml
// 3. デフォルト値
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config はrusti全体の設定を表す
type Config struct {
	// Prompt は入力待ちのときに表示するプロンプト文字列
	Prompt string `yaml:"prompt"`

	// CompilerPath は起動するコンパイラのパスまたはコマンド名
	CompilerPath string `yaml:"compiler_path"`

	// LibSearchPaths は起動時点でリンク時に渡すライブラリ探索パス
	LibSearchPaths []string `yaml:"lib_search_paths"`

	// JIT はコンパイル後のプログラムをその場で実行するかどうか。
	// nil はデフォルト(有効)を意味する
	JIT *bool `yaml:"jit"`
}

// DefaultConfig はデフォルト設定を返す
func DefaultConfig() *Config {
	return &Config{
		Prompt:       "rusti> ",
		CompilerPath: "rustc",
	}
}

// Load は設定ファイルを読み込み、環境変数による上書きを適用する
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			configPath = filepath.Join(home, ".config", "rusti", "config.yaml")
		}
	}

	// ファイルが存在しなければデフォルトのまま進む
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
		}
	}

	applyEnvOverrides(cfg)

	if cfg.Prompt == "" {
		cfg.Prompt = "rusti> "
	}
	if cfg.CompilerPath == "" {
		cfg.CompilerPath = "rustc"
	}

	return cfg, nil
}

// JITEnabled はJIT実行が有効かどうかを返す。未指定なら有効として扱う
func (c *Config) JITEnabled() bool {
	if c.JIT == nil {
		return true
	}
	return *c.JIT
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RUSTI_PROMPT"); v != "" {
		cfg.Prompt = v
	}
	if v := os.Getenv("RUSTI_COMPILER"); v != "" {
		cfg.CompilerPath = v
	}
	if v := os.Getenv("RUSTI_LIB_PATHS"); v != "" {
		cfg.LibSearchPaths = filepath.SplitList(v)
	}
	if v := os.Getenv("RUSTI_JIT"); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			cfg.JIT = &b
		}
	}
}
