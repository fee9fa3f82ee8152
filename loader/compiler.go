package loader

import "github.com/homocury/rusti/types"

// libCompiler はロード時に必要なバックエンド操作の境界。
// ライブラリ成果物の生成と、成果物の命名規則の2点だけを要求する。
//
//go:generate mockgen -package=loader -source=./compiler.go -destination=./compiler_mock.go
type libCompiler interface {
	CompileLib(srcFile string, searchPaths []string) error
	OutputFilenames(srcFile string, crateName types.CrateName) (dir, prefix, suffix string)
}
