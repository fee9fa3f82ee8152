package loader

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/homocury/rusti/errs"
	"github.com/homocury/rusti/types"
)

// Outcome は1クレートのロード結果を表す
type Outcome int

const (
	// CompiledFresh は成果物を新しくコンパイルしたことを表す
	CompiledFresh Outcome = iota
	// SkippedUpToDate は既存の成果物が新鮮でコンパイルを省略したことを表す
	SkippedUpToDate
	// CompileFailed はライブラリのコンパイルに失敗したことを表す
	CompileFailed
)

const srcSuffix = ".rs"

// Loader は補助クレートのコンパイル要否を判定し、必要なら外部バックエンドで
// コンパイルする。判定は呼び出しのたびにファイルシステムから計算し直すもので、
// 結果を保持することはない。判定し直すこと自体がキャッシュの有効性確認になる。
type Loader struct {
	compiler libCompiler
}

func NewLoader(c libCompiler) *Loader {
	return &Loader{
		compiler: c,
	}
}

// Load は1つのクレート引数を処理し、結果と論理名、成果物ディレクトリを返す。
// CompiledFreshとSkippedUpToDateだけが「ロードできた」とみなされる。
func (l *Loader) Load(arg string, searchPaths []string) (Outcome, types.CrateName, string) {
	name, srcFile := normalize(arg)
	dir, prefix, suffix := l.compiler.OutputFilenames(srcFile, name)

	if !stale(srcFile, dir, prefix, suffix) {
		return SkippedUpToDate, name, dir
	}

	// コンパイルは失敗封じ込め境界の中で行う
	err := errs.Attempt(func() error {
		return l.compiler.CompileLib(srcFile, searchPaths)
	})
	if err != nil {
		errs.HandleError(err)
		return CompileFailed, name, dir
	}
	return CompiledFresh, name, dir
}

// normalize はクレート名またはファイル名の引数を(論理名, ソースファイル名)に正規化する
func normalize(arg string) (types.CrateName, string) {
	if strings.HasSuffix(arg, srcSuffix) {
		name := strings.TrimSuffix(filepath.Base(arg), srcSuffix)
		return types.CrateName(name), arg
	}
	return types.CrateName(filepath.Base(arg)), arg + srcSuffix
}

// stale は既存の成果物でコンパイルを省略できるかを判定する。
// 成果物名にはハッシュが埋め込まれ完全一致では引けないため、前方・後方一致で
// 候補を探す。候補が見つからないことはエラーではなく「要コンパイル」にすぎない。
func stale(srcFile, dir, prefix, suffix string) bool {
	srcInfo, err := os.Stat(srcFile)
	if err != nil {
		// ソースが読めない場合もコンパイルに回し、バックエンドに診断を出させる
		return true
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return true
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		entryName := entry.Name()
		if !strings.HasPrefix(entryName, prefix) || !strings.HasSuffix(entryName, suffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if !info.ModTime().Before(srcInfo.ModTime()) {
			return false
		}
	}
	return true
}
