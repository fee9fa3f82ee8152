package executor

import (
	"fmt"

	"github.com/homocury/rusti/errs"
	"github.com/homocury/rusti/session"
	"github.com/homocury/rusti/syntax"
)

// Executor はREPLセッション内でのコード評価を担う
type Executor struct {
	backend backend
	jit     bool
	filer
}

// NewExecutor はExecutorのインスタンスを生成する
func NewExecutor(b backend, jit bool) *Executor {
	return &Executor{
		backend: b,
		jit:     jit,
		filer:   newDefaultFiler(),
	}
}

// Eval は入力を評価し、成功時には履歴を取り込んだ新しいSessionとtrueを返す。
// 失敗時は受け取ったSessionをそのまま返すので、呼び出し側はそれを
// 使い続けるだけで評価前の状態に戻る。
func (e *Executor) Eval(s session.Session, input string) (session.Session, bool) {
	program := synthesize(s, input)

	tmpFile, tmpFileName, cleanup, err := e.createTmpFile()
	if err != nil {
		errs.HandleError(err)
		return s, false
	}
	// 削除より先にクローズされるよう逆順に積む
	defer cleanup()
	defer tmpFile.Close()

	if err := e.flush(program, tmpFile); err != nil {
		errs.HandleError(err)
		return s, false
	}

	// バックエンド呼び出しは失敗封じ込め境界の中で行う
	var out []byte
	err = errs.Attempt(func() error {
		var runErr error
		out, runErr = e.backend.CompileAndRun(tmpFileName, CompileOpts{
			JIT:         e.jit,
			SearchPaths: s.LibSearchPaths,
		})
		return runErr
	})
	if err != nil {
		errs.HandleError(err)
		return s, false
	}

	// 評価結果を表示する
	if len(out) > 0 {
		printOutput(out)
	}

	// コンパイル済み表現からマーカーブロックを取り出して履歴を更新する
	blk, err := syntax.MarkerBlock(program, markerFn)
	if err != nil {
		errs.HandleError(err)
		return s, false
	}
	return extract(s, blk), true
}

func printOutput(out []byte) {
	const greenColor = "\033[32m"
	const colorReset = "\033[0m"
	fmt.Printf("\n%s%s%s\n", greenColor, string(out), colorReset)
}
