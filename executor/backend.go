package executor

// CompileOpts はバックエンド呼び出しに渡すセッション由来のオプション
type CompileOpts struct {
	JIT         bool
	SearchPaths []string
}

// backend は外部コンパイラ/JITドライバとの境界。
// 合成済みプログラムのコンパイルと即時実行だけを要求する。
// 呼び出しは同期的で、診断の確定または実行完了までブロックする。
//
//go:generate mockgen -package=executor -source=./backend.go -destination=./backend_mock.go
type backend interface {
	CompileAndRun(programFile string, opts CompileOpts) (output []byte, err error)
}
