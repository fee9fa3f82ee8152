package executor

import (
	"bytes"
	"fmt"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"sync"

	"github.com/homocury/rusti/errs"
	"github.com/homocury/rusti/types"
)

// RustcBackend は外部コンパイラバイナリをサブプロセスとして駆動する既定のバックエンド。
// コンパイラ内部は共有可変状態を持ち並行コンパイルに安全でないため、
// すべての呼び出しを1つのミューテックスで直列化する。
type RustcBackend struct {
	compilerPath string
	mu           sync.Mutex
}

func NewRustcBackend(compilerPath string) *RustcBackend {
	return &RustcBackend{
		compilerPath: compilerPath,
	}
}

// CompileAndRun は合成済みプログラムをコンパイルし、生成されたエントリポイントを
// その場でJIT実行する。成功時は標準出力を返す。
func (b *RustcBackend) CompileAndRun(programFile string, opts CompileOpts) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	args := []string{programFile}
	if opts.JIT {
		args = append(args, "--jit")
	}
	for _, p := range opts.SearchPaths {
		args = append(args, "-L", p)
	}

	cmd := exec.Command(b.compilerPath, args...)
	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	if err := cmd.Run(); err != nil {
		return nil, classifyFailure(stderrBuf.String(), err)
	}
	return stdoutBuf.Bytes(), nil
}

// CompileLib は補助クレートのソースからライブラリ成果物を生成する
func (b *RustcBackend) CompileLib(srcFile string, searchPaths []string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	args := []string{"--lib", srcFile}
	for _, p := range searchPaths {
		args = append(args, "-L", p)
	}

	cmd := exec.Command(b.compilerPath, args...)
	var stderrBuf bytes.Buffer
	cmd.Stderr = &stderrBuf
	if err := cmd.Run(); err != nil {
		return classifyFailure(stderrBuf.String(), err)
	}
	return nil
}

// OutputFilenames はコンパイラの標準的な出力命名規則から、成果物が置かれる
// ディレクトリとファイル名の前後部分を返す。成果物名にはあらかじめ予測できない
// ハッシュが埋め込まれるため、完全なファイル名ではなく前方・後方一致の組で表す。
func (b *RustcBackend) OutputFilenames(srcFile string, crateName types.CrateName) (dir, prefix, suffix string) {
	dir = filepath.Dir(srcFile)
	prefix = "lib" + string(crateName)
	switch runtime.GOOS {
	case "darwin":
		suffix = ".dylib"
	case "windows":
		prefix = string(crateName)
		suffix = ".dll"
	default:
		suffix = ".so"
	}
	return dir, prefix, suffix
}

// classifyFailure はサブプロセスの失敗をコンパイルエラーと実行時異常に分類する
func classifyFailure(stderr string, cmdErr error) error {
	if strings.Contains(stderr, "error") && !strings.Contains(stderr, "task failed") {
		return errs.NewCompileError(formatDiagnostics(stderr))
	}
	if stderr != "" {
		return errs.NewRuntimeError(strings.TrimSpace(stderr))
	}
	return errs.NewRuntimeError("program aborted").Wrap(cmdErr)
}

var tmpPathPattern = regexp.MustCompile(`\S*_rusti_tmp\.rs:\d+:\d+:?\s*`)

// formatDiagnostics は診断メッセージから一時ファイルパスを取り除き、件数をつけて整形する
func formatDiagnostics(stderr string) string {
	lines := strings.Split(stderr, "\n")
	var formatted []string
	var errCount int
	for _, line := range lines {
		if line == "" {
			continue
		}
		line = tmpPathPattern.ReplaceAllString(line, "")
		if strings.HasPrefix(line, "error") {
			errCount++
		}
		formatted = append(formatted, line)
	}
	return fmt.Sprintf("\n%d errors found\n\n%s\n\n", errCount, strings.Join(formatted, "\n"))
}
