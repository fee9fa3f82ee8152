package repl

import (
	"fmt"
	"os"
	"strings"

	"github.com/homocury/rusti/command"
	"github.com/homocury/rusti/errs"
	"github.com/homocury/rusti/loader"
	"github.com/homocury/rusti/session"
)

// 複数行ブロックの終端子
const terminator = ":}"

// 複数行ブロック収集中に表示するプロンプト
const blockPrompt = "rusti| "

// Repl は読み取り・解釈・評価のループを駆動する。
// Sessionはループだけが所有し、確定した評価のたびに値ごと置き換える。
type Repl struct {
	liner       liner
	evaluator   evaluator
	loader      crateLoader
	interactive bool
}

// NewRepl はReplのインスタンスを生成する
func NewRepl(e evaluator, l crateLoader, interactive bool) *Repl {
	var ln liner
	if interactive {
		ln = newPromptLiner()
	} else {
		ln = newReaderLiner(os.Stdin)
	}
	return newRepl(ln, e, l, interactive)
}

func newRepl(ln liner, e evaluator, l crateLoader, interactive bool) *Repl {
	return &Repl{
		liner:       ln,
		evaluator:   e,
		loader:      l,
		interactive: interactive,
	}
}

// Run は入力が尽きるか:exitが実行されるまでループし、最終的なSessionを返す
func (r *Repl) Run(initial session.Session) session.Session {
	s := initial
	for s.Running {
		line, ok := r.liner.readLine(s.Prompt)
		if !ok {
			break
		}
		s = r.interpret(s, line)
	}
	return s
}

// interpret は1つの入力単位(1行、または取り込み済みの複数行ブロック)を処理する
func (r *Repl) interpret(s session.Session, input string) session.Session {
	if cmd, ok := command.Parse(input); ok {
		return r.dispatch(s, cmd)
	}
	if strings.TrimSpace(input) == "" {
		if r.interactive {
			fmt.Println("()")
		}
		return s
	}
	next, ok := r.evaluator.Eval(s, input)
	if !ok {
		// 失敗した評価はプロンプトも蓄積した束縛もそのまま残す
		return s
	}
	return next
}

func (r *Repl) dispatch(s session.Session, cmd command.Command) session.Session {
	switch cmd.Name {
	case "exit":
		return s.Stopped()
	case "clear":
		return s.Cleared()
	case "help":
		printHelp()
		return s
	case "load":
		return r.loadCrates(s, cmd.Args)
	case "{":
		block, ok := r.captureBlock()
		if !ok {
			// 終端子より先に入力が尽きた。ブロックは構文的に不完全であり、
			// 「すべての取り込みはいずれ完了する」という不変条件が破れているので回復しない
			errs.HandleError(errs.NewInternalError("unterminated multiline block"))
			os.Exit(1)
		}
		// 取り込んだブロック自体がさらにコマンドで始まることもあるため再帰する
		return r.interpret(s, block)
	default:
		fmt.Printf("unknown command: %s\n", cmd.Name)
		return s
	}
}

// captureBlock は終端子が現れるまで行を集める
func (r *Repl) captureBlock() (string, bool) {
	var b strings.Builder
	for {
		line, ok := r.liner.readLine(blockPrompt)
		if !ok {
			return "", false
		}
		if strings.TrimSpace(line) == terminator {
			return b.String(), true
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

func (r *Repl) loadCrates(s session.Session, args []string) session.Session {
	for _, arg := range args {
		outcome, name, libDir := r.loader.Load(arg, s.LibSearchPaths)
		switch outcome {
		case loader.CompiledFresh:
			fmt.Printf("compiled %s\n", name)
			s = s.WithCrate(name, libDir)
		case loader.SkippedUpToDate:
			fmt.Printf("skipped %s (artifact up to date)\n", name)
			s = s.WithCrate(name, libDir)
		case loader.CompileFailed:
			// 診断はバックエンドの報告チャネルで出力済み
		}
	}
	return s
}

func printHelp() {
	fmt.Print(`commands:
  :{ <lines> :}    evaluate lines as a single unit
  :clear           clear the accumulated program
  :exit            quit the session
  :help            show this message
  :load <crates>   compile and link auxiliary crates
`)
}
