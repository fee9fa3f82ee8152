package executor

import (
	_ "embed"
	"strings"

	"github.com/homocury/rusti/session"
)

// 実行時グルーを提供する固定のブートストラップヘッダ
//
//go:embed wrapper.rs
var wrapperHeader string

// markerFn は新しい入力を包むマーカー呼び出しの名前。
// wrapper.rsで定義される表示グルーと一致していなければならない。
// 名前で直接引けるため、コンパイル済み表現から今回の入力に対応するブロックを
// 位置や形状のマッチではなく照合1回で取り出せる。
const markerFn = "__rusti_print"

// synthesize は蓄積された履歴と新しい入力から、完全で自己完結した
// プログラムテキストを組み立てる。外部コンパイラは断片を受け付けないため、
// 入力がどれほど小さくても出力は常に構文的に完全なプログラムになる。
func synthesize(s session.Session, input string) string {
	var b strings.Builder
	b.WriteString(wrapperHeader)
	b.WriteString("\n")
	if s.ViewItems != "" {
		b.WriteString(s.ViewItems)
		b.WriteString("\n\n")
	}
	b.WriteString("fn main() {\n")
	if s.Statements != "" {
		writeIndented(&b, s.Statements, "    ")
	}
	b.WriteString("    " + markerFn + "({\n")
	writeIndented(&b, input, "        ")
	b.WriteString("    });\n")
	b.WriteString("}\n")
	return b.String()
}

func writeIndented(b *strings.Builder, text, indent string) {
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		b.WriteString(indent)
		b.WriteString(line)
		b.WriteString("\n")
	}
}
