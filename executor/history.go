package executor

import (
	"github.com/homocury/rusti/session"
	"github.com/homocury/rusti/syntax"
)

// extract は今回の入力に対応するコンパイル済みブロックを読み、
// 新しい宣言だけを履歴に取り込んだSessionを返す。
// 宣言は残り、式の評価結果は残らないという非対称は意図的なもので、
// 次回以降の合成プログラムに生き残る必要があるのは束縛だけになる。
func extract(s session.Session, blk *syntax.Block) session.Session {
	viewItems := s.ViewItems
	statements := s.Statements
	for _, v := range blk.ViewItems {
		viewItems = session.AppendLine(viewItems, syntax.PrintViewItem(v))
	}
	for _, st := range blk.Stmts {
		switch st.Kind() {
		case syntax.StmtDecl, syntax.StmtMacroDecl:
			statements = session.AppendLine(statements, syntax.PrintStmt(st))
		case syntax.StmtAssign:
			// 代入を履歴に残すと、再合成のたびに副作用が再実行されてしまう
		default:
			// 束縛を作らない式文は残さない
		}
	}
	return s.WithHistory(viewItems, statements)
}
