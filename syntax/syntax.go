package syntax

// Block は合成プログラムのマーカーブロックに対応する、コンパイル済み断片の表現。
// 各ノードは元のソーステキストをそのまま保持しており、プリティプリントは
// そのテキストを正規化して返すだけで済む。
type Block struct {
	ViewItems []ViewItem
	Stmts     []Stmt
}

// ViewItem はインポート/リンク宣言(use, extern mod)を表す
type ViewItem struct {
	text string
}

// StmtKind は文の種別を表す
type StmtKind int

const (
	// StmtDecl はlet/fn/structなどの宣言文
	StmtDecl StmtKind = iota
	// StmtMacroDecl は宣言に準ずるマクロ定義
	StmtMacroDecl
	// StmtAssign は代入・複合代入の式文
	StmtAssign
	// StmtExpr はその他の式文
	StmtExpr
)

// Stmt はブロック内の1文を表す
type Stmt struct {
	kind StmtKind
	text string
}

func (s Stmt) Kind() StmtKind {
	return s.kind
}
