package session

import (
	"strings"

	"github.com/homocury/rusti/types"
)

// Session はREPLの累積状態を表す値型。
// 評価の成功が確定したときにだけ全体を置き換え、途中で部分的に書き換えない。
// 失敗時のロールバックは、呼び出し側が古い値をそのまま使い続けるだけで済む。
type Session struct {
	Prompt         string
	BinaryPath     string
	Running        bool
	ViewItems      string
	Statements     string
	LibSearchPaths []string
}

func New(prompt, binaryPath string) Session {
	return Session{
		Prompt:     prompt,
		BinaryPath: binaryPath,
		Running:    true,
	}
}

// WithHistory は履歴バッファを差し替えた新しいSessionを返す
func (s Session) WithHistory(viewItems, statements string) Session {
	s.ViewItems = viewItems
	s.Statements = statements
	return s
}

// Cleared は履歴バッファだけを空にした新しいSessionを返す
func (s Session) Cleared() Session {
	s.ViewItems = ""
	s.Statements = ""
	return s
}

// Stopped はループ終了を指示した新しいSessionを返す
func (s Session) Stopped() Session {
	s.Running = false
	return s
}

// HasCrate は該当クレートのリンク宣言が既に取り込まれているかを返す
func (s Session) HasCrate(name types.CrateName) bool {
	return strings.Contains(s.ViewItems, crateDecl(name))
}

// WithCrate はロード済みクレートのリンク宣言と探索パスを取り込んだ新しいSessionを返す。
// 既に取り込まれているクレートに対しては何もしない。
func (s Session) WithCrate(name types.CrateName, libDir string) Session {
	if s.HasCrate(name) {
		return s
	}
	s.ViewItems = AppendLine(s.ViewItems, crateDecl(name))
	// 元のSessionと配列を共有しないようコピーしてから追加する
	paths := make([]string, len(s.LibSearchPaths), len(s.LibSearchPaths)+1)
	copy(paths, s.LibSearchPaths)
	s.LibSearchPaths = append(paths, libDir)
	return s
}

func crateDecl(name types.CrateName) string {
	return "extern mod " + string(name) + ";"
}

// AppendLine は改行区切りのバッファに1行追記する
func AppendLine(buf, line string) string {
	if buf == "" {
		return line
	}
	return buf + "\n" + line
}
