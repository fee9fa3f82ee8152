package syntax

import "strings"

// PrintViewItem はビューアイテムをソーステキストとして返す
func PrintViewItem(v ViewItem) string {
	return terminated(v.text)
}

// PrintStmt は文をソーステキストとして返す
func PrintStmt(s Stmt) string {
	return terminated(s.text)
}

// terminated は波括弧で閉じない形式の末尾にセミコロンを補う
func terminated(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasSuffix(text, ";") || strings.HasSuffix(text, "}") {
		return text
	}
	return text + ";"
}
