package repl

import (
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/homocury/rusti/command"
)

// completeCommand はメタコマンド名だけを補完候補として返す。
// 言語コードの補完はセッションごとに全再コンパイルする構造上提供できない。
func completeCommand(d prompt.Document) []prompt.Suggest {
	text := d.TextBeforeCursor()
	if !strings.HasPrefix(text, command.Sentinel) {
		return nil
	}
	suggests := []prompt.Suggest{
		{Text: ":clear", Description: "clear the accumulated program"},
		{Text: ":exit", Description: "quit the session"},
		{Text: ":help", Description: "show usage"},
		{Text: ":load", Description: "compile and link auxiliary crates"},
	}
	return prompt.FilterHasPrefix(suggests, text, true)
}
