package command

import "strings"

// Sentinel はメタコマンド行の先頭を示す接頭辞
const Sentinel = ":"

// Command は1行のメタコマンドを表す。セッションをまたいで保持されることはない。
type Command struct {
	Name string
	Args []string
}

// Parse は入力行をメタコマンドとして解釈する。
// Sentinelで始まらない行と、Sentinelを取り除いた後に名前が残らない行は
// コマンドではなく言語コードとして扱う(okはfalse)。
func Parse(line string) (Command, bool) {
	if !strings.HasPrefix(line, Sentinel) {
		return Command{}, false
	}
	fields := strings.Fields(strings.TrimPrefix(line, Sentinel))
	if len(fields) == 0 {
		return Command{}, false
	}
	return Command{
		Name: fields[0],
		Args: fields[1:],
	}, true
}
