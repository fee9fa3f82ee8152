package repl

import (
	_ "embed"
	"fmt"

	"github.com/homocury/rusti/version"
)

//go:embed rusti_ascii.txt
var ascii []byte

// PrintBanner は起動時のバナーとバージョン情報を表示する。
// 対話端末で起動したときだけ呼ばれる。
func PrintBanner() {
	fmt.Print(string(ascii))
	version.PrintVersion()
	version.NoteLatest()
}
