package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"
)

// liner は1行読み取りの境界。okがfalseのときは入力の終端を表す。
//
//go:generate mockgen -package=repl -source=./liner.go -destination=./liner_mock.go
type liner interface {
	readLine(promptText string) (line string, ok bool)
}

// promptLiner は対話端末向けの実装。履歴の記録とメタコマンドの補完を提供する。
type promptLiner struct {
	history []string
	eof     bool
	input   func(promptText string, completer prompt.Completer, opts ...prompt.Option) string
}

func newPromptLiner() *promptLiner {
	return &promptLiner{
		input: prompt.Input,
	}
}

func (pl *promptLiner) readLine(promptText string) (string, bool) {
	line := pl.input(
		promptText,
		completeCommand,
		prompt.OptionHistory(pl.history),
		prompt.OptionAddKeyBind(pl.keyBinds()...),
	)
	if pl.eof {
		return "", false
	}
	if line != "" {
		pl.history = append(pl.history, line)
	}
	return line, true
}

func (pl *promptLiner) keyBinds() []prompt.KeyBind {
	return []prompt.KeyBind{
		{
			Key: prompt.ControlC,
			Fn: func(buf *prompt.Buffer) {
				fmt.Println("\nExit on Ctrl+C")
				os.Exit(0)
			},
		},
		{
			// 空バッファでのCtrl+Dは入力の終端
			Key: prompt.ControlD,
			Fn: func(buf *prompt.Buffer) {
				if buf.Text() == "" {
					pl.eof = true
				}
			},
		},
	}
}

// readerLiner は非対話入力向けの実装
type readerLiner struct {
	reader *bufio.Reader
}

func newReaderLiner(r io.Reader) *readerLiner {
	return &readerLiner{
		reader: bufio.NewReader(r),
	}
}

func (rl *readerLiner) readLine(string) (string, bool) {
	line, err := rl.reader.ReadString('\n')
	if err != nil {
		// 入力の終端でも、改行を欠いた最終行は1行として返す
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), true
		}
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}
