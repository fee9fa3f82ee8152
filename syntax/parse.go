package syntax

import (
	"strings"

	"github.com/homocury/rusti/errs"
)

// 波括弧で閉じた時点で1文が終わる形式の先頭キーワード。
// それ以外の文はトップレベルのセミコロン(または入力の終端)まで続く。
var braceFormKeywords = map[string]bool{
	"fn":     true,
	"struct": true,
	"enum":   true,
	"trait":  true,
	"impl":   true,
	"mod":    true,
	"unsafe": true,
	"if":     true,
	"match":  true,
	"while":  true,
	"loop":   true,
	"for":    true,
	"do":     true,
}

var declKeywords = map[string]bool{
	"let":    true,
	"static": true,
	"const":  true,
	"type":   true,
	"fn":     true,
	"struct": true,
	"enum":   true,
	"trait":  true,
	"impl":   true,
	"mod":    true,
}

// ParseBlock はブロック本体をトップレベルの項目に分割し、
// ビューアイテムと種別つきの文に分類する。
// 分類できない項目は式文として扱うため、パース自体は失敗しない。
func ParseBlock(src string) *Block {
	blk := &Block{}
	for _, item := range splitItems(src) {
		word := firstWord(item)
		switch {
		case word == "use" || word == "extern":
			blk.ViewItems = append(blk.ViewItems, ViewItem{text: item})
		case strings.HasPrefix(strings.TrimSpace(item), "macro_rules!"):
			blk.Stmts = append(blk.Stmts, Stmt{kind: StmtMacroDecl, text: item})
		// unsafeは宣言形式(unsafe fnなど)を前置するときだけ宣言。
		// 裸のunsafeブロックは式文であり、履歴には残らない
		case declKeywords[word] || (word == "unsafe" && declKeywords[secondWord(item)]):
			blk.Stmts = append(blk.Stmts, Stmt{kind: StmtDecl, text: item})
		case hasTopLevelAssign(item):
			blk.Stmts = append(blk.Stmts, Stmt{kind: StmtAssign, text: item})
		default:
			blk.Stmts = append(blk.Stmts, Stmt{kind: StmtExpr, text: item})
		}
	}
	return blk
}

// MarkerBlock は合成プログラムからマーカー呼び出しの唯一の引数であるブロックを
// 取り出してパースする。名前で直接引いた上で、呼び出しの引数がブロック1つである
// 形状も検証する。
func MarkerBlock(program, marker string) (*Block, error) {
	// 呼び出し部はプログラム末尾のエントリポイント内にあるため、最後の出現を引く。
	// 文字列リテラルやコメント中にマーカー名が現れても拾わないよう、
	// コード上の位置だけを走査する
	needle := marker + "("
	n := len(program)
	idx := -1
	for i := 0; i < n; {
		if j := skipNonCode(program, i); j > i {
			i = j
			continue
		}
		if strings.HasPrefix(program[i:], needle) && (i == 0 || !isWordChar(program[i-1])) {
			idx = i
		}
		i++
	}
	if idx < 0 {
		return nil, errs.NewInternalError("marker call not found in compiled program")
	}
	i := idx + len(needle)
	for i < n && isSpace(program[i]) {
		i++
	}
	if i >= n || program[i] != '{' {
		return nil, errs.NewInternalError("marker call argument is not a block")
	}
	open := i
	depth := 0
	for i < n {
		if j := skipNonCode(program, i); j > i {
			i = j
			continue
		}
		switch program[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				inner := program[open+1 : i]
				rest := strings.TrimSpace(program[i+1:])
				if !strings.HasPrefix(rest, ")") {
					return nil, errs.NewInternalError("marker call has more than one argument")
				}
				return ParseBlock(inner), nil
			}
		}
		i++
	}
	return nil, errs.NewInternalError("marker block is not brace-balanced")
}

// splitItems はブロック本体をトップレベルの項目単位に分割する
func splitItems(src string) []string {
	var items []string
	i := 0
	n := len(src)
	for i < n {
		for i < n && isSpace(src[i]) {
			i++
		}
		if i >= n {
			break
		}
		start := i
		braceForm := braceFormKeywords[firstWord(src[start:])] ||
			strings.HasPrefix(strings.TrimSpace(src[start:]), "macro_rules!")
		depth := 0
		end := -1
		for i < n && end < 0 {
			if j := skipNonCode(src, i); j > i {
				i = j
				continue
			}
			switch src[i] {
			case '(', '[', '{':
				depth++
				i++
			case ')', ']', '}':
				depth--
				i++
				if depth == 0 && src[i-1] == '}' && braceForm {
					// else節が続く場合はまだ文の途中
					if nextWordIs(src, i, "else") {
						continue
					}
					// 直後のセミコロンは同じ項目に取り込む
					k := i
					for k < n && isSpace(src[k]) {
						k++
					}
					if k < n && src[k] == ';' {
						i = k + 1
					}
					end = i
				}
			case ';':
				i++
				if depth == 0 {
					end = i
				}
			default:
				i++
			}
		}
		if end < 0 {
			end = n
			i = n
		}
		if item := strings.TrimSpace(src[start:end]); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func nextWordIs(src string, i int, word string) bool {
	for i < len(src) && isSpace(src[i]) {
		i++
	}
	if !strings.HasPrefix(src[i:], word) {
		return false
	}
	rest := i + len(word)
	return rest >= len(src) || !isWordChar(src[rest])
}

// hasTopLevelAssign はトップレベルに代入・複合代入演算子があるかを判定する
func hasTopLevelAssign(text string) bool {
	depth := 0
	i := 0
	n := len(text)
	for i < n {
		if j := skipNonCode(text, i); j > i {
			i = j
			continue
		}
		switch c := text[i]; c {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case '=':
			if depth > 0 {
				break
			}
			// == と => は代入ではない。直前が比較・否定演算子の一部である場合も同様。
			if i+1 < n && (text[i+1] == '=' || text[i+1] == '>') {
				i += 2
				continue
			}
			if i > 0 && strings.ContainsRune("=!<>", rune(text[i-1])) {
				break
			}
			return true
		case '+', '-', '*', '/', '%', '&', '|', '^':
			if depth == 0 && i+1 < n && text[i+1] == '=' && (i+2 >= n || text[i+2] != '=') {
				return true
			}
		case '<', '>':
			if depth == 0 && i+2 < n && text[i+1] == c && text[i+2] == '=' {
				return true
			}
		}
		i++
	}
	return false
}
