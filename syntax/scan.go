package syntax

import "strings"

// skipNonCode はコメント(行・ネストしたブロック)と文字列・文字リテラルを読み飛ばす。
// iがそれらの開始位置でなければiをそのまま返す。
func skipNonCode(src string, i int) int {
	n := len(src)
	switch {
	case strings.HasPrefix(src[i:], "//"):
		for i < n && src[i] != '\n' {
			i++
		}
		return i
	case strings.HasPrefix(src[i:], "/*"):
		depth := 1
		i += 2
		for i < n && depth > 0 {
			switch {
			case strings.HasPrefix(src[i:], "/*"):
				depth++
				i += 2
			case strings.HasPrefix(src[i:], "*/"):
				depth--
				i += 2
			default:
				i++
			}
		}
		return i
	case src[i] == '"':
		i++
		for i < n {
			if src[i] == '\\' {
				i += 2
				continue
			}
			if src[i] == '"' {
				i++
				break
			}
			i++
		}
		return i
	case src[i] == '\'':
		// 文字リテラルとライフタイムを区別する。
		// '\n' や 'x' のように閉じ引用符を伴うものはリテラル、
		// 'a のように続かないものはライフタイムなので1文字だけ進める。
		if i+1 < n && src[i+1] == '\\' {
			j := i + 2
			for j < n && src[j] != '\'' {
				j++
			}
			if j < n {
				return j + 1
			}
			return j
		}
		if i+2 < n && src[i+2] == '\'' {
			return i + 3
		}
		return i + 1
	}
	return i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// firstWord は先頭の識別子語を返す。pub/privの可視性修飾は読み飛ばす。
func firstWord(text string) string {
	text = strings.TrimSpace(text)
	for _, vis := range []string{"pub ", "priv "} {
		text = strings.TrimPrefix(text, vis)
	}
	end := 0
	for end < len(text) && isWordChar(text[end]) {
		end++
	}
	return text[:end]
}

// secondWord は先頭の識別子語の次の語を返す
func secondWord(text string) string {
	text = strings.TrimSpace(text)
	for _, vis := range []string{"pub ", "priv "} {
		text = strings.TrimPrefix(text, vis)
	}
	end := 0
	for end < len(text) && isWordChar(text[end]) {
		end++
	}
	return firstWord(text[end:])
}

func isWordChar(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
