package cfgm

import "strings"

// Expand 展开 text 中的 ${VAR} 与 ${VAR:-default}。
//
//   - ${VAR} 未设置时展开为空字符串
//   - ${VAR:-default} 未设置或为空时使用 default，default 中可以嵌套 ${...}
//   - ${VAR-default} 仅在未设置时使用 default
//   - $$ 输出字面量 $
//   - 其他形式（包括不闭合的 ${）原样保留
//
// lookup 通常为 os.LookupEnv。
func Expand(text string, lookup func(string) (string, bool)) string {
	if !strings.Contains(text, "$") {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if text[i] != '$' || i+1 >= len(text) {
			b.WriteByte(text[i])
			continue
		}

		switch text[i+1] {
		case '$':
			b.WriteByte('$')
			i++
		case '{':
			end := closingBrace(text, i+2)
			if end < 0 {
				b.WriteByte('$')
				continue
			}
			expr := text[i+2 : end]
			if val, ok := expandExpr(expr, lookup); ok {
				b.WriteString(val)
			} else {
				b.WriteString(text[i : end+1])
			}
			i = end
		default:
			b.WriteByte('$')
		}
	}

	return b.String()
}

func expandExpr(expr string, lookup func(string) (string, bool)) (string, bool) {
	end := strings.IndexFunc(expr, func(r rune) bool { return !isNameRune(r) })
	if end < 0 {
		end = len(expr)
	}
	name, rest := expr[:end], expr[end:]
	if !isVarName(name) {
		return "", false
	}

	val, ok := lookup(name)
	switch {
	case rest == "":
		return val, true
	case strings.HasPrefix(rest, ":-"):
		if !ok || val == "" {
			return Expand(rest[2:], lookup), true
		}
	case strings.HasPrefix(rest, "-"):
		if !ok {
			return Expand(rest[1:], lookup), true
		}
	default:
		return "", false
	}

	return val, true
}

// closingBrace 返回与 start 之前的 "${" 配对的 "}" 位置，支持嵌套。
func closingBrace(text string, start int) int {
	depth := 0
	for i := start; i < len(text); i++ {
		switch {
		case text[i] == '$' && i+1 < len(text) && text[i+1] == '{':
			depth++
			i++
		case text[i] == '}':
			if depth == 0 {
				return i
			}
			depth--
		}
	}

	return -1
}

func isNameRune(r rune) bool {
	return r == '_' || r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9'
}

func isVarName(s string) bool {
	return s != "" && (s[0] < '0' || s[0] > '9')
}
