package urlrange

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// pattern 匹配 [start-end] 形式的区间占位符。
var pattern = regexp.MustCompile(`\[(\d+)-(\d+)\]`)

// Range 是从 URL 中解析出的闭区间占位符。
type Range struct {
	Token string // 原始占位符文本，例如 "[1-3]"
	Start int
	End   int
}

// Len 返回区间内整数的个数；Start > End 时为 0，超过 int 上限时截断为 math.MaxInt。
func (r Range) Len() int {
	if r.Start > r.End {
		return 0
	}
	if r.End-r.Start == math.MaxInt {
		return math.MaxInt
	}

	return r.End - r.Start + 1
}

// Find 返回 url 中第一个区间占位符。
//
// 不存在占位符，或数字超出 int 范围时返回 false。
func Find(url string) (Range, bool) {
	m := pattern.FindStringSubmatch(url)
	if m == nil {
		return Range{}, false
	}

	start, err := strconv.Atoi(m[1])
	if err != nil {
		return Range{}, false
	}
	end, err := strconv.Atoi(m[2])
	if err != nil {
		return Range{}, false
	}

	return Range{Token: m[0], Start: start, End: end}, true
}

// Expand 将 url 按第一个区间占位符展开为多个 URL。
//
// 无占位符时返回仅包含 url 的切片；否则按升序为区间内每个整数生成一个 URL，
// 其中所有与占位符文本相同的子串都被替换为该整数的十进制表示（不补零）。
// start > end 时返回空切片（非 nil）。
func Expand(url string) []string {
	r, ok := Find(url)
	if !ok {
		return []string{url}
	}

	out := make([]string, 0, min(r.Len(), maxPrealloc))
	if r.Len() == 0 {
		return out
	}
	for i := r.Start; ; i++ {
		out = append(out, strings.ReplaceAll(url, r.Token, strconv.Itoa(i)))
		if i == r.End {
			break
		}
	}

	return out
}

// ExpandAll 依次展开 urls 中的每一项并按原顺序拼接结果。
func ExpandAll(urls []string) []string {
	var out []string
	for _, u := range urls {
		out = append(out, Expand(u)...)
	}

	return out
}

// maxPrealloc 限制预分配容量，避免超大区间一次性申请内存。
const maxPrealloc = 1 << 12
