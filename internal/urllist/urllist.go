// Package urllist 读取 URL 列表文件。
//
// 文件格式：每行一个 URL；首尾空白（含 \r）会被去除；空行与 # 开头的注释行被忽略。
package urllist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lwmacct/251207-go-pkg-bulkdl/pkg/urlrange"
)

// ErrEmptyList 列表中没有任何 URL。
var ErrEmptyList = errors.New("url list is empty")

// maxLineSize 单行上限，超长 URL（如带签名参数）也能读取。
const maxLineSize = 1 << 20

// Read 读取 path 指向的 URL 列表。
func Read(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // path is user supplied by design of the tool
	if err != nil {
		return nil, fmt.Errorf("open url list: %w", err)
	}
	defer func() { _ = f.Close() }()

	urls, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return urls, nil
}

// Parse 从 r 中逐行解析 URL。
func Parse(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var urls []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read url list: %w", err)
	}
	if len(urls) == 0 {
		return nil, ErrEmptyList
	}

	return urls, nil
}

// Entry 一行输入及其展开结果。
type Entry struct {
	Line     string
	Expanded []string
}

// Expand 对每一行执行区间展开。
//
// 返回值保持输入顺序；展开结果为空的行（如 [3-1]）同样保留，便于调用方提示。
func Expand(lines []string) []Entry {
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		entries = append(entries, Entry{Line: line, Expanded: urlrange.Expand(line)})
	}

	return entries
}

// Flatten 按顺序拼接所有展开后的 URL。
func Flatten(entries []Entry) []string {
	var urls []string
	for _, e := range entries {
		urls = append(urls, e.Expanded...)
	}

	return urls
}
