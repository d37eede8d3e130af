package ytdlp

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

var (
	progressRe    = regexp.MustCompile(`^\[download\]\s+(\d{1,3}(?:\.\d+)?)%`)
	destinationRe = regexp.MustCompile(`Destination:\s*(.+)$`)
	mergerRe      = regexp.MustCompile(`^\[Merger\] Merging formats into "(.+)"$`)
	downloadedRe  = regexp.MustCompile(`^\[download\] (.+) has already been downloaded$`)
)

// ParseProgress 从一行输出中提取下载百分比，结果截断到 0..100。
func ParseProgress(line string) (float64, bool) {
	m := progressRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return 0, false
	}

	p, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}

	return max(0, min(100, p)), true
}

// ParseDestination 从一行输出中提取输出文件路径。
func ParseDestination(line string) (string, bool) {
	line = strings.TrimSpace(line)
	for _, re := range []*regexp.Regexp{mergerRe, downloadedRe, destinationRe} {
		if m := re.FindStringSubmatch(line); m != nil {
			if path := strings.TrimSpace(m[1]); path != "" {
				return path, true
			}
		}
	}

	return "", false
}

// lineWriter 把写入的字节流按 \r 或 \n 切分为行并回调 fn。
//
// yt-dlp 在终端下用 \r 刷新进度行，因此两者都视为行结束。
type lineWriter struct {
	mu  sync.Mutex
	buf []byte
	fn  func(line string)
}

func newLineWriter(fn func(line string)) *lineWriter {
	return &lineWriter{fn: fn}
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexAny(w.buf, "\r\n")
		if i < 0 {
			break
		}
		w.emit(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Flush 输出末尾不带换行的残留内容。
func (w *lineWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.emit(w.buf)
	w.buf = nil
}

func (w *lineWriter) emit(b []byte) {
	if len(bytes.TrimSpace(b)) == 0 {
		return
	}
	w.fn(string(b))
}
