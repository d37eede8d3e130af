package ytdlp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// DefaultReleaseURL yt-dlp 最新发布版的下载地址前缀。
const DefaultReleaseURL = "https://github.com/yt-dlp/yt-dlp/releases/latest/download"

// ErrNotFound 找不到 yt-dlp 可执行文件。
var ErrNotFound = errors.New("yt-dlp executable not found")

// BinaryName 返回当前平台上的本地可执行文件名。
func BinaryName() string {
	if runtime.GOOS == "windows" {
		return "yt-dlp.exe"
	}

	return "yt-dlp"
}

// AssetName 返回 goos 对应的发布资产文件名。
func AssetName(goos string) string {
	switch goos {
	case "windows":
		return "yt-dlp.exe"
	case "darwin":
		return "yt-dlp_macos"
	default:
		return "yt-dlp"
	}
}

// LocalDir 返回当前程序所在目录，作为 yt-dlp 的本地安装位置。
func LocalDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}

	return filepath.Dir(exe)
}

// Resolve 确定要调用的 yt-dlp 路径。
//
// 查找顺序：
//  1. configured 非空：含路径分隔符时必须存在，否则在 PATH 中查找
//  2. localDir 下的 [BinaryName]
//  3. PATH 中的 [BinaryName]
func Resolve(configured, localDir string) (string, error) {
	if configured != "" {
		if strings.ContainsAny(configured, `/\`) {
			if isFile(configured) {
				return configured, nil
			}

			return "", fmt.Errorf("%w: %s", ErrNotFound, configured)
		}

		path, err := exec.LookPath(configured)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrNotFound, configured)
		}

		return path, nil
	}

	if localDir != "" {
		local := filepath.Join(localDir, BinaryName())
		if isFile(local) {
			return local, nil
		}
	}

	path, err := exec.LookPath(BinaryName())
	if err != nil {
		return "", ErrNotFound
	}

	return path, nil
}

func isFile(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.Mode().IsRegular()
}

// Fetch 下载当前平台的 yt-dlp 到 destDir，返回安装后的路径。
//
// 先写入同目录临时文件，完成后再原子替换，失败不会留下半个可执行文件。
func Fetch(ctx context.Context, client *http.Client, baseURL, destDir string) (path string, err error) {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultReleaseURL
	}
	url := strings.TrimRight(baseURL, "/") + "/" + AssetName(runtime.GOOS)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %s: unexpected status code: %d", url, resp.StatusCode)
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", destDir, err)
	}

	tmp, err := os.CreateTemp(destDir, ".yt-dlp-*.part")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err = os.Chmod(tmp.Name(), 0o755); err != nil { //nolint:gosec // executable
		return "", fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}

	path = filepath.Join(destDir, BinaryName())
	if err = os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("install %s: %w", path, err)
	}

	return path, nil
}
