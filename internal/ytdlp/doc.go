// Package ytdlp 调用外部 yt-dlp 可执行文件完成单个 URL 的下载。
//
// 进程以参数向量方式启动（不经过 shell），URL 中的任何字符都不会被解释。
// 额外选项字符串按 shell 分词规则拆分后原样传给 yt-dlp。
//
// 下载过程中 stdout/stderr 按行（\r 或 \n 结尾）回调，并从中解析：
//   - 进度：[download]  42.1% of ...
//   - 输出文件：Destination: ... / Merging formats into "..." / ... has already been downloaded
package ytdlp
