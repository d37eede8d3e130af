// Package urlrange 展开 URL 中的数字区间占位符。
//
// 区间占位符的形式为 [start-end]，start 与 end 均为非负十进制整数：
//
//	http://example.com/ep[1-3].html
//
// 展开为：
//
//	http://example.com/ep1.html
//	http://example.com/ep2.html
//	http://example.com/ep3.html
//
// # 语义说明
//
//  1. 仅最左侧的第一个占位符决定区间边界
//  2. 与该占位符文本完全相同的所有出现位置都会被替换
//  3. 其他不同的占位符原样保留，不做组合展开
//  4. start > end 时结果为空切片
//  5. 不匹配（含非数字、超出 int 范围）时原样返回单元素切片
//
// 详见 [Expand] 文档。
package urlrange
