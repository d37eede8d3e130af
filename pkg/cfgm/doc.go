// Package cfgm 按层加载配置：默认值 → 配置文件 → 环境变量 → 显式设置的 CLI flags。
//
// 配置 key 由结构体的 json tag 描述，YAML 与 JSON 共用同一套 key；
// desc tag 用于生成带注释的示例文件。
//
// # 加载优先级 (从低到高)
//
//  1. 默认值 - defaultConfig 参数
//  2. 配置文件 - [WithConfigFile] 指定的文件，或 [WithConfigPaths] / [WithAppName] 搜索到的首个文件
//  3. 环境变量 - [WithEnvPrefix]，key 中的 "." 与 "-" 转为 "_" 并大写
//  4. CLI flags - [WithCommand]，key 中的 "." 转为 "-"，仅用户显式设置的 flag 生效
//
// # 示例
//
//	type Config struct {
//	    Input struct {
//	        File string `json:"file" desc:"URL 列表文件"`
//	    } `json:"input" desc:"输入"`
//	}
//
//	cfg, err := cfgm.LoadCmd(cmd, DefaultConfig(), "bulkdl",
//	    cfgm.WithEnvPrefix("BULKDL_"),
//	)
//
// 对应关系：
//   - input.file → BULKDL_INPUT_FILE → --input-file
//
// # 字符串展开
//
// 配置文件内容在解析前执行 ${VAR} 与 ${VAR:-default} 展开，
// 使用 [WithoutTemplateExpansion] 可关闭。
//
// # 生成示例
//
// [ExampleYAML] 根据默认配置生成带注释的 YAML，[MarshalJSON] 输出缩进 JSON。
package cfgm
