package cfgm

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
)

// DefaultPaths 返回配置文件的默认搜索顺序，先命中者生效。
//
//  1. ./.appname.yaml
//  2. ~/.appname.yaml
//  3. /etc/appname/config.yaml
//  4. config.yaml
//  5. config/config.yaml
//
// appName 为空时只返回后两项。
func DefaultPaths(appName string) []string {
	var paths []string
	if appName != "" {
		paths = append(paths, "."+appName+".yaml")
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(home, "."+appName+".yaml"))
		}
		paths = append(paths, "/etc/"+appName+"/config.yaml")
	}

	return append(paths, "config.yaml", filepath.Join("config", "config.yaml"))
}

// Load 按优先级合并配置并解码到 T。
func Load[T any](defaultConfig T, opts ...Option) (*T, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	data := structToMap(defaultConfig)

	fileData, path, err := o.readConfigFile()
	if err != nil {
		return nil, err
	}
	if fileData != nil {
		mergeMaps(data, fileData)
		slog.Debug("Loaded config from file", "path", path, "expansion", !o.noExpansion)
	}

	leaves := collectLeaves(reflect.TypeOf(defaultConfig))
	if o.envPrefix != "" {
		applyEnv(data, o.envPrefix, leaves)
	}
	if o.cmd != nil {
		applyFlags(data, o.cmd, leaves)
	}

	var cfg T
	if err := decodeConfigMap(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return &cfg, nil
}

// LoadCmd 是面向 CLI 的 [Load]：注入 [WithCommand]，appName 非空时注入 [WithAppName]。
func LoadCmd[T any](cmd *cli.Command, defaultConfig T, appName string, opts ...Option) (*T, error) {
	base := []Option{WithCommand(cmd)}
	if appName != "" {
		base = append(base, WithAppName(appName))
	}

	return Load(defaultConfig, append(base, opts...)...)
}

func (o *options) readConfigFile() (map[string]any, string, error) {
	if o.configFile != "" {
		content, err := os.ReadFile(o.configFile)
		if err != nil {
			return nil, "", fmt.Errorf("read config file: %w", err)
		}
		data, err := o.parse(o.configFile, content)

		return data, o.configFile, err
	}

	paths := o.configPaths
	if len(paths) == 0 {
		paths = DefaultPaths(o.appName)
	}
	for _, path := range paths {
		content, err := os.ReadFile(path) //nolint:gosec // search paths are fixed or user supplied
		if err != nil {
			continue
		}
		data, err := o.parse(path, content)

		return data, path, err
	}

	slog.Debug("No config file found, using defaults")

	return nil, "", nil
}

func (o *options) parse(path string, content []byte) (map[string]any, error) {
	if !o.noExpansion {
		content = []byte(Expand(string(content), os.LookupEnv))
	}

	data, err := parseConfigBytes(path, content)
	if err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return data, nil
}

// leaf 是配置结构体中的一个叶子字段。
type leaf struct {
	key string // 点分路径，如 download.output-dir
	typ reflect.Type
}

// EnvName 返回 key 对应的环境变量名。
func EnvName(prefix, key string) string {
	return prefix + strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
}

// FlagName 返回 key 对应的 CLI flag 名。
func FlagName(key string) string {
	return strings.ReplaceAll(key, ".", "-")
}

func collectLeaves(typ reflect.Type) []leaf {
	var leaves []leaf
	walkLeaves(typ, "", &leaves)

	return leaves
}

func walkLeaves(typ reflect.Type, prefix string, leaves *[]leaf) {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := range typ.NumField() {
		field := typ.Field(i)
		key := configTagName(field)
		if key == "" || !field.IsExported() {
			continue
		}
		if prefix != "" {
			key = prefix + "." + key
		}

		if isStructType(field.Type) {
			walkLeaves(field.Type, key, leaves)

			continue
		}
		*leaves = append(*leaves, leaf{key: key, typ: field.Type})
	}
}

func applyEnv(data map[string]any, prefix string, leaves []leaf) {
	for _, l := range leaves {
		name := EnvName(prefix, l.key)
		if val, ok := os.LookupEnv(name); ok && val != "" {
			setByPath(data, l.key, val)
			slog.Debug("Loaded env binding", "env", name, "key", l.key)
		}
	}
}

// applyFlags 写入用户显式设置的 flags；未声明或未设置的 flag 被忽略。
func applyFlags(data map[string]any, cmd *cli.Command, leaves []leaf) {
	for _, l := range leaves {
		name := FlagName(l.key)
		if !cmd.IsSet(name) {
			continue
		}

		if val, ok := flagValue(cmd, name, l.typ); ok {
			setByPath(data, l.key, val)
		}
	}
}

func flagValue(cmd *cli.Command, name string, typ reflect.Type) (any, bool) {
	if typ == reflect.TypeFor[time.Duration]() {
		return cmd.Duration(name), true
	}

	switch typ.Kind() {
	case reflect.String:
		return cmd.String(name), true
	case reflect.Bool:
		return cmd.Bool(name), true
	case reflect.Int:
		return cmd.Int(name), true
	case reflect.Int64:
		return cmd.Int64(name), true
	case reflect.Float64:
		return cmd.Float64(name), true
	case reflect.Slice:
		if typ.Elem().Kind() == reflect.String {
			return cmd.StringSlice(name), true
		}
	default:
	}

	return nil, false
}
