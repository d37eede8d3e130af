package cfgm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	yamlv3 "go.yaml.in/yaml/v3"
)

// ExampleYAML 根据 cfg 生成带注释的 YAML 示例，desc tag 作为注释。
func ExampleYAML[T any](cfg T) ([]byte, error) {
	val := reflect.Indirect(reflect.ValueOf(cfg))
	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cfgm: %T is not a struct", cfg)
	}

	root, err := mappingNode(val)
	if err != nil {
		return nil, err
	}
	root.HeadComment = "配置示例文件，复制后按需修改"

	var buf bytes.Buffer
	enc := yamlv3.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&yamlv3.Node{Kind: yamlv3.DocumentNode, Content: []*yamlv3.Node{root}}); err != nil {
		return nil, fmt.Errorf("encode example: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode example: %w", err)
	}

	return buf.Bytes(), nil
}

func mappingNode(val reflect.Value) (*yamlv3.Node, error) {
	node := &yamlv3.Node{Kind: yamlv3.MappingNode}
	typ := val.Type()
	for i := range typ.NumField() {
		field := typ.Field(i)
		key := configTagName(field)
		if key == "" || !field.IsExported() {
			continue
		}

		keyNode := &yamlv3.Node{Kind: yamlv3.ScalarNode, Value: key}
		fv := reflect.Indirect(val.Field(i))

		var valueNode *yamlv3.Node
		if isStructType(field.Type) {
			if !fv.IsValid() {
				continue
			}
			child, err := mappingNode(fv)
			if err != nil {
				return nil, err
			}
			valueNode = child
			keyNode.HeadComment = field.Tag.Get("desc")
		} else {
			scalar, err := scalarNode(fv)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			valueNode = scalar
			valueNode.LineComment = field.Tag.Get("desc")
		}

		node.Content = append(node.Content, keyNode, valueNode)
	}

	return node, nil
}

func scalarNode(val reflect.Value) (*yamlv3.Node, error) {
	if val.Type() == durationType {
		return &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!str", Value: time.Duration(val.Int()).String()}, nil
	}

	node := &yamlv3.Node{}
	if err := node.Encode(val.Interface()); err != nil {
		return nil, err
	}

	return node, nil
}

// MarshalJSON 以缩进 JSON 输出 cfg，key 与配置文件一致。
func MarshalJSON[T any](cfg T) ([]byte, error) {
	return json.MarshalIndent(structToMap(cfg), "", "  ")
}
