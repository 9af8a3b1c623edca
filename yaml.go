// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cstree2d

import (
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/asvarga/cstree2d/syntax"
)

// MarshalYAML implements [yaml.Marshaler].
//
// Every element becomes a mapping with its kind and range; tokens also record
// their text, and nodes their children.
func (n Node[S]) MarshalYAML() (any, error) {
	return n.yaml(), nil
}

// MarshalYAML implements [yaml.Marshaler] by marshaling the root node.
func (t *Tree[S]) MarshalYAML() (any, error) {
	return t.Root().yaml(), nil
}

func (n Node[S]) yaml() *yaml.Node {
	out := yamlElem(n.handle)

	children := &yaml.Node{Kind: yaml.SequenceNode}
	for child := range n.ChildrenWithTokens() {
		if child.IsNode() {
			children.Content = append(children.Content, child.Node().yaml())
			continue
		}

		tok := yamlElem(child.handle)
		tok.Content = append(tok.Content,
			yamlString("text", 0),
			yamlString(child.Token().Text(), yaml.DoubleQuotedStyle),
		)
		children.Content = append(children.Content, tok)
	}

	if len(children.Content) > 0 {
		out.Content = append(out.Content, yamlString("children", 0), children)
	}
	return out
}

func yamlElem[S syntax.Syntax](h handle[S]) *yaml.Node {
	start, end := h.Range()
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			yamlString("kind", 0), yamlString(h.Kind().String(), 0),
			yamlString("range", 0), {
				Kind:  yaml.SequenceNode,
				Style: yaml.FlowStyle,
				Content: []*yaml.Node{
					yamlInt(start), yamlInt(end),
				},
			},
		},
	}
}

func yamlString(s string, style yaml.Style) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s, Style: style}
}

func yamlInt(n int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(n)}
}
