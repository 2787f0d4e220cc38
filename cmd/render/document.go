package main

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/render-runtime/errors"
)

// loadDocument reads a YAML or JSON file. JSON is a subset of YAML, so a
// single decoder covers both.
func loadDocument(path string) (*yaml.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Load("read "+path, err)
	}
	return parseDocument(data)
}

func parseDocument(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Load("parse document", err)
	}

	switch {
	case doc.Kind == 0:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null"}, nil
	case doc.Kind == yaml.DocumentNode && len(doc.Content) > 0:
		return doc.Content[0], nil
	}
	return &doc, nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// lookup follows a dotted path of mapping keys and sequence indexes.
// An empty path is the root.
func lookup(root *yaml.Node, path string) (*yaml.Node, error) {
	n := resolve(root)
	if path == "" {
		return n, nil
	}

	parts := strings.Split(path, ".")
	for i, part := range parts {
		var next *yaml.Node

		switch n.Kind {
		case yaml.MappingNode:
			for j := 0; j+1 < len(n.Content); j += 2 {
				if n.Content[j].Value == part {
					next = n.Content[j+1]
					break
				}
			}
		case yaml.SequenceNode:
			idx, err := strconv.Atoi(part)
			if err == nil && idx >= 0 && idx < len(n.Content) {
				next = n.Content[idx]
			}
		}

		if next == nil {
			return nil, errors.NotFound(errors.PhaseLoad, "path", strings.Join(parts[:i+1], "."))
		}
		n = resolve(next)
	}
	return n, nil
}

// paths lists the dotted paths of every node up to depth levels below root.
func paths(root *yaml.Node, depth int) []string {
	var out []string
	var walk func(n *yaml.Node, prefix string, level int)
	walk = func(n *yaml.Node, prefix string, level int) {
		n = resolve(n)
		if level >= depth {
			return
		}
		join := func(k string) string {
			if prefix == "" {
				return k
			}
			return prefix + "." + k
		}

		switch n.Kind {
		case yaml.MappingNode:
			for j := 0; j+1 < len(n.Content); j += 2 {
				p := join(n.Content[j].Value)
				out = append(out, p)
				walk(n.Content[j+1], p, level+1)
			}
		case yaml.SequenceNode:
			for j, c := range n.Content {
				p := join(strconv.Itoa(j))
				out = append(out, p)
				walk(c, p, level+1)
			}
		}
	}
	walk(root, "", 0)
	return out
}

func kindName(n *yaml.Node) string {
	switch resolve(n).Kind {
	case yaml.MappingNode:
		return "map"
	case yaml.SequenceNode:
		return "list"
	case yaml.ScalarNode:
		return strings.TrimPrefix(resolve(n).ShortTag(), "!!")
	}
	return "document"
}
