package printer

import (
	"gopkg.in/yaml.v3"

	"github.com/orx/orx-sub008/pkg/config"
)

// Section and entry order is kept by building the document node by node.

func yamlString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func (p *Printer) yamlValue(e config.EntryView) *yaml.Node {
	if !p.opts.ExpandLists || !e.List {
		return yamlString(e.Literal)
	}
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, item := range e.Items {
		seq.Content = append(seq.Content, yamlString(item))
	}
	return seq
}

func (p *Printer) yamlSection(sec config.SectionView) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	if p.opts.ShowValues {
		for _, e := range sec.Entries {
			m.Content = append(m.Content, yamlString(e.Key), p.yamlValue(e))
		}
	}
	return m
}

func (p *Printer) printYAML(secs []config.SectionView) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, sec := range secs {
		key := yamlString(sec.Name)
		if sec.Parent != "" {
			key.LineComment = "parent: " + sec.Parent
		}
		root.Content = append(root.Content, key, p.yamlSection(sec))
	}
	return p.encodeYAML(root)
}

func (p *Printer) printValueYAML(e config.EntryView) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content, yamlString(e.Key), p.yamlValue(e))
	return p.encodeYAML(root)
}

func (p *Printer) encodeYAML(root *yaml.Node) error {
	enc := yaml.NewEncoder(p.writer)
	enc.SetIndent(p.opts.IndentSize)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return err
	}
	return enc.Close()
}
