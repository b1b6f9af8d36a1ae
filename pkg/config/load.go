package config

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/orx/orx-sub008/internal/cfgtext"
	"github.com/orx/orx-sub008/internal/cipher"
	"github.com/orx/orx-sub008/pkg/ast"
	"github.com/orx/orx-sub008/pkg/types"
)

const memoryName = "<memory>"

// Load parses a file into the store. Included files are loaded in place.
// The current section is the same before and after the call.
func (s *Store) Load(name string) error {
	if name == "" {
		return types.Wrap(types.ErrEmptyName, "config: load")
	}
	if s.loading > s.maxDepth {
		s.log.Warn("include chain too deep", "file", name, "depth", s.loading)
		return &types.Error{Kind: types.ErrKindFormat, Msg: "config: include chain too deep at " + name}
	}

	f, err := s.fs.Open(name)
	if err != nil {
		return ioError("load", name, err)
	}
	defer f.Close()

	if s.loading == 0 {
		s.record(name)
	}
	s.log.Debug("loading config file", "file", name, "depth", s.loading)
	return s.parse(f, name)
}

// LoadFromMemory parses buf like a file. It is not recorded in the history.
func (s *Store) LoadFromMemory(buf []byte) error {
	return s.parse(bytes.NewReader(buf), memoryName)
}

// decodeStream strips the encryption tag and byte order mark. Tagged input
// is deciphered with the store key; UTF-16 input is transcoded to UTF-8.
func (s *Store) decodeStream(r io.Reader, name string) (io.Reader, error) {
	br := bufio.NewReader(r)
	if tag, _ := br.Peek(len(cipher.Tag)); cipher.HasTag(tag) {
		if len(s.key) == 0 {
			return nil, types.Wrap(types.ErrNoKey, "config: "+name+" is encrypted")
		}
		if _, err := br.Discard(len(cipher.Tag)); err != nil {
			return nil, ioError("read", name, err)
		}
		plain, err := cipher.NewReader(br, s.key)
		if err != nil {
			return nil, err
		}
		return transform.NewReader(plain, unicode.BOMOverride(transform.Nop)), nil
	}
	return transform.NewReader(br, unicode.BOMOverride(transform.Nop)), nil
}

func (s *Store) parse(r io.Reader, name string) error {
	in, err := s.decodeStream(r, name)
	if err != nil {
		return err
	}

	prev := s.current
	s.loading++
	defer func() {
		s.loading--
		if prev != nil && prev.deleted {
			prev = s.find(prev.name)
		}
		s.current = prev
	}()

	sc := cfgtext.NewScanner(in, s.chunk)
	for sc.Scan() {
		s.apply(sc.Node(), name)
	}
	if err := sc.Err(); err != nil {
		if _, typed := types.KindOf(err); typed {
			return fmt.Errorf("config: load %s: %w", name, err)
		}
		return ioError("read", name, err)
	}
	return nil
}

// apply executes one parsed line.
func (s *Store) apply(node ast.Node, file string) {
	switch n := node.(type) {
	case *ast.Include:
		if s.keepIncludes {
			s.keepInclude(n.Path)
			return
		}
		if err := s.Load(n.Path); err != nil {
			s.log.Warn("include failed", "file", file, "line", n.Line(), "include", n.Path, "error", err)
		}

	case *ast.SectionHeader:
		if n.Clear {
			if sec := s.find(n.Name); sec != nil {
				s.deleteSection(sec)
			}
		}
		s.selectHeader(n)

	case *ast.Assignment:
		if s.current == nil {
			s.log.Warn("assignment outside of any section, skipping", "file", file, "line", n.Line(), "key", n.Key)
			return
		}
		if n.Unterminated {
			s.log.Warn("block value not closed, using rest of line", "file", file, "line", n.Line(), "key", n.Key)
		}
		var err error
		if n.Append {
			err = s.appendEntry(s.current, n.Key, n.Value)
		} else {
			err = s.setEntry(s.current, n.Key, n.Value, n.Block)
		}
		if err != nil {
			s.log.Warn("cannot store value", "file", file, "line", n.Line(), "key", n.Key, "error", err)
		}

	case *ast.Invalid:
		s.log.Warn("invalid line, skipping", "file", file, "line", n.Line(), "reason", n.Reason, "text", n.Text)

	case *ast.Comment:
	}
}
