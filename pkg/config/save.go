package config

import (
	"io"
	"os"

	"github.com/orx/orx-sub008/internal/cfgtext"
	"github.com/orx/orx-sub008/internal/cipher"
	"github.com/orx/orx-sub008/pkg/types"
)

const saveFlags = os.O_RDWR | os.O_CREATE | os.O_TRUNC

// Save writes the store to name, the main file when name is empty. An
// existing file is overwritten. filter may be nil to save everything.
func (s *Store) Save(name string, useEncryption bool, filter types.SaveFilter) error {
	if name == "" {
		name = s.GetMainFileName()
	}
	if useEncryption && len(s.key) == 0 {
		return types.Wrap(types.ErrNoKey, "config: save "+name)
	}

	f, err := s.fs.OpenFile(name, saveFlags, 0o644)
	if err != nil {
		return ioError("save", name, err)
	}
	if err := s.Export(f, useEncryption, filter); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return ioError("save", name, err)
	}
	s.log.Debug("saved config file", "file", name, "encrypted", useEncryption)
	return nil
}

// Export writes the store as config text. Sections come in creation order;
// filter(section, "", enc) selects a section and filter(section, key, enc)
// selects one of its entries. Include lines kept by KeepIncludes are written
// back after the entry that preceded them.
func (s *Store) Export(w io.Writer, useEncryption bool, filter types.SaveFilter) error {
	if useEncryption && len(s.key) == 0 {
		return types.Wrap(types.ErrNoKey, "config: export")
	}

	var enc io.WriteCloser
	if useEncryption {
		var err error
		if enc, err = cipher.NewWriter(w, s.key); err != nil {
			return &types.Error{Kind: types.ErrKindIO, Msg: "config: export", Err: err}
		}
		w = enc
	}

	em := cfgtext.NewEmitter(w)
	incs := newIncludeWriter(em, s.includes)
	incs.at(nil, "")
	for _, sec := range s.sections {
		if filter != nil && !filter(sec.name, "", useEncryption) {
			incs.endSection(sec, false)
			continue
		}
		em.Section(sec.name, sec.parent, sec.noParent)
		incs.at(sec, "")
		for _, e := range sec.entries {
			if filter == nil || filter(sec.name, e.key, useEncryption) {
				e.value.Restore()
				em.Entry(e.key, e.value.Literal(), e.value.IsBlock())
				e.value.Decode()
			}
			incs.at(sec, e.key)
		}
		incs.endSection(sec, true)
		em.Blank()
	}
	incs.rest()
	if err := em.Flush(); err != nil {
		return &types.Error{Kind: types.ErrKindIO, Msg: "config: export", Err: err}
	}
	if enc != nil {
		if err := enc.Close(); err != nil {
			return &types.Error{Kind: types.ErrKindIO, Msg: "config: export", Err: err}
		}
	}
	return nil
}

// CopyFile re-encodes src into dst: encrypted with key, or plain when key is
// nil. An encrypted src is deciphered with the store key.
func (s *Store) CopyFile(dst, src string, key []byte) error {
	return s.MergeFiles(dst, []string{src}, key)
}

// MergeFiles writes the decoded contents of srcs, in order, into dst.
// The output is encrypted with key unless key is nil.
func (s *Store) MergeFiles(dst string, srcs []string, key []byte) error {
	if dst == "" || len(srcs) == 0 {
		return types.Wrap(types.ErrEmptyName, "config: merge files")
	}
	for _, src := range srcs {
		if src == "" {
			return types.Wrap(types.ErrEmptyName, "config: merge files")
		}
		if src == dst {
			return types.Wrap(types.ErrInvalidName, "config: merge "+src+" into itself")
		}
	}

	out, err := s.fs.OpenFile(dst, saveFlags, 0o644)
	if err != nil {
		return ioError("merge", dst, err)
	}
	defer out.Close()

	var w io.Writer = out
	var enc io.WriteCloser
	if key != nil {
		if enc, err = cipher.NewWriter(out, key); err != nil {
			return &types.Error{Kind: types.ErrKindInvalid, Msg: "config: merge into " + dst, Err: err}
		}
		w = enc
	}

	for i, src := range srcs {
		if i > 0 {
			if _, err := io.WriteString(w, cfgtext.EOL); err != nil {
				return ioError("merge", dst, err)
			}
		}
		if err := s.copyDecoded(w, src); err != nil {
			return err
		}
	}
	if enc != nil {
		if err := enc.Close(); err != nil {
			return ioError("merge", dst, err)
		}
	}
	return out.Close()
}

func (s *Store) copyDecoded(w io.Writer, src string) error {
	f, err := s.fs.Open(src)
	if err != nil {
		return ioError("merge", src, err)
	}
	defer f.Close()

	r, err := s.decodeStream(f, src)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, r); err != nil {
		return ioError("merge", src, err)
	}
	return nil
}
