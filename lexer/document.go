package lexer

import (
	"crypto/sha256"
	"fmt"
	"io/fs"
	"strings"
)

// Document holds the complete token stream of one source file together with
// any lexical errors encountered while producing it. The input is retained so
// lexemes stay valid and offending lines can be rendered for diagnostics.
type Document struct {
	File   FileRef
	Input  string
	Tokens []Token
	Errors []Error
}

// ScanString pulls a fresh scanner to EOF and collects the result. The final
// entry in Tokens is always the EOFToken; error tokens are kept in the stream
// and additionally recorded in Errors with their positions. Scanning is
// deterministic: the same input always yields the same document.
func ScanString(file FileRef, input string) *Document {
	result := &Document{File: file, Input: input}
	s := NewScanner(file, input)
	for {
		t := s.NextToken()
		result.Tokens = append(result.Tokens, t)
		if t.Kind == ErrorToken {
			result.Errors = append(result.Errors, Error{Pos: s.Pos(t), Message: t.Lexeme})
		}
		if t.Kind == EOFToken {
			return result
		}
	}
}

func (d *Document) HasErrors() bool {
	return len(d.Errors) > 0
}

// Pos returns the position of the token's start within the document, line and
// column both computed from the token's Offset.
func (d *Document) Pos(t Token) Pos {
	return Pos{
		File: d.File,
		Line: lineOf(d.Input, t.Offset),
		Col:  t.Offset - lineStart(d.Input, t.Offset) + 1,
	}
}

// SourceLine returns the text of the line the token starts on, without the
// trailing newline. Meant for diagnostic rendering.
func (d *Document) SourceLine(t Token) string {
	start := lineStart(d.Input, t.Offset)
	end := t.Offset
	for end < len(d.Input) && d.Input[end] != '\n' {
		end++
	}
	return d.Input[start:end]
}

// DefaultExtension is the file suffix ScanFilesystems matches.
const DefaultExtension = ".brio"

// ScanFilesystems iterates through a list of filesystems and scans all files
// matching `*.brio`, returning one document per file.
//
// err will only report errors related to filesystems/reading. Errors related
// to scanning stay inside the returned documents.
func ScanFilesystems(fslst []fs.FS) (filenames []string, docs []*Document, err error) {
	return ScanFilesystemsExt(fslst, DefaultExtension)
}

// ScanFilesystemsExt is ScanFilesystems with a custom file suffix, for source
// trees that use an extension other than .brio.
func ScanFilesystemsExt(fslst []fs.FS, suffix string) (filenames []string, docs []*Document, err error) {
	// We are being passed several *filesystems* here. It may be easy to pass
	// in the same directory twice but that should not be encouraged, so if we
	// get the same hash from two files, return an error.
	hashes := make(map[[32]byte]string)

	for fidx, fsys := range fslst {
		// WalkDir is in lexical order according to docs, so output is stable
		err = fs.WalkDir(fsys, ".",
			func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				// Skip over any hidden directories; in particular .git
				if strings.HasPrefix(path, ".") || strings.Contains(path, "/.") {
					return nil
				}
				if !strings.HasSuffix(path, suffix) {
					return nil
				}

				buf, err := fs.ReadFile(fsys, path)
				if err != nil {
					return err
				}

				// protect against same file being referenced from 2 identical
				// file systems.. or just the same file included twice
				pathDesc := fmt.Sprintf("fs[%d]:%s", fidx, path)
				hash := sha256.Sum256(buf)
				existingPathDesc, hashExists := hashes[hash]
				if hashExists {
					return fmt.Errorf("file %s has exact same contents as %s (possibly in different filesystems)",
						pathDesc, existingPathDesc)
				}
				hashes[hash] = pathDesc

				filenames = append(filenames, pathDesc)
				docs = append(docs, ScanString(FileRef(path), string(buf)))
				return nil
			})
		if err != nil {
			return
		}
	}
	return
}
