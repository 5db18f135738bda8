// Package brio is the lexical front end of the Brio scripting language
// toolchain: it turns trees of .brio source files into classified token
// streams for the downstream parser/compiler.
package brio

import (
	"io/fs"
	"strings"

	"github.com/brio-lang/brio/lexer"
)

// Options that affect codebase loading; pass an empty struct to get
// default options.
type Options struct {
	// if this is set, documents containing lexical errors are still returned
	// and it's up to the caller to know what one is doing..
	PartialScanResults bool

	// Extension overrides the file suffix matched while scanning; empty means
	// .brio. A missing leading dot is added.
	Extension string
}

// Codebase is the scanned form of a source tree: one token document per
// source file, in stable walk order.
type Codebase struct {
	ScannedFiles []string // mainly for use in error messages etc
	Documents    []*lexer.Document
}

// Load scans every source file in the given filesystems into token documents
// (files matching *.brio unless Options.Extension says otherwise).
// Lexical errors across all files are collected and returned as a single
// LexErrors value, unless PartialScanResults is set in which case the
// documents are returned as-is with their error lists intact.
func Load(opts Options, fsys ...fs.FS) (result Codebase, err error) {
	ext := opts.Extension
	if ext == "" {
		ext = lexer.DefaultExtension
	} else if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	filenames, docs, err := lexer.ScanFilesystemsExt(fsys, ext)
	if err != nil {
		return Codebase{}, err
	}

	var errs []lexer.Error
	for _, d := range docs {
		errs = append(errs, d.Errors...)
	}
	if len(errs) > 0 && !opts.PartialScanResults {
		return Codebase{}, LexErrors{Errors: errs}
	}

	result.ScannedFiles = filenames
	result.Documents = docs
	return result, nil
}

// MustLoad is Load for use at program startup with a source tree that is
// known to be good, e.g. embedded via the `embed` go feature.
func MustLoad(opts Options, fsys ...fs.FS) Codebase {
	result, err := Load(opts, fsys...)
	if err != nil {
		panic(err)
	}
	return result
}
