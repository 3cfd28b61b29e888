// 3 Aug 2020

package seq

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/neff/pkg/seq/zwrap"
)

// mapFile maps a file into memory. The caller has to call the returned
// function when finished. A file of zero length gives an empty slice,
// since there is nothing to map.
func mapFile(fname string) ([]byte, func(), error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, nil, err
	}
	fi, err := fp.Stat()
	if err != nil {
		fp.Close()
		return nil, nil, err
	}
	if fi.Size() == 0 {
		fp.Close()
		return nil, func() {}, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		fp.Close()
		return nil, nil, fmt.Errorf("mapping %s: %w", fname, err)
	}
	return mm, func() { mm.Unmap(); fp.Close() }, nil
}

// Readfile takes a filename and reads sequences from it. The format
// comes from the file name and gzipped files are fine.
func Readfile(fname string, s_opts *Options) (*SeqGrp, error) {
	format, err := FormatOf(fname)
	if err != nil {
		return nil, err
	}
	data, unmap, err := mapFile(fname)
	if err != nil {
		return nil, err
	}
	defer unmap()
	rdr, err := zwrap.WrapMaybe(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	defer rdr.Close()
	seqgrp, err := Read(rdr, format, s_opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return seqgrp, nil
}

// ReadFiles reads several files and merges them, keeping the first copy
// of each distinct sequence. Files with no sequences are skipped.
// If there are more than maxDepth sequences, we stop reading files, but
// still return everything from the last file read. maxDepth < 1 means no
// limit.
func ReadFiles(fnames []string, maxDepth int, s_opts *Options) (*SeqGrp, error) {
	var seqgrp *SeqGrp
	for _, fname := range fnames {
		sg, err := Readfile(fname, s_opts)
		if errors.Is(err, ErrNoSeqs) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if s_opts.OmitQueryGaps {
			sg.OmitQueryGaps()
		}
		if seqgrp == nil {
			seqgrp = new(SeqGrp)
		}
		if err := seqgrp.Merge(sg); err != nil {
			return nil, fmt.Errorf("%s: %w", fname, err)
		}
		if maxDepth > 0 && seqgrp.GetNSeq() > maxDepth {
			break
		}
	}
	if seqgrp == nil {
		return nil, ErrNoSeqs
	}
	return seqgrp, nil
}

// WriteToF writes sequences to a file in the format given by the file
// extension. A name ending in .gz gets compressed. With DryRun, nothing
// is written.
func WriteToF(fname string, seqgrp *SeqGrp, s_opts *Options) (err error) {
	format, err := FormatOf(fname)
	if err != nil {
		return err
	}
	if s_opts.DryRun {
		return seqgrp.Write(io.Discard, format)
	}
	fp, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("creating output sequence file: %w", err)
	}
	defer func() {
		if e := fp.Close(); err == nil {
			err = e
		}
	}()
	if !strings.HasSuffix(fname, ".gz") {
		return seqgrp.Write(fp, format)
	}
	zw := gzip.NewWriter(fp)
	if err = seqgrp.Write(zw, format); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}
