package ngsld

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/genomisc"
	"github.com/carbocation/pfx"
)

// lineBufferSize bounds a single text line. A line that does not fit is
// reported as ErrLineTooLong rather than silently split across reads.
const lineBufferSize = 8 << 20

// FileReader is a forward-only reader over a GENO or POS file. It
// decompresses transparently based on the file's magic bytes, serves whole
// trimmed lines in text mode or fixed-size records in binary mode, and can
// verify that the stream is exhausted once the declared number of sites has
// been consumed. It is not restartable.
type FileReader struct {
	Path string

	src     io.Closer
	buf     *bufio.Reader
	closers []io.Closer
}

// Open opens a local file or, for gs:// paths, a Google Storage object
// using default credentials. Failure to open is reported before any read is
// attempted, distinct from all later parse errors.
func Open(path string) (*FileReader, error) {
	var client *storage.Client
	if strings.HasPrefix(path, "gs://") {
		var err error
		client, err = storage.NewClient(context.Background())
		if err != nil {
			return nil, pfx.Err(err)
		}
	}

	return OpenWithClient(path, client)
}

// OpenWithClient is Open with a caller-owned storage client, which may be
// nil for local paths.
func OpenWithClient(path string, client *storage.Client) (*FileReader, error) {
	src, err := genomisc.MaybeOpenSeekerFromGoogleStorage(path, client)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("cannot open %s: %w", path, err))
	}

	br := bufio.NewReaderSize(src, lineBufferSize)
	dec, err := newDecoder(br)
	if err != nil {
		src.Close()
		return nil, pfx.Err(fmt.Errorf("cannot open %s: %w", path, err))
	}

	r := &FileReader{Path: path, src: src}
	if dec == io.Reader(br) {
		r.buf = br
	} else {
		if c, ok := dec.(io.Closer); ok {
			r.closers = append(r.closers, c)
		}
		r.buf = bufio.NewReaderSize(dec, lineBufferSize)
	}

	return r, nil
}

// NextLine returns the next line with its trailing newline (and any
// carriage return) removed. io.EOF signals a clean end of stream;
// ErrLineTooLong signals a line that did not fit in the read buffer.
func (r *FileReader) NextLine() (string, error) {
	s, err := r.buf.ReadSlice('\n')
	switch {
	case err == bufio.ErrBufferFull:
		return "", fmt.Errorf("%s: %w", r.Path, ErrLineTooLong)
	case err == io.EOF:
		if len(s) == 0 {
			return "", io.EOF
		}
		// Final line without a trailing newline.
	case err != nil:
		return "", pfx.Err(err)
	}

	return strings.TrimRight(string(s), "\r\n"), nil
}

// ReadFull fills buf from the stream, failing with ErrTruncated if the
// stream ends first.
func (r *FileReader) ReadFull(buf []byte) error {
	if _, err := io.ReadFull(r.buf, buf); err != nil {
		return fmt.Errorf("%s: %w (%v)", r.Path, ErrTruncated, err)
	}
	return nil
}

// ExpectEOF probes a single byte and requires the stream to be exhausted.
// Any leftover byte means the declared site count undershoots the file.
func (r *FileReader) ExpectEOF() error {
	if _, err := r.buf.ReadByte(); err == nil {
		return fmt.Errorf("%s: %w", r.Path, ErrTrailingData)
	} else if err != io.EOF {
		return pfx.Err(err)
	}
	return nil
}

func (r *FileReader) Close() error {
	for _, c := range r.closers {
		c.Close()
	}
	return r.src.Close()
}
