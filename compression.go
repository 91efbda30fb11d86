package ngsld

import (
	"bufio"
	"compress/bzip2"
	"compress/zlib"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

// Encoding indicates how (and whether) an input stream is compressed.
type Encoding byte

const (
	EncodingNone Encoding = iota
	EncodingGzip
	EncodingZip
	EncodingXZ
	EncodingZ
	EncodingBZip2
)

// Byte code signatures from https://stackoverflow.com/a/19127748/199475
var encodingSigs = map[Encoding][]byte{
	EncodingGzip:  {0x1f, 0x8b, 0x08},
	EncodingZip:   {0x50, 0x4b, 0x03, 0x04},
	EncodingXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	EncodingZ:     {0x1f, 0x9d},
	EncodingBZip2: {0x42, 0x5a, 0x68},
}

// detectEncoding sniffs the leading magic bytes of the stream without
// consuming them, so the caller can hand the same reader to the matching
// decompressor.
func detectEncoding(br *bufio.Reader) (Encoding, error) {
	buff, err := br.Peek(6)
	if err != nil && err != io.EOF {
		return EncodingNone, err
	}

	// Match known signatures
Outer:
	for enc, sig := range encodingSigs {
		if len(buff) < len(sig) {
			continue
		}
		for position := range sig {
			if buff[position] != sig[position] {
				continue Outer
			}
		}
		return enc, nil
	}

	return EncodingNone, nil
}

// newDecoder wraps the stream in the decompressor matching its magic bytes.
// A stream with no recognized signature is assumed to be uncompressed and
// is returned as-is.
func newDecoder(br *bufio.Reader) (io.Reader, error) {
	enc, err := detectEncoding(br)
	if err != nil {
		return nil, err
	}

	switch enc {
	case EncodingGzip:
		return gzip.NewReader(br)
	case EncodingZip:
		return zipstream.NewReader(br), nil
	case EncodingXZ:
		return xz.NewReader(br, 0)
	case EncodingZ:
		return zlib.NewReader(br)
	case EncodingBZip2:
		return bzip2.NewReader(br), nil
	}

	return br, nil
}
