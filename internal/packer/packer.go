// Package packer implements the lossless compression applied to portable-map
// payloads at the transport and storage boundary. Pack followed by Unpack
// always reconstructs the input exactly.
package packer

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// zstdEncoder and zstdDecoder are reused across calls to avoid repeated
// initialization overhead. Both are safe for concurrent use.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
	)
	if err != nil {
		panic("packer: zstd encoder initialization failed: " + err.Error())
	}

	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("packer: zstd decoder initialization failed: " + err.Error())
	}
}

// Pack compresses data. The output always carries a zstd frame, even when
// the input is incompressible, so Unpack never needs out-of-band size
// information.
func Pack(data []byte) []byte {
	return zstdEncoder.EncodeAll(data, nil)
}

// Unpack decompresses data produced by Pack.
func Unpack(data []byte) ([]byte, error) {
	out, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}
	return out, nil
}
