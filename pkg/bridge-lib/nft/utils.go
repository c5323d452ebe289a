package nft

import (
	"bytes"
	"encoding/binary"
	"io"
)

// serializeUint64 writes a uint64 in little-endian byte order to the writer.
func serializeUint64(w io.Writer, value uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], value)
	_, err := w.Write(buf[:])
	return err
}

// serializeSlice writes a raw byte slice to the writer.
func serializeSlice(w io.Writer, buf []byte) error {
	_, err := w.Write(buf)
	return err
}

// deserializeUint64 reads a little-endian uint64 from the reader.
func deserializeUint64(r *bytes.Reader) (uint64, error) {
	if r.Len() < 8 {
		return 0, io.EOF
	}
	var buf [8]byte
	if _, err := r.Read(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// deserializeInto fills buf with exactly len(buf) bytes from the reader.
func deserializeInto(r *bytes.Reader, buf []byte) error {
	if r.Len() < len(buf) {
		return io.EOF
	}
	_, err := r.Read(buf)
	return err
}
