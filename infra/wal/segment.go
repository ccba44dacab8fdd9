package wal

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const headerSize = 21 // [type:1][seq:8][time:8][len:4]

type segment struct {
	path   string
	file   *os.File
	offset int64
}

func segmentPath(dir string, index int) string {
	return filepath.Join(dir, fmt.Sprintf("segment-%06d.wal", index))
}

func openSegment(dir string, index int) (*segment, error) {
	path := segmentPath(dir, index)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &segment{path: path, file: f, offset: info.Size()}, nil
}

func (s *segment) append(b []byte) error {
	n, err := s.file.Write(b)
	if err != nil {
		return err
	}
	s.offset += int64(n)
	return nil
}

func (s *segment) sync() error {
	return s.file.Sync()
}

func (s *segment) close() error {
	return s.file.Close()
}

// validLength scans a segment and returns the offset just past the last
// complete, CRC-valid record. Everything after that is a torn tail from
// a crash mid-append and is safe to truncate.
func validLength(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var good int64
	header := make([]byte, headerSize)

	for {
		if _, err := io.ReadFull(f, header); err != nil {
			return good, nil
		}
		payloadLen := binary.BigEndian.Uint32(header[17:21])

		body := make([]byte, payloadLen+4)
		if _, err := io.ReadFull(f, body); err != nil {
			return good, nil
		}

		crc := binary.BigEndian.Uint32(body[payloadLen:])
		if !CRC32Valid(append(append([]byte{}, header...), body[:payloadLen]...), crc) {
			return good, nil
		}
		good += int64(headerSize) + int64(payloadLen) + 4
	}
}

// truncateTorn cuts a segment back to its last valid record.
func truncateTorn(path string) error {
	good, err := validLength(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() == good {
		return nil
	}
	return os.Truncate(path, good)
}
