package core

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

const readBufferSize = 32 * 1024

// CountLines counts '\n' terminators plus a trailing fragment without one.
// An empty reader has zero lines.
func CountLines(r io.Reader) (int, error) {
	buf := make([]byte, readBufferSize)
	count := 0
	var last byte
	read := false

	for {
		n, err := r.Read(buf)
		if n > 0 {
			count += bytes.Count(buf[:n], []byte{'\n'})
			last = buf[n-1]
			read = true
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, err
		}
	}

	if read && last != '\n' {
		count++
	}
	return count, nil
}

func countFile(path string) (int, time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, time.Time{}, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, time.Time{}, err
	}

	lines, err := CountLines(f)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, info.ModTime(), nil
}
