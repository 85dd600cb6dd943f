package utils

import (
	"io"
	"os"
)

// LoadFile reads the file at filename into a byte slice.
func LoadFile(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
