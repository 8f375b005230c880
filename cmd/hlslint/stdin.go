package main

import (
	"bytes"
	"io"
	"os"
)

func readAllStdin() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, os.Stdin); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
