package graph

import (
	"bufio"
	"bytes"
	"io"
)

// WriteMatrix writes the adjacency matrix of s to w as rows of 0/1 tokens
// separated by single spaces, one row per line.
//
// Rendering only reads s, so writing the same Store twice produces
// identical output.
func WriteMatrix(w io.Writer, s *Store) error {
	bw := bufio.NewWriter(w)
	n := s.VertexCount()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j > 0 {
				bw.WriteByte(' ')
			}
			if s.Get(i, j) {
				bw.WriteByte('1')
			} else {
				bw.WriteByte('0')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// MatrixString returns the matrix rendering of s as a string.
func MatrixString(s *Store) string {
	var buf bytes.Buffer
	_ = WriteMatrix(&buf, s)
	return buf.String()
}
