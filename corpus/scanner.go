// Copyright 2026 The fast-align-go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package corpus

import (
	"bufio"
	"fmt"
	"os"
)

// Scanner reads the corpus file one line at a time and can be reopened
// from the start, which the EM driver needs once per training iteration
// (§5: "exactly one open read handle to the input file per iteration,
// acquired at iteration start and released at its end").
type Scanner struct {
	path    string
	file    *os.File
	scanner *bufio.Scanner
	err     error
}

// NewScanner opens path for the first time.
func NewScanner(path string) (*Scanner, error) {
	s := &Scanner{path: path}
	if err := s.Reopen(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reopen closes any currently open handle and opens the corpus file from
// the beginning again. Every exit path (including on error) releases the
// previous handle first.
func (s *Scanner) Reopen() error {
	if s.file != nil {
		s.file.Close()
		s.file = nil
		s.scanner = nil
	}
	s.err = nil
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("failed to open corpus file %s: %w", s.path, err)
	}
	s.file = f
	s.scanner = bufio.NewScanner(f)
	return nil
}

// Scan advances to the next line, returning false at EOF or on error.
func (s *Scanner) Scan() bool {
	if s.scanner == nil {
		return false
	}
	if s.scanner.Scan() {
		return true
	}
	s.err = s.scanner.Err()
	return false
}

// Text returns the current line.
func (s *Scanner) Text() string {
	if s.scanner == nil {
		return ""
	}
	return s.scanner.Text()
}

// Err returns the first error encountered while scanning.
func (s *Scanner) Err() error {
	return s.err
}

// Close releases the currently open file handle, if any.
func (s *Scanner) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	s.scanner = nil
	return err
}
