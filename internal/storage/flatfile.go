// Package storage implements the line-oriented flat-file persistence
// primitive: one UTF-8 text file per collection, one record per line, keyed
// by the first '|'-separated field. Every operation is a full-file scan.
//
// I/O failures never escape as errors. They are logged and reported as an
// empty read or an unsuccessful write, so callers cannot distinguish an
// unreadable file from an empty one. That mirrors the availability-first
// contract of the rest of the core.
package storage

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Collection file names inside the data directory.
const (
	UsersFile    = "users.txt"
	ListingsFile = "listings.txt"
	BookingsFile = "bookings.txt"
	ReviewsFile  = "reviews.txt"
	MessagesFile = "messages.txt"
)

const delimiter = "|"

// Store is a keyed line store rooted at a single data directory.
//
// All mutations on one Store serialize through an internal mutex and full
// rewrites go through a temp file and rename, so concurrent writers within
// one process cannot interleave a read-modify-write cycle or leave a
// half-written file behind. There is still no cross-process coordination.
type Store struct {
	dir string
	log *logrus.Logger

	mu sync.Mutex
}

func NewStore(dir string, log *logrus.Logger) *Store {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Store{dir: dir, log: log}
}

// Dir returns the data directory the store is rooted at.
func (s *Store) Dir() string { return s.dir }

// EnsureFiles creates the data directory and an empty file for every
// collection that does not exist yet.
func (s *Store) EnsureFiles() bool {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.log.WithError(err).WithField("dir", s.dir).Error("creating data directory")
		return false
	}

	ok := true
	for _, name := range []string{UsersFile, ListingsFile, BookingsFile, ReviewsFile, MessagesFile} {
		path := filepath.Join(s.dir, name)
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			s.log.WithError(err).WithField("file", path).Error("creating data file")
			ok = false
			continue
		}
		f.Close()
	}
	return ok
}

// ReadAll returns every non-blank line of the named collection in file
// order. A missing or unreadable file reads as empty.
func (s *Store) ReadAll(name string) []string {
	path := filepath.Join(s.dir, name)

	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.WithError(err).WithField("file", path).Error("reading data file")
		}
		return nil
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		s.log.WithError(err).WithField("file", path).Error("scanning data file")
	}
	return lines
}

// Append adds one line at the end of the named collection, creating the
// file if needed. It reports whether the write succeeded.
func (s *Store) Append(name, line string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		s.log.WithError(err).WithField("file", path).Error("opening data file for append")
		return false
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		s.log.WithError(err).WithField("file", path).Error("appending to data file")
		return false
	}
	return true
}

// OverwriteAll replaces the named collection's content with the given
// lines. The new content is written to a temp file in the same directory
// and renamed over the target, so a crash mid-write leaves the previous
// content intact.
func (s *Store) OverwriteAll(name string, lines []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.overwriteLocked(name, lines)
}

func (s *Store) overwriteLocked(name string, lines []string) bool {
	path := filepath.Join(s.dir, name)

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		s.log.WithError(err).WithField("file", path).Error("creating temp file")
		return false
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			s.log.WithError(err).WithField("file", tmpName).Error("writing temp file")
			tmp.Close()
			os.Remove(tmpName)
			return false
		}
	}
	if err := w.Flush(); err != nil {
		s.log.WithError(err).WithField("file", tmpName).Error("flushing temp file")
		tmp.Close()
		os.Remove(tmpName)
		return false
	}
	if err := tmp.Close(); err != nil {
		s.log.WithError(err).WithField("file", tmpName).Error("closing temp file")
		os.Remove(tmpName)
		return false
	}

	if err := os.Rename(tmpName, path); err != nil {
		s.log.WithError(err).WithField("file", path).Error("replacing data file")
		os.Remove(tmpName)
		return false
	}
	return true
}

// DeleteByKey removes every line whose key field equals id and reports
// whether any line matched. Keys are expected unique, so removing all
// matches and removing one are the same operation in practice.
func (s *Store) DeleteByKey(name, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.readAllLocked(name)
	kept := lines[:0]
	found := false
	for _, line := range lines {
		if keyOf(line) == id {
			found = true
			continue
		}
		kept = append(kept, line)
	}

	if !found {
		return false
	}
	return s.overwriteLocked(name, kept)
}

// UpdateByKey replaces every line whose key field equals id with newLine
// and reports whether any line matched.
func (s *Store) UpdateByKey(name, id, newLine string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.readAllLocked(name)
	found := false
	for i, line := range lines {
		if keyOf(line) == id {
			lines[i] = newLine
			found = true
		}
	}

	if !found {
		return false
	}
	return s.overwriteLocked(name, lines)
}

// readAllLocked exists so the read-modify-write operations scan under the
// same lock they rewrite under.
func (s *Store) readAllLocked(name string) []string {
	// ReadAll takes no lock itself; reads are plain full scans.
	return s.ReadAll(name)
}

func keyOf(line string) string {
	if i := strings.Index(line, delimiter); i >= 0 {
		return line[:i]
	}
	return line
}
