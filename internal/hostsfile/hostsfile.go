// Package hostsfile renders hosts entries and writes the generated fragment
// to disk.
package hostsfile

import (
	"fmt"
	"io"
	"os"

	"github.com/AdguardTeam/golibs/errors"
	"github.com/samber/lo"
)

// DefaultPerm is the permission used when the output file is created.
const DefaultPerm os.FileMode = 0o644

// ErrEmptyPath is returned by [Writer.Write] when no output path is set.
const ErrEmptyPath errors.Error = "empty output path"

// Entry maps a single domain to an IP address.
type Entry struct {
	IP     string
	Domain string
}

// String returns the entry as a hosts line, "<ip> <domain>".
func (e Entry) String() string {
	return e.IP + " " + e.Domain
}

// EntriesFor maps every domain to ip, keeping the order of domains.
func EntriesFor(ip string, domains []string) []Entry {
	return lo.Map(domains, func(d string, _ int) Entry {
		return Entry{IP: ip, Domain: d}
	})
}

// Writer writes a fragment to a fixed path, replacing any previous content.
type Writer struct {
	path string
	perm os.FileMode
}

// NewWriter creates a writer for path using [DefaultPerm].
func NewWriter(path string) *Writer {
	return &Writer{
		path: path,
		perm: DefaultPerm,
	}
}

// Path returns the output path.
func (w *Writer) Path() string {
	return w.path
}

// Write creates or truncates the output file and writes content to it. The
// file is closed on every path and a close error is reported if nothing else
// failed first.
func (w *Writer) Write(content string) (err error) {
	if w.path == "" {
		return ErrEmptyPath
	}

	// #nosec G304 -- The output path comes from the built-in configuration.
	f, err := os.OpenFile(w.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, w.perm)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer func() { err = errors.WithDeferred(err, f.Close()) }()

	if _, err = io.WriteString(f, content); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}
