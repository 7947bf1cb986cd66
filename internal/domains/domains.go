// Package domains reads the list of domain names to publish.
package domains

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/AdguardTeam/golibs/errors"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// commentPrefix starts a line that is skipped entirely.
const commentPrefix = "#"

// ErrInvalidEncoding is returned by [Read] for input that is not UTF-8.
const ErrInvalidEncoding errors.Error = "domains file is not valid utf-8"

// Loader loads domains from a file, falling back to a fixed list.
type Loader struct {
	path     string
	fallback []string
	logger   zerolog.Logger
}

// NewLoader creates a loader reading path. fallback is copied.
func NewLoader(path string, fallback []string) *Loader {
	return &Loader{
		path:     path,
		fallback: slices.Clone(fallback),
		logger:   zerolog.Nop(),
	}
}

// WithLogger sets the logger used to report the fallback at debug level.
func (l *Loader) WithLogger(logger zerolog.Logger) *Loader {
	l.logger = logger
	return l
}

// Load returns the domains listed in the file, in file order. If the file
// cannot be opened or read for any reason, it returns a copy of the fallback
// list. An empty file yields an empty, non-nil list.
func (l *Loader) Load() []string {
	domains, err := ReadFile(l.path)
	if err != nil {
		l.logger.Debug().Err(err).Str("path", l.path).Msg("using fallback domains")

		return slices.Clone(l.fallback)
	}

	return domains
}

// ReadFile opens path and reads domains from it with [Read].
func ReadFile(path string) (domains []string, err error) {
	// #nosec G304 -- The path comes from the built-in configuration.
	f, err := os.Open(path)
	if err != nil {
		// Don't wrap the error since it's informative enough as is.
		return nil, err
	}
	defer func() { err = errors.WithDeferred(err, f.Close()) }()

	domains, err = Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	return domains, nil
}

// Read returns the trimmed, non-empty lines of r that do not start with "#".
// A "#" later in a line is kept as part of the domain. Lines end at "\n",
// "\r\n" or a lone "\r" and have no length limit.
func Read(r io.Reader) ([]string, error) {
	lines, err := readLines(bufio.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("failed to read domains: %w", err)
	}

	domains := lo.FilterMap(lines, func(line string, _ int) (string, bool) {
		d := strings.TrimSpace(line)

		return d, d != "" && !strings.HasPrefix(d, commentPrefix)
	})

	return domains, nil
}

// readLines splits br into lines without their terminators.
func readLines(br *bufio.Reader) (lines []string, err error) {
	var sb strings.Builder
	pending := false

	flush := func() error {
		line := sb.String()
		sb.Reset()
		pending = false
		if !utf8.ValidString(line) {
			return ErrInvalidEncoding
		}

		lines = append(lines, line)

		return nil
	}

	for {
		b, readErr := br.ReadByte()
		if errors.Is(readErr, io.EOF) {
			break
		} else if readErr != nil {
			return nil, readErr
		}

		switch b {
		case '\r':
			if next, peekErr := br.Peek(1); peekErr == nil && next[0] == '\n' {
				_, _ = br.ReadByte()
			}
			fallthrough
		case '\n':
			if err = flush(); err != nil {
				return nil, err
			}
		default:
			sb.WriteByte(b)
			pending = true
		}
	}

	if pending {
		if err = flush(); err != nil {
			return nil, err
		}
	}

	return lines, nil
}
