// Package main provides the entry point for the google520 hosts generator.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yhjyhjlqx/google520/internal/config"
	"github.com/yhjyhjlqx/google520/internal/domains"
	"github.com/yhjyhjlqx/google520/internal/fragment"
	"github.com/yhjyhjlqx/google520/internal/hostsfile"
)

// appVersion is set at compile time via ldflags.
var appVersion = "dev"

const doneMessage = "Google520 hosts file generated"

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Str("version", appVersion).
		Logger()

	if err := run(config.Default(), fragment.SystemClock{}, os.Stdout, log.Logger); err != nil {
		log.Fatal().Err(err).Msg("generating hosts file")
	}
}

// run loads the domains, builds the fragment, writes it to the output file and
// reports success on out.
func run(cfg *config.Config, clock fragment.Clock, out io.Writer, logger zerolog.Logger) error {
	list := domains.NewLoader(cfg.DomainsFile, cfg.Fallback()).WithLogger(logger).Load()
	content := fragment.NewBuilder(cfg.Banner, clock).Build(list, cfg.TargetIP)

	w := hostsfile.NewWriter(cfg.OutputFile)
	if err := w.Write(content); err != nil {
		return fmt.Errorf("writing %q: %w", w.Path(), err)
	}

	logger.Debug().Str("path", w.Path()).Int("domains", len(list)).Msg("fragment written")

	_, err := fmt.Fprintln(out, doneMessage)
	return err
}
