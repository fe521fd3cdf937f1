package mkvtoolnix

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/wagiedev/mkvtoolnix-go/internal/args"
	"github.com/wagiedev/mkvtoolnix-go/internal/cli"
	"github.com/wagiedev/mkvtoolnix-go/internal/identification"
	"github.com/wagiedev/mkvtoolnix-go/internal/language"
	"github.com/wagiedev/mkvtoolnix-go/internal/subprocess"
)

// Toolnix runs mkvmerge, mkvpropedit and mkvextract.
//
// A Toolnix is safe for concurrent use. Every execution spawns its own
// process; the only shared state is the discovered binary paths and the
// language table, which is loaded once on first use.
type Toolnix struct {
	log        *slog.Logger
	options    *Options
	discoverer cli.Discoverer
	runner     *subprocess.Runner
	languages  *language.Cache
}

// New creates a client. Binaries are located lazily on first use.
func New(opts ...Option) *Toolnix {
	options := applyOptions(opts)
	log := options.Logger.With("component", "toolnix")

	discoverer := cli.NewDiscoverer(&cli.Config{
		Dir:    options.ToolnixPath,
		Logger: log,
	})

	t := &Toolnix{
		log:        log,
		options:    options,
		discoverer: discoverer,
		runner:     subprocess.NewRunner(options.Logger, options, discoverer),
	}
	t.languages = language.NewCache(t.loadLanguages)

	return t
}

// BinaryPath returns the resolved path of binary.
func (t *Toolnix) BinaryPath(ctx context.Context, binary Binary) (string, error) {
	return t.discoverer.Discover(ctx, binary)
}

// Start spawns cmd and returns while it runs. Lines of the result can be
// consumed as they are printed. The caller must drain the result or Close
// it; cancelling ctx kills the process.
func (t *Toolnix) Start(ctx context.Context, cmd Command) (*Result, error) {
	return t.runner.Start(ctx, cmd.Binary(), cmd.Args())
}

// Execute runs cmd to completion. When the run fails the completed result
// is returned together with a MergeError, PropEditError or ExtractError.
func (t *Toolnix) Execute(ctx context.Context, cmd Command) (*Result, error) {
	return t.runner.Run(ctx, cmd)
}

// CheckResult returns nil for a successful result and the tool-specific
// error otherwise. It is meant for results obtained from Start once they
// have been waited for.
func CheckResult(res *Result) error {
	if res.Success() {
		return nil
	}

	return subprocess.NewCommandError(res)
}

// Identify runs `mkvmerge --identify -J` on file.
//
// When mkvmerge fails but still prints a valid document, the document is
// returned together with the error so its errors list can be inspected.
func (t *Toolnix) Identify(ctx context.Context, file string) (*FileIdentification, error) {
	res, runErr := t.runner.Execute(ctx, cli.Merge, []string{"--identify", "-J", args.AbsPath(file)})
	if res == nil {
		return nil, runErr
	}

	info, err := identification.Parse([]byte(res.Text()))
	if err != nil {
		if runErr != nil {
			return nil, runErr
		}

		return nil, err
	}

	return info, runErr
}

// IdentifyAll identifies files concurrently, running at most limit
// processes at once; a limit of zero or less means no limit. Results are in
// the order of files. The first failure cancels the remaining work.
func (t *Toolnix) IdentifyAll(ctx context.Context, files []string, limit int) ([]*FileIdentification, error) {
	out := make([]*FileIdentification, len(files))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, file := range files {
		g.Go(func() error {
			info, err := t.Identify(ctx, file)
			if err != nil {
				return fmt.Errorf("identify %s: %w", file, err)
			}

			out[i] = info

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Version reads the --version banner of binary.
func (t *Toolnix) Version(ctx context.Context, binary Binary) (VersionInfo, error) {
	path, err := t.discoverer.Discover(ctx, binary)
	if err != nil {
		return VersionInfo{}, err
	}

	return cli.ReadVersion(ctx, binary, path)
}

// Versions reads the versions of mkvmerge, mkvpropedit and mkvextract
// concurrently, in that order.
func (t *Toolnix) Versions(ctx context.Context) ([]VersionInfo, error) {
	binaries := cli.Binaries()
	out := make([]VersionInfo, len(binaries))

	g, ctx := errgroup.WithContext(ctx)

	for i, b := range binaries {
		g.Go(func() error {
			info, err := t.Version(ctx, b)
			if err != nil {
				return err
			}

			out[i] = info

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Languages returns the language table of mkvmerge. The table is loaded on
// first use; a failed load is retried on the next call.
func (t *Toolnix) Languages(ctx context.Context) (*LanguageTable, error) {
	return t.languages.Get(ctx)
}

// LookupLanguage resolves an ISO 639-3, 639-2 or 639-1 code. Unknown codes
// yield an UnknownLanguageError.
func (t *Toolnix) LookupLanguage(ctx context.Context, code string) (Language, error) {
	table, err := t.Languages(ctx)
	if err != nil {
		return Language{}, err
	}

	return table.Lookup(code)
}

func (t *Toolnix) loadLanguages(ctx context.Context) (*language.Table, error) {
	t.log.Debug("Loading language table")

	res, err := t.runner.Execute(ctx, cli.Merge, []string{"--list-languages"})
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}

	table, err := language.Parse(strings.NewReader(res.Text()))
	if err != nil {
		return nil, fmt.Errorf("parse language table: %w", err)
	}

	t.log.Debug("Loaded language table", "languages", table.Len())

	return table, nil
}
