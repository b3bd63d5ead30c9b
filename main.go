// Command diffutils dispatches to one of four drivers — pairwise diff,
// three-way diff3, byte cmp, or the diffweb demo server — selected by
// executable basename or, failing that, by the first argument, per spec.md §6.3.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.etcd.io/bbolt"

	"github.com/gophersland/diffutils/pkg/cmp"
	"github.com/gophersland/diffutils/pkg/db"
	"github.com/gophersland/diffutils/pkg/diff"
	"github.com/gophersland/diffutils/pkg/diff3"
	"github.com/gophersland/diffutils/pkg/diffcfg"
	"github.com/gophersland/diffutils/pkg/emit"
	httpapi "github.com/gophersland/diffutils/pkg/http"
	"github.com/gophersland/diffutils/pkg/storage"
)

func defaultEnv(s, def string) string {
	v, ok := os.LookupEnv(s)
	if ok {
		return v
	}
	return def
}

func stringVar(fs *flag.FlagSet, p *string, fg, defaultValue, usage string) {
	ev := strings.ReplaceAll(strings.ToUpper(fg), "-", "_")
	fs.StringVar(p, fg, defaultEnv(ev, defaultValue), usage+". env var: "+ev)
}

func main() {
	cmdName := dispatchName()
	args := os.Args[1:]
	if cmdName == "" && len(args) > 0 {
		cmdName = args[0]
		args = args[1:]
	}

	var err error
	switch cmdName {
	case "diff3", "difftool3":
		err = runDiff3(args)
	case "cmp", "cmptool":
		err = runCmp(args)
	case "diffweb":
		err = runDiffweb(args)
	case "diff", "difftool", "":
		err = runDiff(args)
	default:
		fmt.Fprintf(os.Stderr, "diffutils: unknown command %q\n", cmdName)
		os.Exit(2)
	}

	var exitErr exitCode
	if errors.As(err, &exitErr) {
		os.Exit(int(exitErr))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "diffutils:", err)
		os.Exit(2)
	}
}

// dispatchName recognizes the conventional basenames for each entrypoint, so
// the binary can be symlinked as `diff`, `diff3`, or `cmp`.
func dispatchName() string {
	switch filepath.Base(os.Args[0]) {
	case "diff3":
		return "diff3"
	case "cmp":
		return "cmp"
	case "diffweb":
		return "diffweb"
	case "diff":
		return "diff"
	default:
		return ""
	}
}

// exitCode is returned by the run* functions to request a specific process
// exit status without logging an error line (used for "differences found").
type exitCode int

func (e exitCode) Error() string { return fmt.Sprintf("exit %d", int(e)) }

func runDiff(args []string) error {
	fs := flag.NewFlagSet("diff", flag.ExitOnError)
	var (
		unified     = fs.Bool("u", false, "unified output format")
		context     = fs.Bool("c", false, "context output format")
		ed          = fs.Bool("e", false, "ed script output format")
		contextSize = fs.Int("C", -1, "number of context lines (unset = format default)")
		brief       = fs.Bool("q", false, "report only whether files differ")
		reportSame  = fs.Bool("s", false, "report when two files are identical")
		expandTabs  = fs.Bool("t", false, "expand tabs to spaces in output")
		stripCR     = fs.Bool("strip-trailing-cr", false, "strip trailing carriage return before comparing")
		labelFrom   = fs.String("label-from", "", "display name for the left file")
		labelTo     = fs.String("label-to", "", "display name for the right file")
	)
	fs.Parse(args)

	if fs.NArg() != 2 {
		return fmt.Errorf("usage: diff [options] old new")
	}
	leftPath, rightPath := fs.Arg(0), fs.Arg(1)

	left, err := readInput(leftPath)
	if err != nil {
		return err
	}
	right, err := readInput(rightPath)
	if err != nil {
		return err
	}

	cfg := diffcfg.Config{
		Brief:           *brief,
		ExpandTabs:      *expandTabs,
		StripTrailingCR: *stripCR,
		From:            labelOrPath(*labelFrom, leftPath),
		To:              labelOrPath(*labelTo, rightPath),
	}
	if *contextSize >= 0 {
		cfg.Context = *contextSize
		cfg.ContextSet = true
	}
	switch {
	case *ed:
		cfg.Format = diffcfg.Ed
	case *context:
		cfg.Format = diffcfg.Context
	case *unified:
		cfg.Format = diffcfg.Unified
	default:
		cfg.Format = diffcfg.Normal
	}

	out, err := diff.Pairwise(left, right, cfg)
	if err != nil {
		if errors.Is(err, emit.ErrMissingNewline) {
			return exitCode(2)
		}
		return err
	}

	if len(out) == 0 {
		if *reportSame {
			fmt.Printf("Files %s and %s are identical\n", leftPath, rightPath)
		}
		return nil
	}
	os.Stdout.Write(out)
	return exitCode(1)
}

func runDiff3(args []string) error {
	fs := flag.NewFlagSet("diff3", flag.ExitOnError)
	var (
		merge    = fs.Bool("m", false, "merge with conflict markers")
		edScript = fs.Bool("e", false, "ed script output")
		showAll  = fs.Bool("A", false, "output all changes, merged, with markers (show-overlap)")
		easyOnly = fs.Bool("3", false, "only output non-overlapping changes")
		labelM   = fs.String("L1", "", "label for mine")
		labelO   = fs.String("L2", "", "label for older")
		labelY   = fs.String("L3", "", "label for yours")
	)
	fs.Parse(args)

	if fs.NArg() != 3 {
		return fmt.Errorf("usage: diff3 [options] mine older yours")
	}
	minePath, olderPath, yoursPath := fs.Arg(0), fs.Arg(1), fs.Arg(2)

	mine, err := readInput(minePath)
	if err != nil {
		return err
	}
	older, err := readInput(olderPath)
	if err != nil {
		return err
	}
	yours, err := readInput(yoursPath)
	if err != nil {
		return err
	}

	cfg := diff3.Config{
		Text:   true,
		Labels: [3]string{*labelM, *labelO, *labelY},
	}
	switch {
	case *showAll:
		cfg.Format = diff3.ShowOverlap
		cfg.Mode = diff3.All
	case *merge:
		cfg.Format = diff3.Merged
		cfg.Mode = diff3.All
	case *edScript:
		cfg.Format = diff3.Ed
		cfg.Mode = diff3.EdScript
	default:
		cfg.Format = diff3.Normal
	}
	if *easyOnly {
		cfg.Mode = diff3.EasyOnly
	}

	out, conflicts, err := diff3.Diff3(mine, older, yours, cfg)
	if err != nil {
		return err
	}
	os.Stdout.Write(out)
	if conflicts {
		return exitCode(1)
	}
	return nil
}

func runCmp(args []string) error {
	fs := flag.NewFlagSet("cmp", flag.ExitOnError)
	silent := fs.Bool("s", false, "suppress output; only report via exit status")
	fs.Parse(args)

	if fs.NArg() != 2 {
		return fmt.Errorf("usage: cmp [options] file1 file2")
	}
	aPath, bPath := fs.Arg(0), fs.Arg(1)

	a, err := readInput(aPath)
	if err != nil {
		return err
	}
	b, err := readInput(bPath)
	if err != nil {
		return err
	}

	res := cmp.Bytes(a, b)
	if res.Equal {
		return nil
	}
	if !*silent {
		fmt.Println(res.String())
	}
	return exitCode(1)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func labelOrPath(label, path string) string {
	if label != "" {
		return label
	}
	return path
}

// diffweb: the demo front end wiring pkg/http, pkg/db, and pkg/storage
// together behind a single HTTP server.

type diffwebOpts struct {
	listenAddr     string
	publicURL      string
	dbFile         string
	s3Endpoint     string
	s3AccessKey    string
	s3AccessSecret string
	s3Bucket       string
	cacheMaxMB     string
}

func runDiffweb(args []string) error {
	fs := flag.NewFlagSet("diffweb", flag.ExitOnError)
	var opts diffwebOpts
	stringVar(fs, &opts.listenAddr, "listen-addr", ":18844", "listen address for the web server")
	stringVar(fs, &opts.publicURL, "public-url", "http://localhost:18844", "url for the server, used in the curl example")
	stringVar(fs, &opts.dbFile, "db-file", "data/db.bolt", "the file used for the database; also the cache store when s3 is configured")
	stringVar(fs, &opts.s3Endpoint, "s3-endpoint", "", "s3 endpoint; when empty, the bolt db is used as permanent storage")
	stringVar(fs, &opts.s3AccessKey, "s3-access-key", "", "s3 access key")
	stringVar(fs, &opts.s3AccessSecret, "s3-access-secret", "", "s3 access secret")
	stringVar(fs, &opts.s3Bucket, "s3-bucket", "", "s3 bucket")
	stringVar(fs, &opts.cacheMaxMB, "cache-max-mb", "64", "max size in MB of the local cache, when s3 is configured")
	fs.Parse(args)

	if err := os.MkdirAll(filepath.Dir(opts.dbFile), 0o755); err != nil && !os.IsExist(err) {
		return fmt.Errorf("creating db directory: %w", err)
	}
	bdb, err := bbolt.Open(opts.dbFile, 0o600, nil)
	if err != nil {
		return fmt.Errorf("db open error: %w", err)
	}
	defer bdb.Close()

	store, err := buildStorage(opts, bdb)
	if err != nil {
		return err
	}

	srv := &httpapi.Server{
		PublicURL: opts.publicURL,
		Storage:   store,
		DB:        &db.DB{DB: bdb},
		Output:    os.Stdout,
	}

	log.Printf("diffweb listening on %s (public url %s)", opts.listenAddr, opts.publicURL)
	return http.ListenAndServe(opts.listenAddr, srv.Router())
}

func buildStorage(opts diffwebOpts, bdb *bbolt.DB) (storage.Storage, error) {
	if opts.s3Endpoint == "" {
		return storage.NewDBStorage(bdb, []byte("storage")), nil
	}

	cl, err := minio.New(opts.s3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.s3AccessKey, opts.s3AccessSecret, ""),
		Secure: true,
	})
	if err != nil {
		return nil, fmt.Errorf("minio init error: %w", err)
	}
	permanent := storage.NewMinioStorage(cl, opts.s3Bucket)

	cacheMaxMB, err := strconv.ParseUint(opts.cacheMaxMB, 10, 64)
	if err != nil {
		cacheMaxMB = 64
	}
	cache := storage.NewDBStorage(bdb, []byte("cache"))
	return storage.NewCachedStorage(cache, permanent, cacheMaxMB<<20)
}
