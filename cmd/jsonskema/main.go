package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	gojson "github.com/goccy/go-json"

	"github.com/reoring/jsonskema"
	"github.com/reoring/jsonskema/format"
	"github.com/reoring/jsonskema/i18n"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "validate":
		os.Exit(validateCmd(os.Args[2:], os.Stdout))
	case "formats":
		for _, n := range format.Names() {
			fmt.Println(n)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "jsonskema CLI\n\nUsage:\n  jsonskema validate -schema schema.json [-draft 2020-12] [-output basic] [-remote] [-lang ja] instance.json|.yaml ...\n  jsonskema formats\n\nNotes:\n  - References to other files are resolved relative to the schema; -remote also fetches http(s) URLs.\n  - The exit status is 1 when an instance is invalid.")
}

func validateCmd(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var schemaPath, draftName, outputName, lang string
	var remote, strict, verbose bool
	fs.StringVar(&schemaPath, "schema", "", "schema file (JSON or YAML)")
	fs.StringVar(&draftName, "draft", "", "force a draft (4, 6, 7, 2019-09, 2020-12)")
	fs.StringVar(&outputName, "output", "flag", "output format: flag, basic, hierarchical, verbose")
	fs.StringVar(&lang, "lang", "", "message language (en, ja)")
	fs.BoolVar(&remote, "remote", false, "resolve http(s) references over the network")
	fs.BoolVar(&strict, "strict", false, "reject duplicate keys in JSON documents")
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	_ = fs.Parse(args)
	if schemaPath == "" || fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	logf := func(format string, a ...any) {
		if verbose {
			fmt.Fprintf(os.Stderr, format+"\n", a...)
		}
	}

	draft, ok := jsonskema.ParseDraft(draftName)
	if !ok {
		fatalf("unknown draft %q", draftName)
	}
	out, ok := jsonskema.ParseOutputFormat(outputName)
	if !ok {
		fatalf("unknown output format %q", outputName)
	}
	if lang != "" {
		i18n.SetLanguage(lang)
	}
	opt := jsonskema.LoadOpt{RejectDuplicateKeys: strict}

	schema, err := loadFile(schemaPath, opt)
	if err != nil {
		fatalf("loading schema: %v", err)
	}
	abs, err := filepath.Abs(schemaPath)
	if err != nil {
		fatalf("schema path: %v", err)
	}
	base := (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
	logf("validate: schema=%s base=%s draft=%s output=%s", schemaPath, base, draft, out)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	v, err := jsonskema.NewBuilder().
		Draft(draft).
		BaseURI(base).
		ContextResolver(&fileResolver{remote: remote, opt: opt, logf: logf}).
		Build(ctx, schema)
	if err != nil {
		fatalf("compiling schema: %v", err)
	}
	for _, w := range v.Diag().Warnings() {
		logf("warning: %s", w)
	}
	logf("compiled with %s", v.Draft())

	status := 0
	enc := gojson.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	for _, path := range fs.Args() {
		docs, err := loadDocuments(path, opt)
		if err != nil {
			fatalf("loading %s: %v", path, err)
		}
		for i, doc := range docs {
			ev := v.Evaluate(doc)
			if !ev.Valid() {
				status = 1
			}
			logf("%s[%d]: valid=%v errors=%d", path, i, ev.Valid(), len(ev.Errors()))
			if err := enc.Encode(ev.Format(out)); err != nil {
				fatalf("writing output: %v", err)
			}
		}
	}
	return status
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// loadFile reads a single document; a YAML stream must hold exactly one.
func loadFile(path string, opt jsonskema.LoadOpt) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseSingle(path, data, opt)
}

func loadDocuments(path string, opt jsonskema.LoadOpt) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseDocuments(path, data, opt)
}

func parseDocuments(name string, data []byte, opt jsonskema.LoadOpt) ([]any, error) {
	if isYAML(name) {
		return jsonskema.ParseYAML(data, opt)
	}
	v, err := jsonskema.ParseJSON(data, opt)
	if err != nil {
		return nil, err
	}
	return []any{v}, nil
}

// fileResolver serves file:// URLs from disk and, when enabled, http(s) URLs
// from the network.
type fileResolver struct {
	remote bool
	opt    jsonskema.LoadOpt
	logf   func(string, ...any)
}

func (r *fileResolver) ResolveContext(ctx context.Context, raw string) (any, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	r.logf("resolve: %s", raw)
	switch u.Scheme {
	case "file":
		data, err := os.ReadFile(filepath.FromSlash(u.Path))
		if err != nil {
			return nil, err
		}
		return parseSingle(u.Path, data, r.opt)
	case "http", "https":
		if !r.remote {
			return nil, fmt.Errorf("remote reference %s (use -remote)", raw)
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, raw, nil)
		if err != nil {
			return nil, err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("GET %s: %s", raw, resp.Status)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		return parseSingle(u.Path, data, r.opt)
	default:
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
}

func parseSingle(name string, data []byte, opt jsonskema.LoadOpt) (any, error) {
	docs, err := parseDocuments(name, data, opt)
	if err != nil {
		return nil, err
	}
	if len(docs) != 1 {
		return nil, fmt.Errorf("expected one document, found %d", len(docs))
	}
	return docs[0], nil
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
