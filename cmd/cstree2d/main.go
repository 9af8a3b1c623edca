// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command cstree2d parses indented text as an outline and prints the
// resulting tree.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
	"rsc.io/diff"

	"github.com/asvarga/cstree2d"
	"github.com/asvarga/cstree2d/intern"
	"github.com/asvarga/cstree2d/outline"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: cstree2d [-format text|debug|yaml] [-check] [path ...]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

var (
	format = flag.String("format", "text", "output `format`: text, debug or yaml")
	check  = flag.Bool("check", false, "print a diff for each file that does not round-trip")
)

func main() {
	log.SetPrefix("cstree2d: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	opts := options{format: *format, check: *check}
	if err := run(context.Background(), opts, flag.Args(), os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	format string
	check  bool
}

var errMismatch = errors.New("reconstructed text differs from input")

var renderers = map[string]func(*cstree2d.Tree[outline.Kind]) ([]byte, error){
	"text": func(t *cstree2d.Tree[outline.Kind]) ([]byte, error) {
		return []byte(t.String()), nil
	},
	"debug": func(t *cstree2d.Tree[outline.Kind]) ([]byte, error) {
		return []byte(t.Debug(true)), nil
	},
	"yaml": func(t *cstree2d.Tree[outline.Kind]) ([]byte, error) {
		return yaml.Marshal(t)
	},
}

// run processes each of paths, or stdin if there are none, and writes the
// results to out in argument order.
//
// All files share a single interning table, so text common to several files
// is stored once.
func run(ctx context.Context, opts options, paths []string, stdin io.Reader, out io.Writer) error {
	render, ok := renderers[opts.format]
	if !ok {
		return fmt.Errorf("unknown format %q", opts.format)
	}

	var table intern.Table
	if len(paths) == 0 {
		text, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("<stdin>: %w", err)
		}
		result, err := process(&table, opts, render, "<stdin>", string(text))
		if _, err := out.Write(result); err != nil {
			return err
		}
		return err
	}

	results := make([][]byte, len(paths))
	errs := make([]error, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			results[i], errs[i] = process(&table, opts, render, path, string(text))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, result := range results {
		if _, err := out.Write(result); err != nil {
			return err
		}
	}
	return errors.Join(errs...)
}

// process parses a single file. Mismatches found by -check are reported
// alongside the diff, which is part of the returned output.
func process(
	table *intern.Table,
	opts options,
	render func(*cstree2d.Tree[outline.Kind]) ([]byte, error),
	path, text string,
) ([]byte, error) {
	b := cstree2d.NewBuilderWithInterner[outline.Kind](table)
	outline.Build(b, text)
	tree := b.Tree()

	if opts.check {
		got := tree.String()
		if got == text {
			return nil, nil
		}
		var buf bytes.Buffer
		fmt.Fprintf(&buf, "%s:\n%s", path, diff.Format(got, text))
		return buf.Bytes(), fmt.Errorf("%s: %w", path, errMismatch)
	}

	out, err := render(tree)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}
