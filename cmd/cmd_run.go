//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of AccViz.
//
// AccViz is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"codeberg.org/t73fde/accviz/enhancer"
	"codeberg.org/t73fde/accviz/enhancer/gemini"
	"codeberg.org/t73fde/accviz/pipeline"
	"codeberg.org/t73fde/accviz/render"
)

// ---------- Subcommand: run -------------------------------------------------

func init() {
	RegisterCommand(Command{
		Name:  "run",
		Func:  cmdRun,
		Flags: flgRun,
	})
}

func flgRun(fs *flag.FlagSet) {
	fs.String("render-url", "", "base URL of the render engine (default: $"+EnvRenderURL+")")
	fs.String("o", ".", "directory for the produced artifacts")
	fs.Bool("enhance", false, "improve the narrative through the Gemini API")
}

func cmdRun(fs *flag.FlagSet) (int, error) {
	ctx := context.Background()
	p := newPipeline(ctx, fs)
	src, err := readSource(fs.Args())
	if err != nil {
		return 2, err
	}
	result, err := p.Run(ctx, src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Run degraded: %v\n", err)
	}
	outDir := fs.Lookup("o").Value.String()
	if err = writeArtifacts(outDir, result); err != nil {
		return 2, err
	}
	for _, w := range result.Warnings {
		fmt.Fprintln(os.Stderr, "Warning:", w)
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Printf("Diagram type: %v\n", result.Type)
		fmt.Printf("Title: %s\n", result.Meta.Title)
		fmt.Printf("Description: %s\n", result.Meta.Description)
		fmt.Printf("Artifacts written to %s\n", outDir)
	} else {
		fmt.Println(result.NarrativeHTML)
	}
	return 0, nil
}

// newPipeline builds the pipeline from flags and environment. A missing
// render URL disables the render stage, a missing Gemini key disables
// enhancement; both are reported, never fatal.
func newPipeline(ctx context.Context, fs *flag.FlagSet) *pipeline.Pipeline {
	p := pipeline.Pipeline{
		AutoAnnotate: true,
		Log:          newLogger("pipe"),
	}
	renderURL := fs.Lookup("render-url").Value.String()
	if renderURL == "" {
		renderURL = os.Getenv(EnvRenderURL)
	}
	if renderURL == "" {
		fmt.Fprintln(os.Stderr, "No render URL configured, skipping SVG stage")
	} else {
		p.Renderer = render.NewClient(renderURL, newLogger("render"))
	}
	if fs.Lookup("enhance").Value.String() == "true" {
		enh, err := gemini.New(ctx, os.Getenv(EnvGeminiKey), "", newLogger("gemini"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Enhancement unavailable: %v\n", err)
			p.Enhancer = enhancer.Noop{}
		} else {
			p.Enhancer = enh
		}
	}
	return &p
}

func writeArtifacts(dir string, result *pipeline.Result) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}
	narrative := result.NarrativeHTML
	if result.Enhanced != "" {
		narrative = result.Enhanced
	}
	if err := os.WriteFile(filepath.Join(dir, "narrative.html"), []byte(narrative), 0600); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "narrative.txt"), []byte(result.NarrativeText), 0600); err != nil {
		return err
	}
	if result.SVG != "" {
		if err := os.WriteFile(filepath.Join(dir, "diagram.svg"), []byte(result.SVG), 0600); err != nil {
			return err
		}
	}
	return nil
}
