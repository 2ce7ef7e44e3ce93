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
	"time"

	"github.com/fsnotify/fsnotify"
)

// ---------- Subcommand: watch -----------------------------------------------

const debounceDelay = 250 * time.Millisecond

func init() {
	RegisterCommand(Command{
		Name:  "watch",
		Func:  cmdWatch,
		Flags: flgRun,
	})
}

func cmdWatch(fs *flag.FlagSet) (int, error) {
	args := fs.Args()
	if len(args) < 1 || args[0] == "-" {
		fmt.Fprintln(os.Stderr, "Command watch needs a file argument")
		return 1, nil
	}
	fileName := args[0]
	ctx := context.Background()
	p := newPipeline(ctx, fs)
	outDir := fs.Lookup("o").Value.String()
	log := newLogger("watch").Clone().Str("file", fileName).Child()

	runOnce := func() {
		src, err := os.ReadFile(fileName)
		if err != nil {
			log.Error().Err(err).Msg("Read source")
			return
		}
		result, err := p.Run(ctx, string(src))
		if err != nil {
			log.Warn().Err(err).Msg("Run degraded")
		}
		if err = writeArtifacts(outDir, result); err != nil {
			log.Error().Err(err).Msg("Write artifacts")
			return
		}
		for _, w := range result.Warnings {
			log.Warn().Str("warning", w).Msg("Run")
		}
		log.Mandatory().Msg("Artifacts updated")
	}
	runOnce()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return 2, err
	}
	defer watcher.Close()
	// Watch the directory: editors often replace the file on save, which
	// drops a watch set on the file itself.
	if err = watcher.Add(filepath.Dir(fileName)); err != nil {
		return 2, err
	}

	// Events are debounced: only the last write within the delay window
	// triggers a run.
	var timer *time.Timer
	timerC := make(chan struct{}, 1)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return 0, nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(fileName) {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceDelay, func() {
				select {
				case timerC <- struct{}{}:
				default:
				}
			})
		case <-timerC:
			runOnce()
		case err, ok := <-watcher.Errors:
			if !ok {
				return 0, nil
			}
			log.Error().Err(err).Msg("Watcher")
		}
	}
}
