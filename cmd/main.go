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
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/joho/godotenv"

	"codeberg.org/t73fde/accviz/logger"
)

// Environment keys recognized on startup.
const (
	EnvRenderURL = "ACCVIZ_RENDER_URL"
	EnvLogLevel  = "ACCVIZ_LOG_LEVEL"
	EnvGeminiKey = "GEMINI_API_KEY"
)

var (
	progName     string
	buildVersion string
	logWriter    logger.LogWriter
	logLevel     logger.Level
)

func init() {
	RegisterCommand(Command{
		Name: "help",
		Func: func(*flag.FlagSet) (int, error) {
			fmt.Println("Available commands:")
			for _, name := range List() {
				fmt.Printf("- %q\n", name)
			}
			return 0, nil
		},
	})
	RegisterCommand(Command{
		Name: "version",
		Func: func(*flag.FlagSet) (int, error) {
			fmtVersion()
			return 0, nil
		},
	})
}

func fmtVersion() {
	fmt.Printf("%v %v (%v, %v/%v)\n",
		progName, buildVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// newLogger creates the logger for the given component, honoring the level
// configured through the environment.
func newLogger(prefix string) *logger.Logger {
	return logger.New(logWriter, prefix).SetLevel(logLevel)
}

// readSource reads the diagram source from the named file, or from stdin
// when the name is empty or "-".
func readSource(args []string) (string, error) {
	if len(args) < 1 || args[0] == "-" {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(src), nil
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(src), nil
}

func executeCommand(name string, args ...string) int {
	command, ok := Get(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", name)
		return 1
	}
	fs := command.GetFlags()
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: unable to parse flags: %v %v\n", name, args, err)
		return 1
	}
	exitCode, err := command.Func(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
	}
	return exitCode
}

// Main is the real entrypoint of accviz.
func Main(prog, version string) {
	progName, buildVersion = prog, version
	godotenv.Load()
	logWriter = logger.NewLogWriterAdapter(os.Stderr)
	logLevel = logger.WarnLevel
	if lv := logger.ParseLevel(os.Getenv(EnvLogLevel)); lv != logger.NoLevel {
		logLevel = lv
	}
	var exitCode int
	if len(os.Args) <= 1 {
		exitCode = executeCommand("help")
	} else {
		exitCode = executeCommand(os.Args[1], os.Args[2:]...)
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
