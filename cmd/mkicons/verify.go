package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Mavwarf/mkicons/internal/assets"
	"github.com/Mavwarf/mkicons/internal/icon"
	"github.com/Mavwarf/mkicons/internal/verify"
)

// verifyCmd checks the icons named by args and returns the exit code: 0 when
// every file passes, 1 otherwise. Each arg is either a directory holding the
// whole icon set or a single icon file; no args means ".".
func verifyCmd(args []string, out io.Writer) int {
	if len(args) == 0 {
		args = []string{"."}
	}
	code := 0
	for _, arg := range args {
		r, err := verifyPath(arg)
		if err != nil {
			fmt.Fprintf(out, "FAIL  %s\n      - %v\n", arg, err)
			code = 1
			continue
		}
		fmt.Fprint(out, r)
		if !r.OK() {
			code = 1
		}
	}
	return code
}

func verifyPath(path string) (verify.Report, error) {
	fi, err := os.Stat(path)
	if err == nil && fi.IsDir() {
		return verify.Dir(path), nil
	}
	name := filepath.Base(path)
	t, ok := assets.Lookup(name)
	if !ok {
		if err != nil {
			return verify.Report{}, err
		}
		return verify.Report{}, fmt.Errorf("unknown icon %q", name)
	}
	return verify.Report{
		Dir:   filepath.Dir(path),
		Files: []verify.FileReport{{Name: name, Problems: verify.File(path, t, icon.DefaultStyle())}},
	}, nil
}
