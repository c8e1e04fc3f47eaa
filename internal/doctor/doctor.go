// Package doctor runs read-only health checks on the files and tools the
// generated document depends on. With fix enabled it repairs permissions.
package doctor

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/rafa3127/MCP-shared-Config/internal/document"
	"github.com/rafa3127/MCP-shared-Config/internal/platform"
	"github.com/spf13/afero"
)

// Launchers are the binaries every generated fragment is started with.
var Launchers = []string{"node", "npx"}

// Checker writes one status line per check to W.
type Checker struct {
	W        io.Writer
	Fs       afero.Fs
	LookPath func(file string) (string, error) // defaults to exec.LookPath
	Fix      bool

	problems int
}

// New returns a Checker on the OS filesystem.
func New(w io.Writer, fix bool) *Checker {
	return &Checker{W: w, Fs: afero.NewOsFs(), LookPath: exec.LookPath, Fix: fix}
}

// Problems is the number of MISS, WARN and FAIL lines reported so far
// that were not fixed.
func (c *Checker) Problems() int { return c.problems }

func (c *Checker) report(tag, format string, args ...any) {
	switch tag {
	case "MISS", "WARN", "FAIL":
		c.problems++
	}
	fmt.Fprintf(c.W, "  [%-4s] %s\n", tag, fmt.Sprintf(format, args...))
}

// CheckRuntime reports whether the launchers are on PATH. Nothing is executed.
func (c *Checker) CheckRuntime() {
	fmt.Fprintln(c.W, "Runtime check:")
	lookPath := c.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	for _, name := range Launchers {
		path, err := lookPath(name)
		if err != nil {
			c.report("MISS", "%s not found", name)
			continue
		}
		c.report(" OK ", "%s found at %s", name, path)
	}
}

// CheckEnvFile reports on the dotfile holding connector secrets. A missing
// file is fine; a readable-by-others file is not.
func (c *Checker) CheckEnvFile(path string) {
	fmt.Fprintln(c.W, "Env file check:")
	info, err := c.Fs.Stat(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(c.W, "  [ -- ] %s not present, using the process environment only\n", path)
		return
	}
	if err != nil {
		c.report("FAIL", "%s: %v", path, err)
		return
	}
	c.checkPerm(path, info.Mode().Perm())
}

// CheckDocument reports on a previously written document: presence,
// permissions and schema.
func (c *Checker) CheckDocument(path string) {
	fmt.Fprintln(c.W, "Document check:")
	info, err := c.Fs.Stat(path)
	if os.IsNotExist(err) {
		c.report("MISS", "%s does not exist, run the generator first", path)
		return
	}
	if err != nil {
		c.report("FAIL", "%s: %v", path, err)
		return
	}
	if info.IsDir() {
		c.report("FAIL", "%s is a directory", path)
		return
	}
	c.checkPerm(path, info.Mode().Perm())

	res, err := document.ValidateFile(c.Fs, path)
	if err != nil {
		c.report("FAIL", "%v", err)
		return
	}
	if !res.Valid {
		for _, issue := range res.Issues {
			c.report("FAIL", "%s: %s", path, issue)
		}
		return
	}
	c.report(" OK ", "%s matches the connectors schema", path)
}

func (c *Checker) checkPerm(path string, perm os.FileMode) {
	if perm&0077 == 0 {
		c.report(" OK ", "%s (permissions %o)", path, perm)
		return
	}
	if !c.Fix {
		c.report("WARN", "%s has permissions %o (expected %o)", path, perm, platform.FilePermSecure)
		return
	}
	if err := platform.Chmod(c.Fs, path, platform.FilePermSecure); err != nil {
		c.report("FAIL", "Could not fix permissions on %s: %v", path, err)
		return
	}
	c.report("FIX ", "Fixed permissions on %s to %o", path, platform.FilePermSecure)
}
