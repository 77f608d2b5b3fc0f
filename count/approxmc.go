package count

import (
	"bytes"
	"os/exec"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ApproxMC locates the external approximate model counter and carries its
// approximation tolerances. Pass the configuration explicitly; there is no
// package-wide default path.
type ApproxMC struct {
	Path    string
	Epsilon float64
	Delta   float64
}

// DefaultApproxMC is the stock configuration: an "approxmc" binary on PATH
// with the counter's usual (0.8, 0.2) tolerances.
func DefaultApproxMC() ApproxMC {
	return ApproxMC{Path: "approxmc", Epsilon: 0.8, Delta: 0.2}
}

// Count runs the counter on the CNF file at cnfPath and returns its stdout
// verbatim. The output is human-readable text and is never parsed here; the
// counter projects onto the "c ind" variables declared in the file.
func (a ApproxMC) Count(cnfPath string) (string, error) {
	cmd := exec.Command(a.Path,
		"--epsilon", strconv.FormatFloat(a.Epsilon, 'f', -1, 64),
		"--delta", strconv.FormatFloat(a.Delta, 'f', -1, 64),
		cnfPath,
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	log.WithField("cmd", cmd.String()).Debug("invoking approximate counter")
	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(err, "counter %q failed: %s", a.Path, stderr.String())
	}
	return stdout.String(), nil
}
