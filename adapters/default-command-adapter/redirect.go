package defaultcommandadapter

import (
	"io"
	"os"
	"os/exec"

	"github.com/chitacloud/pipefile/internal/pipeerrors"
	pipeentities "github.com/chitacloud/pipefile/ports/pipe/entities"
)

// OutputFileMode is the permission of a created output file.
const OutputFileMode os.FileMode = 0644

// Redirect binds cmd's stdin and stdout to the files named in r. The input
// file replaces any stdin already wired; an empty path leaves the stream as it
// is. Input is opened first so a missing input never touches the output file.
// The opened files are returned so the caller can close its copies.
func Redirect(cmd *exec.Cmd, r pipeentities.Redirection) ([]io.Closer, error) {
	var opened []io.Closer

	if r.Input != "" {
		in, err := os.Open(r.Input)
		if err != nil {
			return opened, pipeerrors.Resource("open input file", r.Input, err)
		}
		opened = append(opened, in)
		cmd.Stdin = in
	}

	if r.Output != "" {
		out, err := os.OpenFile(r.Output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, OutputFileMode)
		if err != nil {
			return opened, pipeerrors.Resource("open output file", r.Output, err)
		}
		opened = append(opened, out)
		cmd.Stdout = out
	}

	return opened, nil
}
