package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
)

// readSQL returns the SQL source for a subcommand: the contents of args[0]
// if one was given, or stdin otherwise.
func readSQL(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}

// errorEnvelope is the shape a parse failure takes when a subcommand is
// run with --json: the error text plus a request id freshly generated for
// this invocation. The request id is not written to the stderr logs.
type errorEnvelope struct {
	RequestID string `json:"requestId"`
	Error     string `json:"error"`
}

func newErrorEnvelope(err error) errorEnvelope {
	return errorEnvelope{RequestID: uuid.New().String(), Error: err.Error()}
}
