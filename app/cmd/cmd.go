// Package cmd has all top-level commands dispatched by main's flag.Parse
// The entry point of each command is Execute function
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/umputun/cgrates/app/cgrates"
)

// CommonOptionsCommander extends flags.Commander with SetCommon
// All commands should implement this interfaces
type CommonOptionsCommander interface {
	SetCommon(commonOpts CommonOpts)
	Execute(args []string) error
}

// CommonOpts sets externally from main, shared across all commands
type CommonOpts struct {
	Host     string
	User     string
	Passwd   string
	Endpoint string
	Timeout  time.Duration
	Revision string
	Out      io.Writer // command output, os.Stdout if not set
}

// SetCommon satisfies CommonOptionsCommander interface and sets common option fields
// The method called by main for each command
func (c *CommonOpts) SetCommon(commonOpts CommonOpts) {
	c.Host = commonOpts.Host
	c.User = commonOpts.User
	c.Passwd = commonOpts.Passwd
	c.Endpoint = commonOpts.Endpoint
	c.Timeout = commonOpts.Timeout
	c.Revision = commonOpts.Revision
	c.Out = commonOpts.Out
}

// newClient makes cgrates client, empty options taken from process-wide cgrates.Config
func (c *CommonOpts) newClient() (*cgrates.Client, error) {
	client, err := cgrates.NewClient(cgrates.Opts{
		Host:       c.Host,
		Username:   c.User,
		Password:   c.Passwd,
		Endpoint:   c.Endpoint,
		HTTPClient: &http.Client{Timeout: c.timeout()},
	})
	if err != nil {
		return nil, errors.Wrap(err, "can't make cgrates client")
	}
	return client, nil
}

// context with command timeout
func (c *CommonOpts) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), c.timeout())
}

func (c *CommonOpts) timeout() time.Duration {
	if c.Timeout <= 0 {
		return 30 * time.Second
	}
	return c.Timeout
}

// print writes v as indented json to the command output
func (c *CommonOpts) print(v interface{}) error {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "can't marshal output")
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}
