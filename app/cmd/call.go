package cmd

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// CallCommand invokes any remote method with raw json parameter objects
type CallCommand struct {
	Method string   `short:"m" long:"method" required:"true" description:"remote method, i.e. APIerSv1.GetTPDestination"`
	Params []string `short:"p" long:"params" description:"parameter object as json, repeatable"`
	CommonOpts
}

// Execute sends the call, entry point for "call" command
func (cc *CallCommand) Execute(_ []string) error {
	params := make([]interface{}, 0, len(cc.Params))
	for _, p := range cc.Params {
		var v interface{}
		if err := json.Unmarshal([]byte(p), &v); err != nil {
			return errors.Wrapf(err, "can't parse params %q", p)
		}
		params = append(params, v)
	}

	client, err := cc.newClient()
	if err != nil {
		return err
	}
	ctx, cancel := cc.context()
	defer cancel()

	resp, err := client.Call(ctx, cc.Method, params...)
	if err != nil {
		return err
	}
	return cc.print(resp.Result)
}
