package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/realmbind/internal/channel"
	"github.com/mesh-intelligence/realmbind/pkg/types"
)

func newCallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call <method> [json-args]",
		Short: "Invoke a method on the realm channel",
		Long: "Send a method call to the attached plugin over the realm channel and\n" +
			"print the reply. The channel defines no methods yet, so every call is\n" +
			"answered as not implemented.",
		Args: cobra.RangeArgs(1, 2),
		RunE: runCall,
	}
}

// callResult is the JSON output of the call command.
type callResult struct {
	Channel string          `json:"channel"`
	Method  string          `json:"method"`
	Status  string          `json:"status"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func runCall(cmd *cobra.Command, args []string) error {
	method := args[0]
	var callArgs json.RawMessage
	if len(args) == 2 {
		if !json.Valid([]byte(args[1])) {
			return fmt.Errorf("call: arguments are not valid JSON")
		}
		callArgs = json.RawMessage(args[1])
	}

	h, err := openHost(cmd)
	if err != nil {
		return fmt.Errorf("call: %w", err)
	}
	defer h.close()

	realm := channel.NewMethodChannel(h.messenger, types.ChannelName)

	var argv any
	if callArgs != nil {
		argv = callArgs
	}
	raw, err := realm.InvokeMethod(cmd.Context(), method, argv)

	res := callResult{Channel: types.ChannelName, Method: method}
	var callErr *types.CallError
	switch {
	case err == nil:
		res.Status = "ok"
		res.Result = raw
	case errors.Is(err, types.ErrUnimplemented):
		res.Status = "not_implemented"
	case errors.As(err, &callErr):
		res.Status = "error"
		res.Error = callErr.Error()
	default:
		return fmt.Errorf("call: %w", err)
	}

	if flags.jsonMode {
		return writeJSON(cmd.OutOrStdout(), res)
	}
	switch res.Status {
	case "ok":
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", method, string(res.Result))
	case "not_implemented":
		fmt.Fprintf(cmd.OutOrStdout(), "%s: not implemented\n", method)
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", method, res.Error)
	}
	return nil
}
