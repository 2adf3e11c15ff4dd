// Package main provides the lifelog CLI: a local-first journal of
// life events with attached analytic notes and derived statistics.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/lifelog/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit code: request-scoped
// rejections are user errors, everything else is a system error.
func exitCode(err error) int {
	for _, userErr := range []error{
		types.ErrInvalidInput,
		types.ErrInvalidDate,
		types.ErrNotFound,
		types.ErrUnauthorized,
		types.ErrSelfParent,
		types.ErrNestingTooDeep,
		types.ErrCircularParent,
		types.ErrChainTooDeep,
	} {
		if errors.Is(err, userErr) {
			return exitUserError
		}
	}
	return exitSysError
}
