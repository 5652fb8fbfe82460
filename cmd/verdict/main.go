package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/modelbench/verdict/internal/aggregate"
	"github.com/modelbench/verdict/internal/judgements"
)

// Exit codes for different failure modes
const (
	ExitSuccess = 0 // analysis completed
	ExitNoData  = 1 // nothing to analyze or nothing left after filtering
	ExitError   = 2 // configuration or runtime error
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		if errors.Is(err, judgements.ErrNoJudgements) || errors.Is(err, aggregate.ErrAllModelsFiltered) {
			os.Exit(ExitNoData)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
