package worker

import (
	"github.com/lgbarn/chessme-go/internal/processing"
)

// ReplayFunc returns a ProcessFunc that replays each script with opts.
func ReplayFunc(opts processing.Options) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		r := processing.ReplayScript(item.Script, opts)
		return ProcessResult{Index: item.Index, Replay: r, Error: r.Validation.Err}
	}
}
