package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/sneldao/snel-sub004/plans"
	"github.com/sneldao/snel-sub004/stacks"
	"github.com/sneldao/snel-sub004/syncs"
	"github.com/sneldao/snel-sub004/synths"
)

type batchResult struct {
	Line     int      `json:"line"`
	Session  string   `json:"session,omitempty"`
	Program  string   `json:"program,omitempty"`
	Stack    string   `json:"stack,omitempty"`
	State    string   `json:"state,omitempty"`
	Attempts int      `json:"attempts,omitempty"`
	Plan     []string `json:"plan,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// runBatch reads one JSON request per line and writes one JSON result per request, in input order.
// Sessions run concurrently, at most n at a time. A failed session does not stop the others.
func runBatch(
	ctx context.Context,
	r io.Reader,
	w io.Writer,
	synth *synths.Synthesizer,
	resolver plans.UserResolver,
	n int,
) error {
	sem := syncs.NewSemaphore(n)
	var results []*batchResult
	wg := new(sync.WaitGroup)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		result := &batchResult{
			Line: lineNo,
		}
		results = append(results, result)

		var req synths.Request
		if err := json.Unmarshal([]byte(text), &req); err != nil {
			result.Error = err.Error()
			continue
		}

		if err := sem.Acquire(ctx); err != nil {
			wg.Wait()
			return err
		}
		wg.Go(func() {
			defer sem.Release()
			synthesizeInto(ctx, synth, resolver, req, result)
		})
	}
	wg.Wait()
	if err := scanner.Err(); err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	for _, result := range results {
		if err := encoder.Encode(result); err != nil {
			return err
		}
	}
	return nil
}

func synthesizeInto(
	ctx context.Context,
	synth *synths.Synthesizer,
	resolver plans.UserResolver,
	req synths.Request,
	into *batchResult,
) {
	result, err := synth.Synthesize(ctx, req)
	if err != nil {
		var exhausted *synths.ExhaustedError
		if errors.As(err, &exhausted) {
			into.Session = exhausted.Session
			into.Program = exhausted.Program.Source()
			into.Attempts = exhausted.Attempts
		}
		var stackErr *stacks.StackError
		if errors.As(err, &stackErr) {
			into.Error = stackErr.Diagnostic()
		} else {
			into.Error = err.Error()
		}
		return
	}

	into.Session = result.Session
	into.Program = result.Program.Source()
	into.Stack = stacks.FormatStack(result.Stack)
	into.Attempts = result.Attempts
	into.State = strconv.FormatUint(result.Fingerprint, 16)

	plan, err := plans.Build(result.Effects, resolver)
	if err != nil {
		into.Error = err.Error()
		return
	}
	for _, step := range plan.Steps {
		into.Plan = append(into.Plan, step.String())
	}
}
