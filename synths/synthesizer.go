package synths

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/sneldao/snel-sub004/logs"
	"github.com/sneldao/snel-sub004/programs"
	"github.com/sneldao/snel-sub004/prompts"
	"github.com/sneldao/snel-sub004/stacks"
)

// Synthesizer runs the repair loop: ask the oracle for a program, simulate it, and feed
// the diagnostic back until a candidate passes or MaxErrors candidates have failed.
// It holds no per-session state and may be shared.
type Synthesizer struct {
	oracle     Oracle
	newMachine stacks.NewMachine
	maxErrors  int
	observer   Observer
	logger     logs.Logger
	newSpan    logs.NewSpan
}

// WithObserver returns a copy reporting every state transition to fn.
func (s *Synthesizer) WithObserver(fn Observer) *Synthesizer {
	ret := *s
	ret.observer = fn
	return &ret
}

func (s *Synthesizer) MaxErrors() int {
	return s.maxErrors
}

type phase func(ctx context.Context) (phase, error)

type session struct {
	*Synthesizer
	id        string
	req       Request
	attempts  int
	failures  int
	feedback  []Feedback
	candidate programs.Program
	result    *Result
}

func (s *Synthesizer) Synthesize(ctx context.Context, req Request) (*Result, error) {
	ctx, _ = s.newSpan(ctx, "")
	sess := &session{
		Synthesizer: s,
		id:          uuid.NewString(),
		req:         req,
	}
	s.logger.InfoContext(ctx, "synthesis start",
		"session", sess.id,
		"user", req.Username,
		"max_errors", s.maxErrors,
	)

	var next phase = sess.request
	for next != nil {
		if err := ctx.Err(); err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}
		var err error
		next, err = next(ctx)
		if err != nil {
			return nil, err
		}
	}
	return sess.result, nil
}

func (s *session) observe(state State, stackErr *stacks.StackError) {
	if s.observer == nil {
		return
	}
	s.observer(Event{
		Session: s.id,
		State:   state,
		Attempt: s.attempts,
		Program: s.candidate,
		Error:   stackErr,
	})
}

func (s *session) request(ctx context.Context) (phase, error) {
	s.attempts++
	s.candidate = programs.Program{}
	s.observe(StateRequest, nil)

	program, err := s.oracle.Generate(ctx, OracleRequest{
		Session:  s.id,
		Attempt:  s.attempts,
		Request:  s.req,
		Feedback: slices.Clone(s.feedback),
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "oracle",
			"session", s.id,
			"attempt", s.attempts,
			"error", err,
		)
		return nil, logs.WrapSpan(ctx, fmt.Errorf("oracle attempt %d: %w", s.attempts, err))
	}

	s.candidate = program
	return s.verify, nil
}

func (s *session) verify(ctx context.Context) (phase, error) {
	s.observe(StateVerify, nil)

	machine := s.newMachine()
	err := machine.Run(s.candidate)
	if err == nil {
		fingerprint, err := machine.Fingerprint()
		if err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}
		s.result = &Result{
			Session:     s.id,
			Program:     s.candidate,
			Stack:       machine.Stack(),
			Variables:   machine.Variables(),
			Effects:     machine.Effects(),
			Attempts:    s.attempts,
			Feedback:    s.feedback,
			Fingerprint: fingerprint,
		}
		s.observe(StateDone, nil)
		s.logger.InfoContext(ctx, "synthesis done",
			"session", s.id,
			"attempts", s.attempts,
			"effects", len(s.result.Effects),
		)
		return nil, nil
	}

	var stackErr *stacks.StackError
	if !errors.As(err, &stackErr) {
		return nil, logs.WrapSpan(ctx, err)
	}

	s.failures++
	s.feedback = append(s.feedback, Feedback{
		Program: s.candidate,
		Error:   stackErr,
		Message: prompts.Correction(s.candidate, stackErr),
	})
	s.logger.WarnContext(ctx, "candidate rejected",
		"session", s.id,
		"attempt", s.attempts,
		"kind", stackErr.Kind.String(),
		"index", stackErr.Index,
		"line", stackErr.Line,
	)

	if s.failures > s.maxErrors {
		return s.failed(stackErr), nil
	}
	return s.request, nil
}

func (s *session) failed(last *stacks.StackError) phase {
	return func(ctx context.Context) (phase, error) {
		s.observe(StateFailed, last)
		s.logger.WarnContext(ctx, "synthesis failed",
			"session", s.id,
			"attempts", s.attempts,
		)
		return nil, logs.WrapSpan(ctx, &ExhaustedError{
			Session:  s.id,
			Attempts: s.attempts,
			Program:  s.candidate,
			Last:     last,
		})
	}
}
