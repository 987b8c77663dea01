package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/reusee/dscope"
	"github.com/sneldao/snel-sub004/cmds"
	"github.com/sneldao/snel-sub004/debugs"
	"github.com/sneldao/snel-sub004/logs"
	"github.com/sneldao/snel-sub004/modes"
	"github.com/sneldao/snel-sub004/oracles"
	"github.com/sneldao/snel-sub004/phases"
	"github.com/sneldao/snel-sub004/plans"
	"github.com/sneldao/snel-sub004/programs"
	"github.com/sneldao/snel-sub004/snelconfigs"
	"github.com/sneldao/snel-sub004/stacks"
	"github.com/sneldao/snel-sub004/synths"
	"golang.org/x/term"
)

var (
	doFlag     = cmds.Var[string]("do")
	runFlag    = cmds.Var[string]("run")
	batchFlag  = cmds.Switch("batch")
	chatFlag   = cmds.Switch("chat")
	userFlag   = cmds.Var[string]("-user")
	tapFlag    = cmds.Switch("-tap")
	streamFlag = cmds.Switch("-stream")
)

func main() {
	ce(cmds.Execute(os.Args[1:]))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	exitCode := 0
	defer func() {
		cancel()
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	}()

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		logger logs.Logger,
		getOracle oracles.GetOracle,
		newSynthesizer synths.NewSynthesizer,
		newMachine stacks.NewMachine,
		resolver plans.UserResolver,
		concurrency snelconfigs.Concurrency,
		buildChat phases.BuildChat,
		openLiner phases.OpenLiner,
		tap debugs.Tap,
	) {

		if *runFlag != "" {
			content, err := os.ReadFile(*runFlag)
			ce(err)
			if !simulate(os.Stdout, newMachine(), resolver, string(content)) {
				exitCode = 1
			}
			return
		}

		llm, err := getOracle()
		ce(err)
		if *streamFlag {
			llm = llm.WithOutput(os.Stderr)
		}
		synth := newSynthesizer(llm)
		logger.InfoContext(ctx, "oracle",
			"model", llm.Model(),
			"max_errors", synth.MaxErrors(),
		)

		switch {

		case *batchFlag:
			ce(runBatch(ctx, os.Stdin, os.Stdout, synth, resolver, int(concurrency)))

		case *chatFlag || (*doFlag == "" && term.IsTerminal(int(os.Stdin.Fd()))):
			line, closeLiner := openLiner()
			defer closeLiner()
			_, err := phases.Run(ctx, buildChat(synth, line, os.Stdout)(nil), phases.State{
				Username: *userFlag,
			})
			ce(err)

		default:
			instruction := *doFlag
			if instruction == "" {
				content, err := io.ReadAll(os.Stdin)
				ce(err)
				instruction = strings.TrimSpace(string(content))
			}
			var onFailure debugs.Tap
			if *tapFlag {
				onFailure = tap
			}
			code, err := once(ctx, os.Stdout, synth, resolver, onFailure, synths.Request{
				Content:  instruction,
				Username: *userFlag,
			})
			ce(err)
			exitCode = code
		}

	})
}

// once synthesizes one request and reports it, returning the process exit code.
// Synthesis and plan failures are reported; other errors are returned.
func once(
	ctx context.Context,
	w io.Writer,
	synth *synths.Synthesizer,
	resolver plans.UserResolver,
	onFailure debugs.Tap,
	req synths.Request,
) (int, error) {
	result, err := synth.Synthesize(ctx, req)
	var stackErr *stacks.StackError
	if err != nil && !errors.As(err, &stackErr) {
		return 0, err
	}
	var plan *plans.Plan
	if err == nil {
		p, planErr := plans.Build(result.Effects, resolver)
		if planErr != nil {
			err = planErr
		} else {
			plan = &p
		}
	}
	phases.Report(w, result, plan, err)
	if err == nil {
		return 0, nil
	}
	if onFailure != nil {
		onFailure(ctx, "synthesis failed", map[string]any{
			"request": req,
			"result":  result,
			"error":   err,
		})
	}
	return 1, nil
}

// simulate runs a hand-written program without any oracle.
func simulate(w io.Writer, machine *stacks.Machine, resolver plans.UserResolver, source string) bool {
	program := programs.Parse(source)
	if err := machine.Run(program); err != nil {
		fmt.Fprintf(w, "%s\n", program)
		phases.Report(w, nil, nil, err)
		return false
	}
	result := &synths.Result{
		Program:   program,
		Attempts:  1,
		Stack:     machine.Stack(),
		Variables: machine.Variables(),
		Effects:   machine.Effects(),
	}
	plan, err := plans.Build(result.Effects, resolver)
	if err != nil {
		phases.Report(w, result, nil, err)
		return false
	}
	phases.Report(w, result, &plan, nil)
	return true
}
