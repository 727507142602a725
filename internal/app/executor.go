package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/rashi-tree-guide/internal/platform/logging"
)

// Operations run as a fixed pipeline: Validate → Perform → Verify → Respond.
//
//  1. VALIDATE - check inputs before anything leaves the process
//  2. PERFORM  - call the external collaborators
//  3. VERIFY   - check what came back against the contract we rely on
//  4. RESPOND  - assemble the result for the caller
//
// The first failing step aborts the rest. Each step runs in its own span.

const instrumentationName = "github.com/jsamuelsen/rashi-tree-guide/internal/app"

// ExecutionStep names a step of the pipeline.
type ExecutionStep string

const (
	StepValidate ExecutionStep = "validate"
	StepPerform  ExecutionStep = "perform"
	StepVerify   ExecutionStep = "verify"
	StepRespond  ExecutionStep = "respond"
)

// ExecutionError records the step at which an operation failed.
// It unwraps to the cause, so domain sentinels still match with errors.Is.
type ExecutionError struct {
	Step    ExecutionStep
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Step, e.Message, e.Cause)
	}

	return fmt.Sprintf("%s failed: %s", e.Step, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

// Executor runs operations through the pipeline.
type Executor struct {
	logger *slog.Logger
	tracer trace.Tracer
}

// NewExecutor creates an executor. A nil logger falls back to slog.Default.
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{
		logger: logger,
		tracer: otel.Tracer(instrumentationName),
	}
}

// Operation holds the step functions. A nil step is skipped and passes the
// zero value along.
type Operation[I, P, V, O any] struct {
	Name string

	Validate func(ctx context.Context, input I) error
	Perform  func(ctx context.Context, input I) (P, error)
	Verify   func(ctx context.Context, input I, performed P) (V, error)
	Respond  func(ctx context.Context, input I, verified V) (O, error)
}

// Execute runs op against input. The returned error is an *ExecutionError.
func Execute[I, P, V, O any](ctx context.Context, exec *Executor, op Operation[I, P, V, O], input I) (O, error) {
	var (
		zero      O
		performed P
		verified  V
		result    O
	)

	logger, ok := logging.Lookup(ctx)
	if !ok {
		logger = exec.logger
	}

	logger = logger.With(slog.String("operation", op.Name))
	start := time.Now()

	ctx, span := exec.tracer.Start(ctx, op.Name)
	defer span.End()

	run := func(step ExecutionStep, message string, fn func(context.Context) error) error {
		stepCtx, stepSpan := exec.tracer.Start(ctx, op.Name+"."+string(step),
			trace.WithAttributes(attribute.String("step", string(step))),
		)
		defer stepSpan.End()

		logger.Log(stepCtx, logging.LevelTrace, "step started", slog.String("step", string(step)))

		if err := fn(stepCtx); err != nil {
			stepSpan.RecordError(err)
			stepSpan.SetStatus(codes.Error, message)
			logger.WarnContext(stepCtx, "step failed",
				slog.String("step", string(step)),
				slog.Any("error", err),
			)

			return &ExecutionError{Step: step, Message: message, Cause: err}
		}

		return nil
	}

	steps := []struct {
		step    ExecutionStep
		message string
		fn      func(context.Context) error
	}{
		{StepValidate, "input validation failed", func(ctx context.Context) error {
			if op.Validate == nil {
				return nil
			}

			return op.Validate(ctx, input)
		}},
		{StepPerform, "operation failed", func(ctx context.Context) error {
			if op.Perform == nil {
				return nil
			}

			var err error
			performed, err = op.Perform(ctx, input)

			return err
		}},
		{StepVerify, "verification failed", func(ctx context.Context) error {
			if op.Verify == nil {
				return nil
			}

			var err error
			verified, err = op.Verify(ctx, input, performed)

			return err
		}},
		{StepRespond, "response assembly failed", func(ctx context.Context) error {
			if op.Respond == nil {
				return nil
			}

			var err error
			result, err = op.Respond(ctx, input, verified)

			return err
		}},
	}

	for _, s := range steps {
		if err := run(s.step, s.message, s.fn); err != nil {
			span.SetStatus(codes.Error, err.Error())

			return zero, err
		}
	}

	logger.InfoContext(ctx, "operation completed", slog.Duration("duration", time.Since(start)))

	return result, nil
}

// GetExecutionStep extracts the failing step from an execution error.
func GetExecutionStep(err error) (ExecutionStep, bool) {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Step, true
	}

	return "", false
}
