package replace

import (
	"errors"
	"fmt"

	dotdigital_errors "github.com/lindar-open/dotdigital-cli/errors"
	"github.com/lindar-open/dotdigital-cli/logger"
	"github.com/lindar-open/dotdigital-cli/rate"
	"github.com/lindar-open/dotdigital-cli/retry"
)

// FatalError marks a failure the run cannot continue past: the rate
// limiter's wait budget ran out, or an operation kept failing transiently
// after every retry. A service-level rejection of one campaign is not
// fatal and is returned unwrapped.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("aborting run: %v", e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// ExecutorConfig carries the collaborators for one run. Executors are
// built once per run from explicit configuration; nothing is shared
// process-wide.
type ExecutorConfig struct {
	// Limiter admits update operations; the CLI default keeps the run
	// under 5 updates per minute, waiting up to an hour
	// default: rate.NewWindowLimiter()
	Limiter rate.Limiter

	// Retry re-runs transiently failing operations
	// default: retry.NewExponentialRetry()
	Retry retry.Retry

	// MaxAttempts is the total number of tries per operation,
	// counting the first
	// default: 5
	MaxAttempts int

	// Logger
	// default: logger.Noop
	Logger logger.Logger
}

func defaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		MaxAttempts: 5,
		Logger:      &logger.Noop{},
	}
}

// Executor paces and retries remote mutation calls. Each unit of work is
// admitted through the rate limiter first, then run under the retry
// policy.
type Executor struct {
	config ExecutorConfig
}

func NewExecutor(config ExecutorConfig) *Executor {
	def := defaultExecutorConfig()
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = def.MaxAttempts
	}
	if config.Logger == nil {
		config.Logger = def.Logger
	}
	if config.Limiter == nil {
		config.Limiter = rate.NewWindowLimiter(
			rate.WithWindowLogger(config.Logger),
		)
	}
	if config.Retry == nil {
		config.Retry = retry.NewExponentialRetry(
			retry.WithLogger(config.Logger),
		)
	}
	return &Executor{config: config}
}

// Do admits one unit of work and runs it. The returned error is:
//   - nil when fn eventually succeeded
//   - *FatalError when admission timed out or transient failures
//     survived all attempts; the caller must abort the run
//   - fn's own error when the service rejected the operation; the caller
//     may carry on with the next campaign
func (e *Executor) Do(name string, fn func() error) error {
	if err := e.config.Limiter.Acquire(); err != nil {
		return &FatalError{Err: fmt.Errorf("%s admission: %w", name, err)}
	}

	err := e.config.Retry.Do(e.config.MaxAttempts, name, func(attempt int) (error, retry.ExitStrategy) {
		err := fn()
		if err == nil {
			return nil, retry.StopNow
		}
		if isTransient(err) {
			return err, retry.Continue
		}
		return err, retry.StopNow
	})
	if err == nil {
		return nil
	}
	if isTransient(err) {
		return &FatalError{Err: err}
	}
	return err
}

func isTransient(err error) bool {
	var apiErr *dotdigital_errors.ApiError
	return errors.As(err, &apiErr) && apiErr.Temporary()
}
