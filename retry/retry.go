package retry

// Retry re-runs an operation that failed transiently, with a configurable
// backoff strategy between attempts. dotdigital-cli wraps every campaign
// update in a Retry so that short network blips or 5xx responses from the
// service do not require operator intervention.
//
// Usage Example:
//
//	r := retry.NewExponentialRetry(
//	    retry.WithInitialDuration(100*time.Millisecond),
//	    retry.WithLogger(myLogger),
//	)
//
//	err := r.Do(5, "update-campaign", func(attempt int) (error, retry.ExitStrategy) {
//	    _, err := client.Campaigns().Update(campaign)
//	    if err != nil {
//	        if isTransient(err) {
//	            return err, retry.Continue // retry this error
//	        }
//	        return err, retry.StopNow // don't retry this error
//	    }
//	    return nil, retry.StopNow // success
//	})
//
// The RetriableFn receives the current attempt number (0-based) and returns
// an error and an ExitStrategy. The ExitStrategy determines whether to
// continue retrying (Continue) or stop immediately (StopNow), regardless of
// remaining attempts.
//
// NOTE: if attempts is 0, the fn is never called.
type Retry interface {
	Do(attempts int, fnName string, fn RetriableFn) error
}

type RetriableFn func(attempt int) (error, ExitStrategy)

type ExitStrategy bool

var StopNow ExitStrategy = true
var Continue ExitStrategy = false
