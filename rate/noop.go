package rate

type NoopLimiter struct {
}

var _ Limiter = &NoopLimiter{}

func (n *NoopLimiter) Acquire() error {
	return nil
}
