package infra

import (
	"context"
	"math/rand/v2"
	"time"

	"golang.org/x/time/rate"
)

// Throttleはリクエストの間隔を min 以上、max 以下のランダムな長さに保ちます。
// 間隔は前回の Wait が戻った時刻から数えます。最初の Wait はすぐに戻ります。
type Throttle struct {
	minDelay time.Duration
	jitter   time.Duration
	last     time.Time
}

func NewThrottle(minDelay, maxDelay time.Duration) *Throttle {
	if minDelay < 0 {
		minDelay = 0
	}
	jitter := maxDelay - minDelay
	if jitter < 0 {
		jitter = 0
	}

	return &Throttle{
		minDelay: minDelay,
		jitter:   jitter,
	}
}

// Waitは次のリクエストを送ってよくなるまで待ちます。
func (t *Throttle) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if t.last.IsZero() {
		t.last = time.Now()
		return nil
	}

	delay := t.nextDelay()
	if delay <= 0 {
		t.last = time.Now()
		return nil
	}

	// 今回の間隔で1トークンだけ貯まる limiter を作り、前回の戻り時刻にそのトークンを使ったことにする
	limiter := rate.NewLimiter(rate.Every(delay), 1)
	limiter.ReserveN(t.last, 1)
	r := limiter.ReserveN(time.Now(), 1)

	if wait := r.Delay(); wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			r.Cancel()
			return ctx.Err()
		case <-timer.C:
		}
	}

	t.last = time.Now()
	return nil
}

func (t *Throttle) nextDelay() time.Duration {
	if t.jitter <= 0 {
		return t.minDelay
	}
	return t.minDelay + rand.N(t.jitter+1)
}
