package server

import (
	"hash/fnv"
	"io"
	"net"
	"net/http"
	"time"
)

type limiterBucket struct {
	ticker  *time.Ticker
	tickets chan struct{}
}

// limiter rations requests per client: addresses hash onto buckets, each
// bucket releases one request per period and queues at most maxPending.
type limiter struct {
	buckets []limiterBucket
}

func newLimiter(buckets int, period time.Duration, maxPending int) *limiter {
	b := make([]limiterBucket, buckets)
	for i := 0; i < buckets; i++ {
		b[i] = limiterBucket{
			ticker:  time.NewTicker(period),
			tickets: make(chan struct{}, maxPending),
		}
	}

	return &limiter{
		buckets: b,
	}
}

func (l *limiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var bucket int
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			h := fnv.New64()
			io.WriteString(h, host)
			bucket = int(h.Sum64() % uint64(len(l.buckets)))
		}

		select {
		case l.buckets[bucket].tickets <- struct{}{}:
			<-l.buckets[bucket].ticker.C
			next.ServeHTTP(w, r)
			<-l.buckets[bucket].tickets

		default:
			writeJSON(w, r, http.StatusTooManyRequests, errorResponse{Error: "too many requests"})
		}
	})
}
