// Package imagecheck checks product image URLs before or after a seed run.
package imagecheck

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"
)

const defaultWorkers = 8

type Result struct {
	URL    string
	Status int
	Err    error
}

func (r Result) OK() bool {
	return r.Err == nil && r.Status >= 200 && r.Status < 300
}

type Checker struct {
	Client  *http.Client
	Workers int
	// Observe, if set, is called once per checked URL.
	Observe func(ok bool)
}

func New() *Checker {
	return &Checker{
		Client:  &http.Client{Timeout: 60 * time.Second},
		Workers: defaultWorkers,
	}
}

// Check sends a HEAD request for every URL and returns the results in input
// order.
func (c *Checker) Check(ctx context.Context, urls []string) []Result {
	results := make([]Result, len(urls))

	workers := c.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = c.head(ctx, urls[i])
				if c.Observe != nil {
					c.Observe(results[i].OK())
				}
			}
		}()
	}

	for i := range urls {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

func (c *Checker) head(ctx context.Context, url string) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return Result{URL: url, Err: fmt.Errorf("failed to create request for %s: %w", url, err)}
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.Client.Do(req)
	if err != nil {
		log.Printf("[ImageCheck] %s: %v", url, err)
		return Result{URL: url, Err: err}
	}
	resp.Body.Close()

	return Result{URL: url, Status: resp.StatusCode}
}
