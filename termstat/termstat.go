// Package termstat provides a stats implementation which periodically
// writes generation progress to the given writer. It is meant for watching
// a long run at the terminal in lieu of a real metrics backend.
package termstat

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Collector collects counters and gauges and prints them to the terminal on
// a fixed interval while any of them are changing.
type Collector struct {
	lock    sync.Mutex
	indexes map[string]int
	names   []string
	counts  []int64
	gauges  map[string]float64
	changed bool
	out     io.Writer
	done    chan struct{}
}

// NewCollector initializes and returns a new Collector writing to out every
// two seconds. Call Stop when the run finishes to get a final line.
func NewCollector(out io.Writer) *Collector {
	c := &Collector{
		indexes: make(map[string]int),
		gauges:  make(map[string]float64),
		out:     out,
		done:    make(chan struct{}),
	}
	go func() {
		tick := time.NewTicker(time.Second * 2)
		defer tick.Stop()
		for {
			select {
			case <-tick.C:
				c.write("\r")
			case <-c.done:
				return
			}
		}
	}()
	return c
}

// Count adds value to the named counter at the specified rate.
func (c *Collector) Count(name string, value int64, rate float64, tags ...string) {
	c.lock.Lock()
	defer c.lock.Unlock()

	idx, ok := c.indexes[name]
	if !ok {
		idx = len(c.counts)
		c.counts = append(c.counts, 0)
		c.names = append(c.names, name)
		c.indexes[name] = idx
	}
	if rate < 1 && rand.Float64() > rate {
		return
	}
	c.counts[idx] += value
	c.changed = true
}

// Gauge records the current value of the named gauge.
func (c *Collector) Gauge(name string, value float64, rate float64, tags ...string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.gauges[name] = value
	c.changed = true
}

// Stop halts the periodic output and writes one final line.
func (c *Collector) Stop() {
	close(c.done)
	c.lock.Lock()
	c.changed = true
	c.lock.Unlock()
	c.write("")
	fmt.Fprintln(c.out)
}

func (c *Collector) write(prefix string) {
	sb := strings.Builder{}
	c.lock.Lock()
	if !c.changed {
		c.lock.Unlock()
		return
	}
	for i := 0; i < len(c.counts); i++ {
		fmt.Fprintf(&sb, "%s: %d ", c.names[i], c.counts[i])
	}
	for name, v := range c.gauges {
		fmt.Fprintf(&sb, "%s: %.2f ", name, v)
	}
	c.changed = false
	c.lock.Unlock()
	fmt.Fprint(c.out, prefix+sb.String())
}
