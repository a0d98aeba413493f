// Command poolviz drives a Cached pool through a deliberate
// load-then-drain cycle and renders its live worker/queue counters, so
// the elastic growth and idle-shrink behavior described in SPEC_FULL.md
// §4.5 is visible rather than inferred from test assertions.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"

	"github.com/arjunmehta/flexpool/pool"
)

var (
	bold  = color.New(color.Bold)
	green = color.New(color.FgGreen)
	cyan  = color.New(color.FgCyan)
)

func main() {
	const (
		initial = 2
		maxi    = 8
		burstN  = 40
	)

	p := pool.NewPool(
		pool.WithMode(pool.Cached),
		pool.WithInitialWorkerCount(initial),
		pool.WithMaxWorkerCount(maxi),
		pool.WithMaxQueueLength(256),
		pool.WithOnWorkerSpawn(func(id int) {
			_, _ = green.Printf("  spawned worker %d\n", id)
		}),
		pool.WithOnWorkerRetire(func(id int) {
			_, _ = cyan.Printf("  retired worker %d\n", id)
		}),
	)

	if err := p.Start(0); err != nil {
		fmt.Fprintln(os.Stderr, "start:", err)
		os.Exit(1)
	}
	defer p.Shutdown()

	_, _ = bold.Println("═══════════════════════════════════════════")
	_, _ = bold.Println(" flexpool cached-mode live demo")
	_, _ = bold.Println("═══════════════════════════════════════════")

	bar := progressbar.NewOptions(burstN,
		progressbar.OptionSetDescription("submitting burst"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
	)

	gate := make(chan struct{})
	handles := make([]*pool.ResultHandle, burstN)
	for i := 0; i < burstN; i++ {
		handles[i] = p.Submit(pool.TaskFunc(func() pool.Value {
			<-gate
			return pool.NewValue(struct{}{})
		}))
		_ = bar.Add(1)
	}
	fmt.Println()

	renderCounters(p, "after submitting burst")

	deadline := time.Now().Add(3 * time.Second)
	for p.CurrentWorkerCount() < maxi && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}
	renderCounters(p, "after growth settles")

	close(gate)
	for _, h := range handles {
		h.Get()
	}
	renderCounters(p, "immediately after drain")

	_, _ = bold.Println("\nwaiting for idle workers to retire back to baseline...")
	deadline = time.Now().Add(90 * time.Second)
	for p.CurrentWorkerCount() > initial && time.Now().Before(deadline) {
		time.Sleep(time.Second)
	}
	renderCounters(p, "after idle shrink")
}

func renderCounters(p *pool.Pool, label string) {
	fmt.Println()
	_, _ = bold.Println(label)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("current workers", "idle workers", "queue size")
	_ = table.Append(
		fmt.Sprintf("%d", p.CurrentWorkerCount()),
		fmt.Sprintf("%d", p.IdleWorkerCount()),
		fmt.Sprintf("%d", p.QueueSize()),
	)
	_ = table.Render()
}
