// Command logscan is a local exerciser for the log-scan core: it runs one
// of the five query shapes against a file or glob from the command line
// and prints the result as JSON. The MCP/RPC transport and tool-dispatch
// layer that front this core in production are out of scope here; this
// binary exists so the core can be driven and inspected without them.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/forensiclog/logscan-core/internal/buildinfo"
	"github.com/forensiclog/logscan-core/internal/envflag"
	"github.com/forensiclog/logscan-core/internal/logger"
	"github.com/forensiclog/logscan-core/internal/timeparse"
	"github.com/forensiclog/logscan-core/logscan"
)

func main() {
	app := &cli.App{
		Name:    "logscan",
		Usage:   "ad-hoc log-scan-core query runner",
		Version: buildinfo.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Required: true, Usage: "file, directory, or glob pattern to scan"},
			&cli.StringFlag{Name: "format", Value: "auto", Usage: "apache|nginx|syslog|json|csv|auto"},
			&cli.StringFlag{Name: "shape", Required: true, Usage: "count|group_count|num_aggregate|time_buckets|regex_search"},
			&cli.StringFlag{Name: "filter-status", Usage: `status filter, e.g. ">=400" or "4xx"`},
			&cli.StringFlag{Name: "filter-text", Usage: "literal substring filter"},
			&cli.StringFlag{Name: "filter-regex", Usage: "regex filter, or the regex_search pattern itself"},
			&cli.BoolFlag{Name: "case-sensitive"},
			&cli.StringFlag{Name: "filter-time-start", Usage: "half-open range start, parsed per-format (Apache bracketed, syslog short, ISO 8601)"},
			&cli.StringFlag{Name: "filter-time-end", Usage: "half-open range end, parsed per-format"},
			&cli.StringFlag{Name: "group-by", Usage: "field name for group_count"},
			&cli.StringFlag{Name: "aggregate-op", Usage: "sum|avg|min|max"},
			&cli.StringFlag{Name: "aggregate-column", Usage: "numeric field name for num_aggregate"},
			&cli.StringFlag{Name: "bucket", Value: "minute", Usage: "minute|hour|day"},
			&cli.BoolFlag{Name: "chronological", Usage: "order time_buckets by key instead of value"},
			&cli.IntFlag{Name: "limit", Value: 100},
			&cli.BoolFlag{Name: "csv-header", Usage: "treat the CSV/TSV first line as a header"},
			&cli.BoolFlag{Name: "dry-run"},
			&cli.DurationFlag{Name: "timeout", Value: 0, Usage: "0 disables the deadline"},
		},
		Action: run,
	}

	envflag.Parse()
	buildinfo.Init()
	logger.Init()

	if err := app.Run(os.Args); err != nil {
		logger.Fatalf("%s", err)
	}
}

func run(c *cli.Context) error {
	q, err := queryFromFlags(c)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if d := c.Duration("timeout"); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	p, err := logscan.Plan(q)
	if err != nil {
		return fmt.Errorf("plan: %w", err)
	}

	res, err := logscan.Run(ctx, q, p)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func queryFromFlags(c *cli.Context) (*logscan.Query, error) {
	format, err := logscan.ParseFormat(c.String("format"))
	if err != nil {
		return nil, err
	}
	shape, err := logscan.ParseShape(c.String("shape"))
	if err != nil {
		return nil, err
	}
	bucket, err := timeparse.ParseBucket(c.String("bucket"))
	if err != nil {
		return nil, err
	}
	refYear := time.Now().Year()

	q := &logscan.Query{
		PathOrGlob:      c.String("path"),
		Format:          format,
		Shape:           shape,
		FilterStatus:    c.String("filter-status"),
		FilterText:      c.String("filter-text"),
		FilterRegex:     c.String("filter-regex"),
		CaseSensitive:   c.Bool("case-sensitive"),
		GroupBy:         c.String("group-by"),
		AggregateColumn: c.String("aggregate-column"),
		Bucket:          bucket,
		Chronological:   c.Bool("chronological"),
		Limit:           c.Int("limit"),
		CSVHasHeader:    c.Bool("csv-header"),
		DryRun:          c.Bool("dry-run"),
		RefYear:         refYear,
	}

	if op := c.String("aggregate-op"); op != "" {
		aggOp, err := logscan.ParseAggregateOp(op)
		if err != nil {
			return nil, err
		}
		q.AggregateOp = aggOp
		q.HasAggregateOp = true
	}

	if s := c.String("filter-time-start"); s != "" {
		t, err := logscan.ParseTimeBound(s, format, refYear, nil)
		if err != nil {
			return nil, err
		}
		q.TimeStart = t
	}
	if s := c.String("filter-time-end"); s != "" {
		t, err := logscan.ParseTimeBound(s, format, refYear, nil)
		if err != nil {
			return nil, err
		}
		q.TimeEnd = t
	}

	return q, nil
}
