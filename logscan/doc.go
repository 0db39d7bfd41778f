// Package logscan is the log-scan core: format-aware, byte-level scanners
// that filter, count, group, and aggregate over large semi-structured log
// files directly against memory-mapped bytes, without building a
// row-oriented table first.
//
// The package answers five query shapes (count, group_count,
// num_aggregate, time_buckets, regex_search) against four wire formats
// (Apache/Nginx combined, syslog RFC 3164, JSON-lines, CSV/TSV). Nothing in
// this package outlives a single call to Run: byte sources are opened and
// closed by Run itself, and accumulators are created, filled, fused,
// shaped, and dropped inside one query.
//
// The MCP/RPC transport, tool dispatch, schema auto-detection beyond a
// format-name guess, and the fallback query engine for shapes this package
// cannot cover are all external collaborators and out of scope here.
package logscan
