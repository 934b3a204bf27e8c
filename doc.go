// datagen generates synthetic retail sales datasets for exercising
// downstream analytics pipelines. It produces four related tables forming a
// dimensional star layout - customers, products, sales reps, and a
// transactions fact table whose foreign keys reference the three dimensions.
//
// The stages of a generation run, in order:
//
// 1. Allocation
//
//	Every record gets a stable, format-fixed identifier: an entity prefix
//	followed by a zero-padded counter (CUST00000000, TXN000000000000, ...).
//	A Nexter hands out counter values; an IDFormat renders them. Dimension
//	identifiers are retained in an IDPool as they are allocated.
//
// 2. Generation
//
//	The fake package holds one generator per entity. Generators draw
//	categorical fields from fixed domains, numeric fields from closed
//	intervals, and dates from per-entity lookback windows, all from a
//	seeded random source so that runs are reproducible. The transaction
//	generator samples its foreign keys from the dimension IDPools, with
//	replacement, so referential integrity holds by construction.
//
// 3. Writing
//
//	The parquet and csv packages each provide a batch writer which
//	accumulates records up to a configured batch size and flushes them to
//	one file per batch. Peak memory is bounded by the batch size, not the
//	target row count, which is what lets a run produce tens of millions of
//	transactions on a small machine.
//
// The usecase/dataset package wires the stages together and is exposed as
// the "generate" and "quick" subcommands of cmd/datagen.
package datagen
