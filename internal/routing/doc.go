/*
Package routing implements the two halves of request-to-handler resolution:

  - Collector: walks the component tree (globally) or the state-derived
    ancestor chain (locally) and produces the candidate set of handlers
    whose static criteria match.
  - Resolver: evaluates guard predicates over the candidate set in a fixed
    priority order and selects exactly one winner, or none.

Both halves share a single sequential short-circuiting scan, so the four
collector fallback stages and the four resolver priority tiers follow the
same evaluation discipline.
*/
package routing
