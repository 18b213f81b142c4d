// Package proximity ranks dataset locations by great-circle distance from a
// query point.
//
// FindNearest is the reference implementation: a linear scan that returns
// at most domain.MaxResults locations within a radius, nearest first, with
// ties kept in dataset order. Index answers the same query through an R-tree
// prefilter and must always return exactly what FindNearest returns.
//
// Everything in this package is a pure function of its inputs. An Index is
// immutable after NewIndex and safe for concurrent readers.
package proximity
