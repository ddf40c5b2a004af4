// Package plan builds enumerator pipelines over int64 values from declarative
// configuration.
//
// A plan is an ordered list of stages. Each stage maps onto one enumerator
// combinator:
//
//	drop       Drop(n)
//	take       Take(n)
//	until_eq   UntilEq(value)
//	until_gt   Until(x > value)
//	where_neq  WhereNeq(value)
//	where_gt   Where(x > value)
//	negate     Select(-x)
//	abs        Select(|x|)
//
// Plans are usually loaded with the config package:
//
//	name: trimmed
//	stages:
//	  - op: drop
//	    n: 1
//	  - op: until_eq
//	    value: -1
//
// or written compactly, for example in the PLAN_EXPR environment variable:
//
//	drop:1,until_eq:-1,negate
package plan
