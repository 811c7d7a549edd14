// Package review provides the Review aggregate: a customer's rating and
// comment on a product they received, optionally answered by exactly one
// baker reply.
package review
