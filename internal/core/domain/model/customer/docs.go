// Package customer provides the Customer aggregate: a buyer account with a
// loyalty balance that accrues on every delivered purchase, plus the loyalty
// level ladder derived from that balance.
package customer
