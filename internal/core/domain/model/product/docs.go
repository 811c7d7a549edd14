// Package product provides the Product aggregate: a catalog listing owned by
// a baker, carrying the live price that gets snapshotted into orders at
// checkout.
package product
