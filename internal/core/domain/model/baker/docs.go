// Package baker provides the Baker aggregate: a seller's account and
// storefront, gated by an admin verification workflow. Only verified bakers
// appear in the public catalog and can list products.
package baker
