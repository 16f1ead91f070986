// Package order holds the kitchen order aggregate: the priced set of lines a
// table (physical or delivery proxy) has sent toward the kitchen. The order
// references its table only by snapshot (id, number, name) so the table's
// identity survives across many orders, and it exclusively owns its Item
// lines, which are price/name snapshots immune to later catalog edits.
package order
