/*
Package orm provides a light db wrapper for the engine registries.

Break state space into prefixed sections called Buckets.
* Each bucket contains only one type of object.
* It has a primary key and easy queries for one element.

Sequence provides strictly monotonic 8-byte counters; the engine nonce
and the transaction ids are sequences.

LinkedSet provides the sentinel-linked ordered set used by the owner and
module registries: an adjacency map from member to successor with a
reserved sentinel entry, giving O(1) membership, O(1) head insert and
O(1) removal when the predecessor is known.
*/
package orm
