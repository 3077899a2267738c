/*
Package modules implements the module registry: a secondary, lower-trust
set of delegate callers that may request execution without collecting
owner approvals.

Modules have no approval rights and no threshold. Membership is the only
gate, and the engine is responsible for checking it on every delegated
execution request. The registry reuses the same sentinel-linked set
technique as the owner registry, but with a fully independent lifecycle.
*/
package modules
