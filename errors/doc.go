/*
Package errors implements custom error interfaces for quorum.

Every rejection an engine operation can produce wraps a registered root
error with a stable numeric code. Calling tooling branches on the cause
using the root error Is method, never by parsing the message text.

Root errors for generic failure classes are declared in this package.
Extensions declare their own root errors using Register, inside a code
range reserved for that extension.
*/
package errors
