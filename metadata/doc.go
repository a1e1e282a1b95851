/*
Package metadata exposes a flat read/write view over ISO19139 catalogue
records.

Every accessor takes the document it works on and derives its answer from the
live tree, nothing is cached between calls. Writers only touch the smallest
subtree they need: containers are located or created on demand and unrelated
siblings are left where they are.

Reading below the identification level of a record without identification
information fails with ErrStructureMissing. Values of an unexpected shape, e.g.
an English translation requested from a plain text property, are reported as
empty values instead.

The package does not synchronize access: concurrent writers on the same
document must be serialized by the caller.
*/
package metadata
