/*
Package iso provides the in-memory tree used to hold ISO19139 catalogue
documents.

The tree is deliberately generic: every element, attribute and namespace found
in the source document is kept, so callers can mutate a handful of properties
and render the document again without losing anything they did not touch.
Elements inserted with Insert or Ensure are placed according to the child
order defined by the ISO19139 schemas (see order.go) when the parent is known.
*/
package iso
