/*
Package extract walks parsed DDF management trees and collects one record
per Exec-capable node.

The walk carries two pieces of inherited context down the tree: the address
prefix composed from ancestor names (and explicit Path overrides), and the
chain of ancestor DFProperties blocks ordered nearest first. Optional
metadata missing from a node's own block resolves to the closest ancestor's
value through the chain; nothing is ever fabricated. Records across all
documents are deduplicated by OMA-URI and ordered by (source, OMA-URI) so
repeated runs over the same bundle produce identical output, CmdIDs aside.
*/
package extract
