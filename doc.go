/*
Package mdmcommands is a set of libraries for extracting SyncML <Exec>
command definitions from Microsoft's Windows MDM CSP DDF schema bundles.

Doing the heavy lifting of DDF document parsing, management tree traversal
with DFProperties inheritance, and SyncML payload synthesis, these libraries
allow device-management tooling to keep an up-to-date catalogue of the
executable endpoints exposed by Windows configuration service providers
without manual curation.

The ddf package parses DDF XML documents into a navigable node tree. The
extract package walks those trees, resolving inherited metadata and
collecting one record per Exec-capable node, deduplicated and ordered for
reproducible output. The syncml package renders the <Exec> payload fragment
embedded in each record. The fetch and bundle packages locate, download and
unpack the published DDF ZIP bundle.

See cmd/mdmexec for the command line front end.
*/
package mdmcommands
