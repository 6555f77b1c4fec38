/*
Package ddf parses Windows MDM DDF (Device Description Framework) documents
into a navigable management tree.

DDF documents describe a tree of configuration nodes managed by a
configuration service provider (CSP). Each <Node> carries a name, an
optional explicit path, an optional <DFProperties> metadata block and any
number of child nodes. Published DDF files are inconsistent about XML
namespaces, so all element matching in this package is performed on
lowercased local names only.
*/
package ddf
