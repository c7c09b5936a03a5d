// Package clique implements the clique family of algorithms over a
// core.Graph: maximum clique by depth-first extension, arbitrary-set
// validation, enumeration of all maximal cliques via Bron-Kerbosch, and
// clique counting bucketed by size with a triangle-counting fast path.
//
// Each file covers one group of operations (maximum-clique search in
// maxclique.go, counting in cliquecount.go), and errors are package-level
// sentinels rather than ad hoc strings, consistent with the rest of
// this module's packages.
package clique
