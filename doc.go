// Package ontologizerlib is the in-memory foundation for ontology-driven
// term-enrichment analysis: a generic directed-graph engine plus the
// ontology layer built on top of it.
//
// 🚀 What is ontologizerlib?
//
//	A pure-Go library that brings together:
//		• Graph engine: generic directed graphs with payload-carrying edges
//		• Traversals: multi-source BFS (forward/reverse/filtered), reachability
//		• Paths: Dijkstra, Bellman–Ford (shortest & longest), topological order
//		• Reductions: induced subgraphs, transitive closure, path-maintaining
//		  subgraphs, vertex merging
//		• Ontology: root fixing, term levels, relevance filtering by subset and
//		  subontology, redundant-relation detection, derived sub-ontologies
//		• Slim views: flattened integer-indexed snapshots for scoring loops
//
// ✨ Why choose ontologizerlib?
//
//   - Deterministic – insertion-ordered iteration, reproducible derivations
//   - Explicit – sentinel errors, repairs reported instead of logged
//   - Pure Go – no cgo, generics for vertices and edge payloads
//   - Extensible – bring your own parser, hand a TermMap to ontology.Create
//
// Everything is organized under two subpackages:
//
//	dag/      — the generic directed-graph engine and its algorithms
//	ontology/ — terms, identifiers, relations and the Ontology built on dag
//
// Quick start:
//
//	terms := ontology.NewTermContainer(parsedTerms)
//	onto, report, err := ontology.Create(terms)
//	if err != nil {
//		// the catalog was empty or had no usable root
//	}
//	_ = report // self-loops and dangling relations skipped during the build
//
//	levels, _ := onto.TermLevels(interesting)
//	slim := onto.SlimGraphView()
//
// See the dag and ontology package docs for the full API surface.
//
//	go get github.com/ontologizer/ontologizerlib
package ontologizerlib
