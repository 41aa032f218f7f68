// Package ontology builds and queries the term DAG that term-enrichment
// computations run against.
//
// Overview:
//
//   - An Ontology is constructed once from a TermMap (the term catalog a
//     parser produced): one graph vertex per term, one parent→term edge
//     per declared parent relation. Self-referencing relations and
//     relations to terms missing from the catalog are skipped and
//     reported in the BuildReport rather than aborting construction.
//   - When several terms have no parents, an artificial root is
//     synthesized above them (named "Gene Ontology" for the classic GO
//     triple, "root" otherwise); a single top-level term becomes the root
//     directly.
//   - Read queries cover ancestors, descendants, siblings, term levels
//     (longest path from the root), relevance filtering by subset and
//     subontology, redundant-relation detection, and reduced or induced
//     sub-ontologies. Derived ontologies are separate snapshots sharing
//     the catalog; only MergeTerms mutates an ontology in place.
//
// Concurrency:
//
//   - Construction is single-threaded. Afterwards all read queries are
//     safe for unlimited concurrent readers as long as no mutation
//     (MergeTerms) is in flight. The lazy alternate-identifier index is
//     built exactly once even under concurrent first use.
package ontology
