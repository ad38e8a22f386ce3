// Package algokit is your in-memory toolbox of classic data structures
// and algorithms — expression-notation conversion, linked lists, sorting,
// searching, sparse matrices, and graph traversal.
//
// 🚀 What is algokit?
//
//	A small, dependency-light library that brings together:
//		• Expression engine: infix↔postfix↔prefix conversion (shunting-yard)
//		  and stack-based postfix evaluation
//		• Singly linked lists: insert, delete, search, reverse, sort, merge
//		• Sorting: selection, insertion, shell, bucket, radix
//		• Searching: linear and binary
//		• Sparse matrices: triplet compaction, simple & fast transpose
//		• Graphs: adjacency list with recursive DFS, iterative DFS, BFS
//
// ✨ Why choose algokit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – typed sentinel errors, never a panic or exit
//   - Pure Go – no cgo, each call owns its own state, safe for concurrency
//   - Extensible – functional options and hooks (OnVisit…) for custom logic
//
// Under the hood, everything is organized under focused subpackages:
//
//	expr/    — notation conversion engine + postfix evaluator
//	list/    — generic singly linked list
//	sorting/ — comparison and distribution sorts
//	search/  — linear & binary search
//	sparse/  — sparse-matrix triplet form and transposes
//	graph/   — adjacency-list graph, DFS/BFS traversals
//	cmd/     — exprcalc, a line-oriented CLI over expr
//
// Quick example:
//
//	post, _ := expr.InfixToPostfix("A+B*C") // "ABC*+"
//	val, _ := expr.EvaluatePostfix("231*+9-") // -4
//
// Dive into each package's doc.go for tutorials, complexity notes, and the
// full error taxonomy.
//
//	go get github.com/katalvlaran/algokit
package algokit
