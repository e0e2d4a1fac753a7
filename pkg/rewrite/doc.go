/*
Package rewrite implements the scoped text replacer used by the rename commands.

	root/
	├── main.cpp            visited (root files are always in scope)
	├── docs/               skipped (not tracked)
	└── source/             tracked: every descendant is visited
	    ├── Core/App.h      rewritten when it contains the search text
	    └── notes.md        ignored (extension not recognized)

🔄 Flow:
 1. List the root and visit its children in lexical order
 2. Descend into a directory only if it is named like the sentinel or the
    walk is already inside a sentinel subtree
 3. For recognized files, apply the text.Rule and write back only on a match
 4. Record every outcome in a Report and notify the Reporter

Traversal state is a plain bool passed down the recursion, so sibling
directories never observe state from a subtree that has already returned.

Per-file errors are recorded and the walk continues. There is no rollback:
an interrupted run leaves already rewritten files rewritten.
*/
package rewrite
