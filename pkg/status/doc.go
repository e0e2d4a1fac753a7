/*
Package status describes what a rewrite run did to each filesystem item.

	+-------------+       +-------------+
	|  FileEntry  | ----> |   Summary   |
	| (per item)  |       |  (per run)  |
	+-------------+       +------+------+
	                             |
	                      +------+------+
	                      | RenderTable |
	                      +-------------+

🎯 Purpose:
- Names the possible outcomes of visiting a file
- Aggregates outcomes into counts
- Renders the end-of-run table shown by the CLI

The package holds no filesystem logic; the rewrite package produces entries
and the log package prints them as they happen.
*/
package status
