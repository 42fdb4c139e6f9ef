/*
Package operation drives a single pass of one or more transformers over a directory.

	+-----------+     +-------------+     +--------------+     +-----------+
	| ReadDir   | --> | suffix      | --> | transformers | --> | write if  |
	| (no walk) |     | selection   |     | (in order)   |     | changed   |
	+-----------+     +-------------+     +--------------+     +-----------+

🎯 Purpose:
- Lists the target directory without descending into subdirectories
- Opens only files whose name ends with the configured suffix
- Applies every transformer to the full file content, in order
- Rewrites a file only when its content changed, keeping its mode

⚡ Failure model:
- Any filesystem error aborts the pass; files already rewritten stay rewritten
- A file no transformer changes is not an error and is not reported
*/
package operation
