/*
Package operation runs one adif command over one log.

	+-------------+
	|  Operation  |
	| (edit/conv) |
	+------+------+
	       |
	+------+------+      +-------------+
	|  pkg/adif   | ---> | file / diff |
	|  (engine)   |      |  (output)   |
	+-------------+      +-------------+

🎯 Purpose:
- Reads the input log (or stdin)
- Hands it to the engine with the selected mode and field operations
- Writes the result atomically, or prints a diff instead
- Reports progress and a summary on the console

🔄 Flow:
1. Validates options
2. Reads the whole input
3. Processes it; any conflict stops the run before output
4. Emits output or diff
5. Logs per-record changes (verbose) and the summary

⚡ Operations:
- EditOperation: add/delete fields
- ConvertOperation: oneline / multiline layout

🏃 Runner:
OperationRunner times each operation and, when async, returns as soon as
the context is cancelled.
*/
package operation
