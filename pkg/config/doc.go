/*
Package config loads saved edit recipes for adif.

	            +-------------+
	            |   Recipe    |
	            | (add/delete)|
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   HCL    | |   JSON   |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Keeps a repeatable set of field edits in a file
- Picks a parser from the file extension
- Validates names, patterns and mode before any log is read

🔄 Flow:
1. Reads the recipe file
2. Parses format-specific syntax
3. Validates and fills defaults
4. Converts to adif.Options

🔍 Example (YAML):

	override: true
	delete:
	  - N3FJP%
	add:
	  - name: OPERATOR
	    value: KN2D

🔍 Example (HCL):

	delete = ["N3FJP%"]

	add "OPERATOR" {
	  value = env.OPERATOR
	}
*/
package config
