/*
Package config resolves where specfix looks for files and which files qualify.

	+-------------+      +-----------------------+
	|  Default()  |      | .specfix.hcl / .yaml  |
	|  (built-in) |      | / .json (optional)    |
	+------+------+      +-----------+-----------+
	       |                         |
	       +-----------+-------------+
	                   |
	            +------+------+
	            |   Config    |
	            | dir, suffix |
	            +-------------+

🎯 Purpose:
- Provides the built-in target directory and file suffix
- Loads overrides from an HCL, YAML or JSON file
- Validates the result before any file is touched

🔄 Flow:
1. Start from Default()
2. Overlay values from the config file, if one is given
3. Overlay values from explicitly set flags
4. Validate
*/
package config
