/*
Package config loads the optional astraldev defaults file.

	            +-------------+
	            |   Config    |
	            | (Defaults)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   YAML    |           |   HCL   |
	| Parser    |           | Parser  |
	+-----------+           +---------+

🎯 Purpose:
- Overrides the constants the engine scripts used to hardcode
- Keeps a missing file equivalent to the built-in defaults
- Rejects unknown keys so typos do not silently fall back

🔍 Example:

	cfg, err := config.LoadOrDefault(ctx, afero.NewOsFs(), ".astraldev.hcl")
	if err != nil {
		return err
	}
	rule := cfg.IncludeRule()
*/
package config
