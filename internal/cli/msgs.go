package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Substitute ${NAME} tokens in templates"
	MsgVersionShort   = "Print version information"
	MsgVersionLong    = "Print detailed version information including commit hash and build date"
	MsgGuideShort     = "Show the usage guide"
	MsgGenConfigShort = "Print the effective configuration as TOML"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Compute results but write nothing; report what would be written"
	MsgFlagText      = "Inline template text"
	MsgFlagFile      = "Template file path or http(s) URL"
	MsgFlagDir       = "Directory to scan for template files"
	MsgFlagOutput    = "Output file, or output root in directory mode (default: stdout)"
	MsgFlagSilent    = "Leave unresolved tokens in place instead of failing"
	MsgFlagRecursive = "Descend into subdirectories when scanning a directory"
	MsgFlagExt       = "File suffix for directory scans"
	MsgFlagExpand    = "Follow $NAME indirection in variable values"
	MsgFlagSet       = "Inline NAME=VALUE assignment (repeatable, later declarations win)"
	MsgFlagVarFile   = "Load variables from a file (repeatable, ordered with -e)"
	MsgFlagOptFile   = "Like --var-file but silently skipped when absent"
	MsgFlagUseEnv    = "Seed variables from the process environment (lowest precedence)"

	// Report messages
	MsgDryRunNotice = "DRY RUN MODE - No files were written"
	MsgNothingToDo  = "No matching template files found."
	MsgErrorHint    = "run 'tsubst --help' for usage"
)

// MsgRootLong is the root command help text
const MsgRootLong = `tsubst scans text for ${ NAME } placeholder tokens and replaces each
with a value from a layered variable environment.

Templates come from inline text (--text), a single file or URL (--file),
or a directory tree of *.template files (--dir). Variables come from the
process environment (--env), variable files (--var-file) and inline
assignments (-e), applied in the order they appear on the command line;
the last value set for a name wins.

By default a token with no value fails the whole run. With --silent the
placeholder is left in the output untouched. With --expand a value that
starts with "$" names another variable and resolution follows the chain.`
