package options

import (
	"github.com/napalu/goopt/v2/i18n"
)

// Common holds the settings shared by both tools.
type Common struct {
	Directory string
	DryRun    bool
	File      string
	Mapping   string
	BackupDir string
	Verbose   bool
	Language  string
}

// SourceConfig is the rekey-source configuration
type SourceConfig struct {
	Directory  string          `goopt:"pos:0;default:.;desc:Directory to search (default: current directory);descKey:app.common.directory_desc"`
	DryRun     bool            `goopt:"short:n;desc:Show what would be changed without modifying files;descKey:app.common.dry_run_desc"`
	File       string          `goopt:"short:f;desc:Process a single file instead of a directory;descKey:app.common.file_desc"`
	Mapping    string          `goopt:"short:m;desc:JSON file holding the old-to-new key mapping (default: built-in table);descKey:app.common.mapping_desc"`
	BackupDir  string          `goopt:"desc:Directory for backup copies of rewritten files;descKey:app.common.backup_dir_desc"`
	Functions  []string        `goopt:"name:func;desc:Translation function names to match (default: t, translate);descKey:app.source.functions_desc"`
	Extensions []string        `goopt:"name:ext;desc:Source file extensions to scan (default: .js, .jsx, .ts, .tsx);descKey:app.source.extensions_desc"`
	Verbose    bool            `goopt:"short:v;desc:Enable verbose output;descKey:app.common.verbose_desc"`
	Language   string          `goopt:"short:l;desc:Language for output (en, de, fr);descKey:app.common.language_desc"`
	Help       bool            `goopt:"short:h;desc:Show help;descKey:app.common.help_desc"`
	TR         i18n.Translator `ignore:"true"` // Translator for messages
}

// Common returns the shared settings.
func (c *SourceConfig) Common() Common {
	return Common{
		Directory: c.Directory,
		DryRun:    c.DryRun,
		File:      c.File,
		Mapping:   c.Mapping,
		BackupDir: c.BackupDir,
		Verbose:   c.Verbose,
		Language:  c.Language,
	}
}

// ResourceConfig is the rekey-resource configuration
type ResourceConfig struct {
	Directory    string          `goopt:"pos:0;default:.;desc:Directory to search (default: current directory);descKey:app.common.directory_desc"`
	DryRun       bool            `goopt:"short:n;desc:Show what would be changed without modifying files;descKey:app.common.dry_run_desc"`
	File         string          `goopt:"short:f;desc:Process a single file instead of a directory;descKey:app.common.file_desc"`
	Mapping      string          `goopt:"short:m;desc:JSON file holding the old-to-new key mapping (default: built-in table);descKey:app.common.mapping_desc"`
	BackupDir    string          `goopt:"desc:Directory for backup copies of rewritten files;descKey:app.common.backup_dir_desc"`
	Pattern      string          `goopt:"short:p;default:translation.json;desc:Filename pattern to match (default: translation.json);descKey:app.resource.pattern_desc"`
	PatternOnly  bool            `goopt:"desc:Only process files matching the pattern instead of every .json file;descKey:app.resource.pattern_only_desc"`
	ShowUnmapped bool            `goopt:"short:u;desc:Show keys that were not found in the mapping;descKey:app.resource.show_unmapped_desc"`
	Suggest      bool            `goopt:"short:s;desc:Suggest kebab-case keys for unmapped keys;descKey:app.resource.suggest_desc"`
	Collision    string          `goopt:"short:c;default:error;desc:How to handle keys renamed onto the same name (skip, replace, error);descKey:app.resource.collision_desc"`
	Verbose      bool            `goopt:"short:v;desc:Enable verbose output;descKey:app.common.verbose_desc"`
	Language     string          `goopt:"short:l;desc:Language for output (en, de, fr);descKey:app.common.language_desc"`
	Help         bool            `goopt:"short:h;desc:Show help;descKey:app.common.help_desc"`
	TR           i18n.Translator `ignore:"true"` // Translator for messages
}

// Common returns the shared settings.
func (c *ResourceConfig) Common() Common {
	return Common{
		Directory: c.Directory,
		DryRun:    c.DryRun,
		File:      c.File,
		Mapping:   c.Mapping,
		BackupDir: c.BackupDir,
		Verbose:   c.Verbose,
		Language:  c.Language,
	}
}
