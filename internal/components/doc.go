// Package components discovers UI components in the configured component
// directory and registers them under generated names.
//
// Every ".vue" file below the directory becomes one component named
// <prefix><PascalCaseBaseName>, so "dropdown-menu/DropdownMenuItem.vue" with
// prefix "Ui" registers "UiDropdownMenuItem". Names must be unique.
//
// A [Registry] keeps the last successful scan, writes it to a JSON manifest
// and can follow the directory with fsnotify while development tooling is on.
package components
