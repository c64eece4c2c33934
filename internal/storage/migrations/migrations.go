// ABOUTME: Embedded goose migrations, one directory per SQL dialect.
// ABOUTME: Each dialect creates the same users, workouts and measurements tables.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql mysql/*.sql
var FS embed.FS
